package config

import (
	"testing"
	"time"

	"github.com/example/giro-certo-ops/internal/livemap"
)

func TestLoadServerConfigDefaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://platform.local/")
	t.Setenv("SESSION_SECRET", "s3cret")

	cfg, err := LoadServerConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIBaseURL != "http://platform.local" {
		t.Fatalf("trailing slash not stripped: %q", cfg.APIBaseURL)
	}
	if cfg.HTTPAddr != ":8080" || cfg.PollInterval != 10*time.Second {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.FallbackLat != livemap.FallbackCenter.Lat || cfg.FallbackLng != livemap.FallbackCenter.Lng {
		t.Fatalf("fallback center: %v,%v", cfg.FallbackLat, cfg.FallbackLng)
	}
	if cfg.FallbackLat != -23.5505 || cfg.FallbackLng != -46.6333 {
		t.Fatalf("fallback center drifted: %v,%v", cfg.FallbackLat, cfg.FallbackLng)
	}
}

func TestLoadServerConfigRequiredFields(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("SESSION_SECRET", "")

	if _, err := LoadServerConfig(); err == nil {
		t.Fatal("missing API_BASE_URL and SESSION_SECRET not rejected")
	}
}

func TestLoadServerConfigOverridesAndBrokers(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://platform.local")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("POLL_INTERVAL", "30s")
	t.Setenv("KAFKA_BROKERS", "b1:9092, b2:9092 ,")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := LoadServerConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PollInterval != 30*time.Second {
		t.Fatalf("poll interval: %v", cfg.PollInterval)
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[1] != "b2:9092" {
		t.Fatalf("brokers: %v", cfg.KafkaBrokers)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level: %q", cfg.LogLevel)
	}
}

func TestLoadServerConfigBadDuration(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://platform.local")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("POLL_INTERVAL", "every-so-often")

	if _, err := LoadServerConfig(); err == nil {
		t.Fatal("invalid POLL_INTERVAL not rejected")
	}
}
