package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/example/giro-certo-ops/internal/audit"
	"github.com/example/giro-certo-ops/internal/config"
	"github.com/example/giro-certo-ops/internal/gateway"
	"github.com/example/giro-certo-ops/internal/logging"
	"github.com/example/giro-certo-ops/internal/session"
	"github.com/example/giro-certo-ops/internal/www"
)

func main() {
	// Local-dev convenience only; the file is optional in production.
	_ = godotenv.Load()

	cfg, err := config.LoadServerConfig()
	if err != nil {
		logging.NewLogger("info").Error("config_load_failed", "error", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.LogLevel)
	logger.Info("starting_ops_console",
		"addr", cfg.HTTPAddr,
		"api_base_url", cfg.APIBaseURL,
		"poll_interval", cfg.PollInterval.String(),
	)

	var store session.Store
	if cfg.RedisAddr != "" {
		store = session.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.SessionTTL)
		logger.Info("session_store", "backend", "redis", "addr", cfg.RedisAddr)
	} else {
		store = session.NewMemoryStore()
		logger.Warn("session_store", "backend", "memory")
	}

	cookies := session.NewCookieCodec(cfg.SessionSecret, cfg.SessionTTL)
	api := gateway.NewClient(cfg.APIBaseURL, cfg.UpstreamTimeout, nil, logging.Component(logger, "gateway"))
	sessions := session.NewManager(api, store, cookies, logging.Component(logger, "session"))

	var auditor *audit.Producer
	if len(cfg.KafkaBrokers) > 0 {
		auditor = audit.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		logger.Info("audit_stream", "topic", cfg.KafkaTopic, "brokers", cfg.KafkaBrokers)
	} else {
		logger.Warn("audit_stream_disabled")
	}

	server := www.NewServer(cfg, sessions, auditor, logging.Component(logger, "www"))

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      server,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http_server_failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logger.Info("shutting_down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("graceful_shutdown_failed", "error", err)
	}
	server.Close()
	auditor.Close()
	logger.Info("stopped")
}
