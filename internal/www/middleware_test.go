package www

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/example/giro-certo-ops/internal/config"
	"github.com/example/giro-certo-ops/internal/gateway"
	"github.com/example/giro-certo-ops/internal/logging"
	"github.com/example/giro-certo-ops/internal/session"
)

// newLoggedServer is newTestServer with the access log captured.
func newLoggedServer(t *testing.T, platform *fakePlatform) (*Server, *bytes.Buffer, func()) {
	t.Helper()
	upstream := httptest.NewServer(platform.mux)

	cfg := config.ServerConfig{
		APIBaseURL:    upstream.URL,
		SessionTTL:    time.Hour,
		SessionSecret: "test-secret",
		PollInterval:  time.Minute,
		FallbackLat:   -23.5505,
		FallbackLng:   -46.6333,
	}

	var buf bytes.Buffer
	logger := logging.New("info", &buf)
	api := gateway.NewClient(upstream.URL, time.Second, nil, logger)
	sessions := session.NewManager(api, session.NewMemoryStore(), session.NewCookieCodec(cfg.SessionSecret, cfg.SessionTTL), logger)

	srv := NewServer(cfg, sessions, nil, logger)
	return srv, &buf, func() {
		srv.Close()
		upstream.Close()
	}
}

func TestAccessLogTagsUIAPIRequests(t *testing.T) {
	srv, buf, done := newLoggedServer(t, newFakePlatform())
	defer done()

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest("GET", "/ui/control-tower/data", nil))

	line := buf.String()
	if !strings.Contains(line, `"kind":"ui-api"`) {
		t.Fatalf("ui-api request not tagged: %s", line)
	}
	if !strings.Contains(line, `"authenticated":false`) {
		t.Fatalf("anonymous request logged as authenticated: %s", line)
	}
}

func TestAccessLogNeverContainsCookieValue(t *testing.T) {
	srv, buf, done := newLoggedServer(t, newFakePlatform())
	defer done()

	cookie := login(t, srv)
	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	line := buf.String()
	if !strings.Contains(line, `"authenticated":true`) {
		t.Fatalf("session presence not logged: %s", line)
	}
	if strings.Contains(line, cookie.Value) {
		t.Fatal("signed cookie value leaked into the access log")
	}
}

func TestAccessLogUsesRouteTemplate(t *testing.T) {
	srv, buf, done := newLoggedServer(t, newFakePlatform())
	defer done()

	cookie := login(t, srv)
	req := httptest.NewRequest("GET", "/dashboard/partners/abc123", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	line := buf.String()
	if !strings.Contains(line, "/dashboard/partners/{id}") {
		t.Fatalf("route not logged by template: %s", line)
	}
}

func TestRecoverMiddlewareTurnsPanicInto500(t *testing.T) {
	srv, buf, done := newLoggedServer(t, newFakePlatform())
	defer done()

	srv.mux.HandleFunc("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("kaboom")
	}).Methods("GET")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest("GET", "/boom", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(buf.String(), "panic_recovered") {
		t.Fatalf("panic not logged: %s", buf.String())
	}
}
