package www

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/example/giro-certo-ops/internal/fleet"
)

func towerViews(t *testing.T, srv *Server) map[string]*towerView {
	t.Helper()
	srv.towers.mu.Lock()
	defer srv.towers.mu.Unlock()
	out := make(map[string]*towerView, len(srv.towers.views))
	for sid, v := range srv.towers.views {
		out[sid] = v
	}
	return out
}

func pollTower(t *testing.T, srv *Server, cookie *http.Cookie) {
	t.Helper()
	req := httptest.NewRequest("GET", "/ui/control-tower/data", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("tower poll status %d", rec.Code)
	}
}

func stoppedPoller(t *testing.T, srv *Server) *fleet.Poller {
	t.Helper()
	views := towerViews(t, srv)
	if len(views) != 1 {
		t.Fatalf("expected 1 tower view, have %d", len(views))
	}
	for _, v := range views {
		v.poller.Stop()
		return v.poller
	}
	return nil
}

func TestRegistrySweepsStoppedViews(t *testing.T) {
	srv, done := newTestServer(t, newFakePlatform())
	defer done()

	// First operator opens the tower, then their poller winds down.
	pollTower(t, srv, login(t, srv))
	stoppedPoller(t, srv)

	// A second operator's poll sweeps the dead view out.
	pollTower(t, srv, login(t, srv))

	views := towerViews(t, srv)
	if len(views) != 1 {
		t.Fatalf("stopped view not swept, registry holds %d entries", len(views))
	}
	for _, v := range views {
		if v.poller.Stopped() {
			t.Fatal("surviving entry is the dead view")
		}
	}
}

func TestRegistryRevivesOwnStoppedView(t *testing.T) {
	srv, done := newTestServer(t, newFakePlatform())
	defer done()

	cookie := login(t, srv)
	pollTower(t, srv, cookie)
	old := stoppedPoller(t, srv)

	// The same session polling again gets a fresh poller, not the dead one.
	pollTower(t, srv, cookie)
	views := towerViews(t, srv)
	if len(views) != 1 {
		t.Fatalf("registry holds %d entries", len(views))
	}
	for _, v := range views {
		if v.poller == old || v.poller.Stopped() {
			t.Fatal("stopped poller was not replaced")
		}
	}
}

func TestStopAllClearsRegistry(t *testing.T) {
	srv, done := newTestServer(t, newFakePlatform())
	defer done()

	pollTower(t, srv, login(t, srv))
	srv.Close()

	if views := towerViews(t, srv); len(views) != 0 {
		t.Fatalf("registry holds %d entries after shutdown", len(views))
	}
}
