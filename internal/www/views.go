package www

import (
	"log/slog"
	"sync"
	"time"

	"github.com/example/giro-certo-ops/internal/fleet"
	"github.com/example/giro-certo-ops/internal/session"
)

// towerView is one operator's open control-tower screen: a board holding
// the latest snapshot for the applied filter, plus a poller keeping it warm
// between browser refreshes. The poller winds itself down once the browser
// stops calling in, which is the server-side analog of the view unmounting.
type towerView struct {
	board   *fleet.Board
	service *fleet.Service
	poller  *fleet.Poller

	mu       sync.Mutex
	lastSeen time.Time
}

func (v *towerView) touch() {
	v.mu.Lock()
	v.lastSeen = time.Now()
	v.mu.Unlock()
}

func (v *towerView) idleSince() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastSeen
}

// towerRegistry tracks tower views per console session.
type towerRegistry struct {
	interval time.Duration
	logger   *slog.Logger

	mu    sync.Mutex
	views map[string]*towerView
}

func newTowerRegistry(interval time.Duration, logger *slog.Logger) *towerRegistry {
	return &towerRegistry{
		interval: interval,
		logger:   logger,
		views:    map[string]*towerView{},
	}
}

// viewFor returns the session's tower view, creating (or reviving) it and
// its poller as needed. Views whose pollers have wound down are swept out
// first so an abandoned tab does not pin its last snapshot for the process
// lifetime.
func (t *towerRegistry) viewFor(sess *session.Session) *towerView {
	t.mu.Lock()
	defer t.mu.Unlock()

	for sid, view := range t.views {
		if sid != sess.ID && view.poller != nil && view.poller.Stopped() {
			delete(t.views, sid)
		}
	}

	v, ok := t.views[sess.ID]
	if !ok {
		v = &towerView{
			board:   fleet.NewBoard(),
			service: &fleet.Service{API: sess.API, Logger: t.logger},
		}
		t.views[sess.ID] = v
	}
	v.touch()

	if v.poller == nil || v.poller.Stopped() {
		v.poller = fleet.NewPoller(v.service, v.board, t.interval, t.logger)
		view := v
		// Three missed browser polls means the tab is gone.
		v.poller.Idle = func() bool {
			return time.Since(view.idleSince()) > 3*t.interval
		}
		v.poller.Start()
	}
	return v
}

func (t *towerRegistry) StopAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for sid, v := range t.views {
		if v.poller != nil {
			v.poller.Stop()
		}
		delete(t.views, sid)
	}
}
