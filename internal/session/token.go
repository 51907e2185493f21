package session

import (
	"context"
	"sync"
	"time"
)

// tokenHolder is the per-session bearer token. It implements
// gateway.TokenSource: the gateway reads the token at send time and calls
// Clear on a 401, which also purges the persisted record so a reload cannot
// resurrect a token the platform has rejected.
type tokenHolder struct {
	mu    sync.RWMutex
	token string
	store Store
	sid   string
}

func newTokenHolder(store Store, sid string) *tokenHolder {
	return &tokenHolder{store: store, sid: sid}
}

func (h *tokenHolder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *tokenHolder) set(token string) {
	h.mu.Lock()
	h.token = token
	h.mu.Unlock()
}

func (h *tokenHolder) Clear() {
	h.mu.Lock()
	h.token = ""
	h.mu.Unlock()

	// Best-effort purge; Clear has no caller context by contract.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = h.store.Delete(ctx, h.sid)
}
