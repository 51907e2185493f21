package fleet

import (
	"sync"

	"github.com/example/giro-certo-ops/internal/observability"
)

// Board holds the latest installed snapshot for the currently applied
// filter. Installs are last-write-wins keyed by query identity, not by
// arrival time: a response that resolves after its filter was superseded is
// dropped, so stale data for old parameters is never shown as current.
type Board struct {
	mu      sync.RWMutex
	current Filter
	latest  *Snapshot
}

func NewBoard() *Board {
	return &Board{}
}

// Apply switches the board to a new filter. If the filter identity actually
// changes, the previous snapshot is discarded immediately so the view shows
// a loading state rather than data for the old parameters.
func (b *Board) Apply(f Filter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if f.Key() == b.current.Key() {
		return
	}
	b.current = f
	b.latest = nil
}

// Current returns the applied filter.
func (b *Board) Current() Filter {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.current
}

// Install records a snapshot if it still matches the applied filter.
// It reports whether the snapshot was installed.
func (b *Board) Install(snap Snapshot) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if snap.Key != b.current.Key() {
		observability.StaleDropsTotal.Inc()
		return false
	}
	b.latest = &snap
	return true
}

// Latest returns the installed snapshot, if any.
func (b *Board) Latest() (Snapshot, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.latest == nil {
		return Snapshot{}, false
	}
	return *b.latest, true
}
