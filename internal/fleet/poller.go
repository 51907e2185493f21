package fleet

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Poller refreshes the board's snapshot on a fixed period for as long as the
// control tower is served, independent of operator interaction. It is a
// scheduled task with an explicit stop, not a free-running interval: Stop is
// called on server shutdown so no fetch leaks past teardown.
type Poller struct {
	service  *Service
	board    *Board
	interval time.Duration
	logger   *slog.Logger

	// Idle, when set, is consulted each cycle; once it reports true the
	// poller stops for good. This is how a poller tied to a browser view
	// winds down after the view stops calling in.
	Idle func() bool

	stopOnce sync.Once
	stopChan chan struct{}

	kick chan struct{}
}

func NewPoller(service *Service, board *Board, interval time.Duration, logger *slog.Logger) *Poller {
	return &Poller{
		service:  service,
		board:    board,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		kick:     make(chan struct{}, 1),
	}
}

func (p *Poller) Start() {
	go p.run()
}

func (p *Poller) Stop() {
	p.stopOnce.Do(func() { close(p.stopChan) })
}

// Stopped reports whether the poller has shut down (explicitly or via Idle).
func (p *Poller) Stopped() bool {
	select {
	case <-p.stopChan:
		return true
	default:
		return false
	}
}

// Kick requests an immediate refresh, used when the operator changes the
// filter. A pending kick is collapsed rather than queued: the newest filter
// replaces any in-flight intent.
func (p *Poller) Kick() {
	select {
	case p.kick <- struct{}{}:
	default:
	}
}

func (p *Poller) run() {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.refresh()
	for {
		select {
		case <-p.stopChan:
			return
		case <-p.kick:
			p.refresh()
		case <-ticker.C:
			if p.Idle != nil && p.Idle() {
				p.Stop()
				return
			}
			p.refresh()
		}
	}
}

func (p *Poller) refresh() {
	// The filter is re-read per cycle; the snapshot is installed only if the
	// filter has not moved underneath it.
	f := p.board.Current()
	ctx, cancel := context.WithTimeout(context.Background(), p.interval)
	defer cancel()

	snap := p.service.Snapshot(ctx, f)
	if !p.board.Install(snap) && p.logger != nil {
		p.logger.Debug("snapshot_superseded", "filter", snap.Key)
	}
}
