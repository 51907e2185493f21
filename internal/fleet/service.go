package fleet

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/example/giro-certo-ops/internal/models"
	"github.com/example/giro-certo-ops/internal/observability"
)

// API is the narrow slice of the gateway client the aggregation needs.
type API interface {
	Get(ctx context.Context, path string, out any) error
}

// Service reshapes the platform's dashboard endpoints into control-tower
// collections. Results are replaced wholesale on every query, never patched.
type Service struct {
	API    API
	Logger *slog.Logger
}

type ridersResponse struct {
	Riders []models.ActiveRider `json:"riders"`
}

type ordersResponse struct {
	Orders []models.DeliveryOrder `json:"orders"`
}

func (s *Service) Stats(ctx context.Context, f Filter) (models.DashboardStats, error) {
	var stats models.DashboardStats
	err := s.API.Get(ctx, withQuery("/api/dashboard/stats", f.RiderQuery()), &stats)
	return stats, err
}

func (s *Service) ActiveRiders(ctx context.Context, f Filter) ([]models.ActiveRider, error) {
	var resp ridersResponse
	if err := s.API.Get(ctx, withQuery("/api/dashboard/active-riders", f.RiderQuery()), &resp); err != nil {
		return nil, err
	}
	return resp.Riders, nil
}

func (s *Service) Orders(ctx context.Context, f Filter) ([]models.DeliveryOrder, error) {
	var resp ordersResponse
	if err := s.API.Get(ctx, withQuery("/api/dashboard/orders", f.OrderQuery()), &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// Snapshot is one refresh of the control tower. Each source degrades
// independently: a failed stats fetch leaves riders and orders usable and
// vice versa. The view renders a placeholder for a nil Stats and an empty
// layer for a failed collection.
type Snapshot struct {
	Filter Filter
	Key    string
	Taken  time.Time

	Stats  *models.DashboardStats
	Riders []models.ActiveRider
	Orders []models.DeliveryOrder

	StatsErr  error
	RidersErr error
	OrdersErr error
}

// Failed reports whether any source failed this cycle.
func (s Snapshot) Failed() bool {
	return s.StatsErr != nil || s.RidersErr != nil || s.OrdersErr != nil
}

// Snapshot issues the three dashboard queries concurrently. None blocks
// another; the slowest source bounds the refresh, not their sum.
func (s *Service) Snapshot(ctx context.Context, f Filter) Snapshot {
	snap := Snapshot{Filter: f, Key: f.Key(), Taken: time.Now()}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		stats, err := s.Stats(ctx, f)
		if err != nil {
			snap.StatsErr = err
			return
		}
		snap.Stats = &stats
	}()
	go func() {
		defer wg.Done()
		snap.Riders, snap.RidersErr = s.ActiveRiders(ctx, f)
	}()
	go func() {
		defer wg.Done()
		snap.Orders, snap.OrdersErr = s.Orders(ctx, f)
	}()
	wg.Wait()

	observability.PollCyclesTotal.Inc()
	if snap.Failed() {
		observability.PollFailuresTotal.Inc()
		if s.Logger != nil {
			s.Logger.Warn("snapshot_degraded",
				"filter", snap.Key,
				"stats_err", errString(snap.StatsErr),
				"riders_err", errString(snap.RidersErr),
				"orders_err", errString(snap.OrdersErr),
			)
		}
	}
	return snap
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
