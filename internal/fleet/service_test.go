package fleet

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/example/giro-certo-ops/internal/models"
)

// fakeAPI serves canned JSON per path prefix and records the paths hit.
type fakeAPI struct {
	responses map[string]string
	fail      map[string]bool
	paths     []string
}

func (f *fakeAPI) Get(ctx context.Context, path string, out any) error {
	f.paths = append(f.paths, path)
	for prefix, failing := range f.fail {
		if failing && strings.HasPrefix(path, prefix) {
			return errors.New("upstream boom")
		}
	}
	for prefix, body := range f.responses {
		if strings.HasPrefix(path, prefix) {
			return json.Unmarshal([]byte(body), out)
		}
	}
	return errors.New("unexpected path " + path)
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		responses: map[string]string{
			"/api/dashboard/stats":         `{"activeRiders":3,"todaysOrders":7}`,
			"/api/dashboard/active-riders": `{"riders":[{"id":"r1","name":"Ana","lat":-23.5,"lng":-46.6}]}`,
			"/api/dashboard/orders":        `{"orders":[{"id":"o1","status":"pending"}]}`,
		},
		fail: map[string]bool{},
	}
}

func TestSnapshotAllSourcesHealthy(t *testing.T) {
	api := newFakeAPI()
	s := &Service{API: api}

	snap := s.Snapshot(context.Background(), Filter{})
	if snap.Failed() {
		t.Fatalf("healthy snapshot reported failure: %+v", snap)
	}
	if snap.Stats == nil || snap.Stats.ActiveRiders != 3 {
		t.Fatalf("stats not populated: %+v", snap.Stats)
	}
	if len(snap.Riders) != 1 || snap.Riders[0].Name != "Ana" {
		t.Fatalf("riders not populated: %+v", snap.Riders)
	}
	if len(snap.Orders) != 1 || snap.Orders[0].Status != models.StatusPending {
		t.Fatalf("orders not populated: %+v", snap.Orders)
	}
}

func TestSnapshotDegradesPerSource(t *testing.T) {
	api := newFakeAPI()
	api.fail["/api/dashboard/stats"] = true
	s := &Service{API: api}

	snap := s.Snapshot(context.Background(), Filter{})
	if !snap.Failed() {
		t.Fatal("failed stats fetch not reported")
	}
	if snap.StatsErr == nil || snap.Stats != nil {
		t.Fatalf("stats failure not isolated: err=%v stats=%+v", snap.StatsErr, snap.Stats)
	}
	// The other two sources stay usable.
	if snap.RidersErr != nil || len(snap.Riders) != 1 {
		t.Fatalf("riders affected by stats failure: err=%v", snap.RidersErr)
	}
	if snap.OrdersErr != nil || len(snap.Orders) != 1 {
		t.Fatalf("orders affected by stats failure: err=%v", snap.OrdersErr)
	}
}

func TestSnapshotCarriesFilterKey(t *testing.T) {
	api := newFakeAPI()
	s := &Service{API: api}

	f := Filter{VehicleType: models.VehicleBicycle, Verified: boolPtr(true)}
	snap := s.Snapshot(context.Background(), f)
	if snap.Key != f.Key() {
		t.Fatalf("snapshot key %q != filter key %q", snap.Key, f.Key())
	}

	var sawRiderQuery bool
	for _, p := range api.paths {
		if p == "/api/dashboard/active-riders?vehicleType=BICYCLE&hasVerifiedBadge=true" {
			sawRiderQuery = true
		}
	}
	if !sawRiderQuery {
		t.Fatalf("filter not propagated to rider query, paths: %v", api.paths)
	}
}
