package fleet

import (
	"testing"
	"time"

	"github.com/example/giro-certo-ops/internal/models"
)

func snapshotFor(f Filter) Snapshot {
	return Snapshot{Filter: f, Key: f.Key(), Taken: time.Now()}
}

func TestInstallMatchingFilter(t *testing.T) {
	b := NewBoard()
	f := Filter{VehicleType: models.VehicleBicycle}
	b.Apply(f)

	if !b.Install(snapshotFor(f)) {
		t.Fatal("snapshot for the current filter was rejected")
	}
	if _, ok := b.Latest(); !ok {
		t.Fatal("no snapshot after install")
	}
}

func TestInstallDropsSupersededSnapshot(t *testing.T) {
	b := NewBoard()
	old := Filter{VehicleType: models.VehicleBicycle}
	b.Apply(old)

	// Filter changes while a fetch for the old one is in flight.
	b.Apply(Filter{VehicleType: models.VehicleMotorcycle})

	if b.Install(snapshotFor(old)) {
		t.Fatal("snapshot for a superseded filter was installed")
	}
	if _, ok := b.Latest(); ok {
		t.Fatal("stale snapshot visible as latest")
	}
}

func TestApplyDiscardsPreviousSnapshot(t *testing.T) {
	b := NewBoard()
	f := Filter{OrderStatus: models.StatusPending}
	b.Apply(f)
	b.Install(snapshotFor(f))

	b.Apply(Filter{OrderStatus: models.StatusCompleted})
	if _, ok := b.Latest(); ok {
		t.Fatal("snapshot for the old filter survived the switch")
	}
}

func TestApplySameFilterKeepsSnapshot(t *testing.T) {
	b := NewBoard()
	f := Filter{OrderStatus: models.StatusPending}
	b.Apply(f)
	b.Install(snapshotFor(f))

	b.Apply(Filter{OrderStatus: models.StatusPending})
	if _, ok := b.Latest(); !ok {
		t.Fatal("re-applying an identical filter dropped the snapshot")
	}
}
