package fleet

import (
	"net/url"
	"testing"

	"github.com/example/giro-certo-ops/internal/models"
)

func boolPtr(v bool) *bool { return &v }

func TestRiderQueryParamOrder(t *testing.T) {
	f := Filter{VehicleType: models.VehicleBicycle, Verified: boolPtr(true)}
	got := f.RiderQuery()
	if got != "vehicleType=BICYCLE&hasVerifiedBadge=true" {
		t.Fatalf("unexpected query: %q", got)
	}
}

func TestRiderQueryOmitsUnset(t *testing.T) {
	if got := (Filter{}).RiderQuery(); got != "" {
		t.Fatalf("empty filter produced %q", got)
	}
	if got := (Filter{Verified: boolPtr(false)}).RiderQuery(); got != "hasVerifiedBadge=false" {
		t.Fatalf("verified-only filter produced %q", got)
	}
	if got := (Filter{VehicleType: models.VehicleMotorcycle}).RiderQuery(); got != "vehicleType=MOTORCYCLE" {
		t.Fatalf("vehicle-only filter produced %q", got)
	}
}

func TestOrderQueryParamOrder(t *testing.T) {
	f := Filter{VehicleType: models.VehicleMotorcycle, OrderStatus: models.StatusPending}
	if got := f.OrderQuery(); got != "status=pending&vehicleType=MOTORCYCLE" {
		t.Fatalf("unexpected query: %q", got)
	}
}

func TestKeyDistinguishesUnsetFromFalse(t *testing.T) {
	unset := Filter{}
	explicit := Filter{Verified: boolPtr(false)}
	if unset.Key() == explicit.Key() {
		t.Fatalf("nil and false verified collapsed to the same key %q", unset.Key())
	}
}

func TestParseFilterIgnoresUnknownValues(t *testing.T) {
	v := url.Values{}
	v.Set("vehicleType", "SKATEBOARD")
	v.Set("hasVerifiedBadge", "yes")
	v.Set("status", "teleported")

	f := ParseFilter(v)
	if f.VehicleType != "" || f.Verified != nil || f.OrderStatus != "" {
		t.Fatalf("unknown values leaked into filter: %+v", f)
	}
}

func TestParseFilterRoundTrip(t *testing.T) {
	v := url.Values{}
	v.Set("vehicleType", "BICYCLE")
	v.Set("hasVerifiedBadge", "true")
	v.Set("status", "inProgress")

	f := ParseFilter(v)
	if f.VehicleType != models.VehicleBicycle {
		t.Fatalf("vehicleType = %q", f.VehicleType)
	}
	if f.Verified == nil || !*f.Verified {
		t.Fatal("verified not parsed")
	}
	if f.OrderStatus != models.StatusInProgress {
		t.Fatalf("status = %q", f.OrderStatus)
	}
	if got := f.Key(); got != "BICYCLE|true|inProgress" {
		t.Fatalf("key = %q", got)
	}
}
