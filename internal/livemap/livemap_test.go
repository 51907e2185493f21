package livemap

import (
	"math"
	"testing"

	"github.com/example/giro-certo-ops/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func rider(lat, lng *float64) models.ActiveRider {
	return models.ActiveRider{ID: "r", Lat: lat, Lng: lng}
}

func TestComputeCenterFallback(t *testing.T) {
	got := ComputeCenter(nil, nil, FallbackCenter)
	if got != FallbackCenter {
		t.Fatalf("expected fallback center, got %+v", got)
	}
}

func TestComputeCenterSkipsMissingCoords(t *testing.T) {
	riders := []models.ActiveRider{
		rider(floatPtr(-23.0), floatPtr(-46.0)),
		rider(nil, nil),
		rider(floatPtr(-25.0), floatPtr(-48.0)),
	}
	got := ComputeCenter(riders, nil, FallbackCenter)
	if got.Lat != -24.0 || got.Lng != -47.0 {
		t.Fatalf("expected (-24,-47), got %+v", got)
	}
}

func TestComputeCenterMixesRidersAndOrders(t *testing.T) {
	riders := []models.ActiveRider{rider(floatPtr(-20.0), floatPtr(-40.0))}
	orders := []models.DeliveryOrder{
		{ID: "o1", StoreLatitude: floatPtr(-22.0), StoreLongitude: floatPtr(-42.0)},
		{ID: "o2"}, // no store fix, excluded
	}
	got := ComputeCenter(riders, orders, FallbackCenter)
	if got.Lat != -21.0 || got.Lng != -41.0 {
		t.Fatalf("expected (-21,-41), got %+v", got)
	}
}

func TestVehicleStyle(t *testing.T) {
	moto := VehicleStyle(models.VehicleMotorcycle, false)
	if moto.Color != "#3b82f6" || moto.Size != 28 || moto.Badge != "" {
		t.Fatalf("motorcycle style: %+v", moto)
	}
	bike := VehicleStyle(models.VehicleBicycle, false)
	if bike.Color != "#10b981" || bike.Glyph != "🚲" {
		t.Fatalf("bicycle style: %+v", bike)
	}
	verified := VehicleStyle(models.VehicleBicycle, true)
	if verified.Size != 32 || verified.Badge != "✓" {
		t.Fatalf("verified style: %+v", verified)
	}
}

func TestStatusColorFallback(t *testing.T) {
	if got := StatusColor(models.StatusCancelled); got != "#ef4444" {
		t.Fatalf("cancelled color %q", got)
	}
	if got := StatusColor("warp"); got != "#6b7280" {
		t.Fatalf("unknown status color %q", got)
	}
}

func TestFormatRating(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{4.666, "4.7"},
		{5, "5.0"},
		{0, "N/A"},
		{math.NaN(), "N/A"},
		{math.Inf(1), "N/A"},
	}
	for _, c := range cases {
		if got := FormatRating(c.in); got != c.want {
			t.Fatalf("FormatRating(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRiderMarkersClassification(t *testing.T) {
	riders := []models.ActiveRider{
		{
			ID: "r1", Name: "Ana", Lat: floatPtr(-23.5), Lng: floatPtr(-46.6),
			HasVerifiedBadge: true, AverageRating: 4.9, IsOnline: true,
			Bike: &models.Bike{VehicleType: models.VehicleBicycle},
		},
		{ID: "r2", Name: "off-grid"}, // no fix, skipped
		{
			// No bike record: treated as a motorcycle.
			ID: "r3", Name: "Bruno", Lat: floatPtr(-23.6), Lng: floatPtr(-46.7),
		},
	}

	out := RiderMarkers(riders)
	if len(out) != 2 {
		t.Fatalf("expected 2 markers, got %d", len(out))
	}
	if out[0].ID != "r1" || out[1].ID != "r3" {
		t.Fatalf("marker order not preserved: %s, %s", out[0].ID, out[1].ID)
	}
	if out[0].Style.Badge != "✓" || out[0].VehicleLabel != "🚲 Bicicleta" || out[0].Rating != "4.9" {
		t.Fatalf("verified bicycle marker: %+v", out[0])
	}
	if out[1].VehicleLabel != "🏍️ Moto" || out[1].Rating != "N/A" {
		t.Fatalf("default motorcycle marker: %+v", out[1])
	}
}

func TestOrderMarkers(t *testing.T) {
	eta := 12
	orders := []models.DeliveryOrder{
		{
			ID:            "abcdef1234567890",
			StoreLatitude: floatPtr(-23.5), StoreLongitude: floatPtr(-46.6),
			Status:        models.StatusInProgress,
			EstimatedTime: &eta,
			Rider:         &models.OrderRider{Name: "Ana"},
		},
		{ID: "nofix", Status: models.StatusPending},
	}

	out := OrderMarkers(orders)
	if len(out) != 1 {
		t.Fatalf("expected 1 marker, got %d", len(out))
	}
	m := out[0]
	if m.ShortID != "abcdef12" {
		t.Fatalf("short id %q", m.ShortID)
	}
	if m.StatusColor != "#10b981" {
		t.Fatalf("inProgress color %q", m.StatusColor)
	}
	if m.RiderName != "Ana" || m.ETALabel != "12 min" {
		t.Fatalf("popup fields: %+v", m)
	}
	if m.Style != StoreStyle() {
		t.Fatalf("store style: %+v", m.Style)
	}
}
