package livemap

import (
	"fmt"

	"github.com/example/giro-certo-ops/internal/models"
)

// RiderMarker is a plotted courier with its popup fields precomputed.
type RiderMarker struct {
	ID           string       `json:"id"`
	Position     models.Coord `json:"position"`
	Style        MarkerStyle  `json:"style"`
	Name         string       `json:"name"`
	Online       bool         `json:"online"`
	VehicleLabel string       `json:"vehicleLabel"`
	Verified     bool         `json:"verified"`
	Rating       string       `json:"rating"`
	ActiveOrders int          `json:"activeOrders"`
}

// OrderMarker is a plotted pickup point with its popup fields precomputed.
type OrderMarker struct {
	ID          string       `json:"id"`
	ShortID     string       `json:"shortId"`
	Position    models.Coord `json:"position"`
	Style       MarkerStyle  `json:"style"`
	Status      string       `json:"status"`
	StatusColor string       `json:"statusColor"`
	RiderName   string       `json:"riderName,omitempty"`
	ETALabel    string       `json:"etaLabel,omitempty"`
}

// RiderMarkers builds markers for every rider with a known position, in
// response order. Riders without a fix are skipped here but still count in
// the stats panel.
func RiderMarkers(riders []models.ActiveRider) []RiderMarker {
	out := make([]RiderMarker, 0, len(riders))
	for _, r := range riders {
		pos, ok := r.Position()
		if !ok {
			continue
		}
		vehicle := r.Vehicle()
		out = append(out, RiderMarker{
			ID:           r.ID,
			Position:     pos,
			Style:        VehicleStyle(vehicle, r.HasVerifiedBadge),
			Name:         r.Name,
			Online:       r.IsOnline,
			VehicleLabel: vehicleLabel(vehicle),
			Verified:     r.HasVerifiedBadge,
			Rating:       FormatRating(r.AverageRating),
			ActiveOrders: r.ActiveOrders,
		})
	}
	return out
}

// OrderMarkers builds markers for every order with a known store position,
// in response order.
func OrderMarkers(orders []models.DeliveryOrder) []OrderMarker {
	out := make([]OrderMarker, 0, len(orders))
	for _, o := range orders {
		pos, ok := o.StorePosition()
		if !ok {
			continue
		}
		m := OrderMarker{
			ID:          o.ID,
			ShortID:     shortID(o.ID),
			Position:    pos,
			Style:       StoreStyle(),
			Status:      string(o.Status),
			StatusColor: StatusColor(o.Status),
		}
		if o.Rider != nil {
			m.RiderName = o.Rider.Name
		}
		if o.EstimatedTime != nil {
			m.ETALabel = fmt.Sprintf("%d min", *o.EstimatedTime)
		}
		out = append(out, m)
	}
	return out
}

func vehicleLabel(v models.VehicleType) string {
	if v == models.VehicleBicycle {
		return "🚲 Bicicleta"
	}
	return "🏍️ Moto"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
