package livemap

import (
	"fmt"
	"math"

	"github.com/example/giro-certo-ops/internal/models"
)

// Marker construction for the control-tower map. Everything here is a pure
// function over the fetched collections; the browser-side Leaflet layer only
// places what it is given. Keeping classification out of the widget means
// the same rules hold no matter which rendering library draws them.

// FallbackCenter is the metro-area default viewport (São Paulo) used when
// no plotted entity carries a coordinate. It seeds the config defaults for
// MAP_FALLBACK_LAT/LNG.
var FallbackCenter = models.Coord{Lat: -23.5505, Lng: -46.6333}

// Marker colors keyed by vehicle type and order status.
const (
	colorMotorcycle = "#3b82f6"
	colorBicycle    = "#10b981"
	colorStore      = "#f59e0b"
	colorNeutral    = "#6b7280"
)

var statusColors = map[models.DeliveryStatus]string{
	models.StatusPending:    "#f59e0b",
	models.StatusAccepted:   "#3b82f6",
	models.StatusInProgress: "#10b981",
	models.StatusCompleted:  "#6b7280",
	models.StatusCancelled:  "#ef4444",
}

// StatusColor resolves an order status to its badge color. Unrecognized
// statuses resolve to neutral gray rather than failing.
func StatusColor(status models.DeliveryStatus) string {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return colorNeutral
}

// MarkerStyle describes how a marker is drawn, independent of the map
// widget: circle color, diameter in pixels, emoji glyph and an optional
// corner badge.
type MarkerStyle struct {
	Color string `json:"color"`
	Size  int    `json:"size"`
	Glyph string `json:"glyph"`
	Badge string `json:"badge,omitempty"`
}

// VehicleStyle classifies a rider marker. Bicycles get the green bike
// presentation; everything else, including riders with no vehicle record,
// defaults to the motorcycle presentation. Verified riders are drawn larger
// with a check badge.
func VehicleStyle(vehicle models.VehicleType, verified bool) MarkerStyle {
	style := MarkerStyle{Color: colorMotorcycle, Size: 28, Glyph: "🏍️"}
	if vehicle == models.VehicleBicycle {
		style.Color = colorBicycle
		style.Glyph = "🚲"
	}
	if verified {
		style.Size = 32
		style.Badge = "✓"
	}
	return style
}

// StoreStyle is the fixed marker for order pickup points.
func StoreStyle() MarkerStyle {
	return MarkerStyle{Color: colorStore, Size: 28, Glyph: "🏪"}
}

// FormatRating renders a rider rating to one decimal, or "N/A" when the
// value is not a finite positive number.
func FormatRating(rating float64) string {
	if math.IsNaN(rating) || math.IsInf(rating, 0) || rating == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", rating)
}

// ComputeCenter is the arithmetic mean of every valid coordinate across both
// collections. Entities without a coordinate are excluded from the mean, not
// treated as zero; with nothing to average the fallback center is returned.
func ComputeCenter(riders []models.ActiveRider, orders []models.DeliveryOrder, fallback models.Coord) models.Coord {
	var sumLat, sumLng float64
	count := 0

	for _, r := range riders {
		if pos, ok := r.Position(); ok {
			sumLat += pos.Lat
			sumLng += pos.Lng
			count++
		}
	}
	for _, o := range orders {
		if pos, ok := o.StorePosition(); ok {
			sumLat += pos.Lat
			sumLng += pos.Lng
			count++
		}
	}

	if count == 0 {
		return fallback
	}
	return models.Coord{Lat: sumLat / float64(count), Lng: sumLng / float64(count)}
}
