package fleet

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/example/giro-certo-ops/internal/models"
)

// Filter narrows the control-tower queries. The zero value is the empty
// filter. Filters live only for the duration of a view; they are never
// persisted.
type Filter struct {
	VehicleType models.VehicleType    // empty = all vehicles
	Verified    *bool                 // nil = both verified and unverified
	OrderStatus models.DeliveryStatus // empty = all statuses
}

// RiderQuery serializes the rider/stats dimensions. An unset dimension is
// omitted entirely, never sent as an empty string.
func (f Filter) RiderQuery() string {
	var parts []string
	if f.VehicleType != "" {
		parts = append(parts, "vehicleType="+url.QueryEscape(string(f.VehicleType)))
	}
	if f.Verified != nil {
		parts = append(parts, "hasVerifiedBadge="+strconv.FormatBool(*f.Verified))
	}
	return strings.Join(parts, "&")
}

// OrderQuery serializes the order dimensions.
func (f Filter) OrderQuery() string {
	var parts []string
	if f.OrderStatus != "" {
		parts = append(parts, "status="+url.QueryEscape(string(f.OrderStatus)))
	}
	if f.VehicleType != "" {
		parts = append(parts, "vehicleType="+url.QueryEscape(string(f.VehicleType)))
	}
	return strings.Join(parts, "&")
}

// Key is a canonical identity for the full parameter set. Snapshot results
// are matched against the current key so a slow response for superseded
// parameters is never shown.
func (f Filter) Key() string {
	verified := "-"
	if f.Verified != nil {
		verified = strconv.FormatBool(*f.Verified)
	}
	return string(f.VehicleType) + "|" + verified + "|" + string(f.OrderStatus)
}

// ParseFilter builds a filter from UI query parameters, ignoring values the
// platform would not understand.
func ParseFilter(values url.Values) Filter {
	var f Filter
	switch models.VehicleType(values.Get("vehicleType")) {
	case models.VehicleMotorcycle:
		f.VehicleType = models.VehicleMotorcycle
	case models.VehicleBicycle:
		f.VehicleType = models.VehicleBicycle
	}
	switch values.Get("hasVerifiedBadge") {
	case "true":
		v := true
		f.Verified = &v
	case "false":
		v := false
		f.Verified = &v
	}
	switch s := models.DeliveryStatus(values.Get("status")); s {
	case models.StatusPending, models.StatusAccepted, models.StatusInProgress,
		models.StatusCompleted, models.StatusCancelled:
		f.OrderStatus = s
	}
	return f
}

func withQuery(path, query string) string {
	if query == "" {
		return path
	}
	return path + "?" + query
}
