package models

// Shapes mirror the Giro Certo platform API responses. All of these are
// read-only views: the console never mutates them locally, it re-fetches.

type VehicleType string

const (
	VehicleMotorcycle VehicleType = "MOTORCYCLE"
	VehicleBicycle    VehicleType = "BICYCLE"
)

type DeliveryStatus string

const (
	StatusPending    DeliveryStatus = "pending"
	StatusAccepted   DeliveryStatus = "accepted"
	StatusInProgress DeliveryStatus = "inProgress"
	StatusCompleted  DeliveryStatus = "completed"
	StatusCancelled  DeliveryStatus = "cancelled"
)

type Coord struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Bike struct {
	ID          string      `json:"id"`
	VehicleType VehicleType `json:"vehicleType"`
	Model       string      `json:"model"`
	Brand       string      `json:"brand"`
	Plate       string      `json:"plate,omitempty"`
}

// ActiveRider is a courier as reported by the live-fleet endpoint.
// Lat/Lng are pointers: a rider the platform has no fix for is still a
// rider (and still counts in stats), it just cannot be plotted.
type ActiveRider struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Lat              *float64 `json:"lat"`
	Lng              *float64 `json:"lng"`
	IsOnline         bool     `json:"isOnline"`
	HasVerifiedBadge bool     `json:"hasVerifiedBadge"`
	IsSubscriber     bool     `json:"isSubscriber"`
	SubscriptionType string   `json:"subscriptionType"`
	Bike             *Bike    `json:"bike"`
	AverageRating    float64  `json:"averageRating"`
	ActiveOrders     int      `json:"activeOrders"`
}

// Position returns the rider's coordinate and whether one is known.
func (r ActiveRider) Position() (Coord, bool) {
	if r.Lat == nil || r.Lng == nil {
		return Coord{}, false
	}
	return Coord{Lat: *r.Lat, Lng: *r.Lng}, true
}

// Vehicle returns the rider's vehicle type, defaulting to motorcycle when
// no bike record is attached.
func (r ActiveRider) Vehicle() VehicleType {
	if r.Bike == nil || r.Bike.VehicleType == "" {
		return VehicleMotorcycle
	}
	return r.Bike.VehicleType
}

// DeliveryOrder is an in-flight order from the dashboard orders endpoint.
type DeliveryOrder struct {
	ID                string         `json:"id"`
	StoreLatitude     *float64       `json:"storeLatitude"`
	StoreLongitude    *float64       `json:"storeLongitude"`
	DeliveryLatitude  *float64       `json:"deliveryLatitude"`
	DeliveryLongitude *float64       `json:"deliveryLongitude"`
	Status            DeliveryStatus `json:"status"`
	EstimatedTime     *int           `json:"estimatedTime"`
	Rider             *OrderRider    `json:"rider"`
	Bike              *Bike          `json:"bike"`
}

type OrderRider struct {
	Name string `json:"name"`
}

// StorePosition returns the pickup coordinate and whether one is known.
// Orders without a store fix are excluded from the map, not from stats.
func (o DeliveryOrder) StorePosition() (Coord, bool) {
	if o.StoreLatitude == nil || o.StoreLongitude == nil {
		return Coord{}, false
	}
	return Coord{Lat: *o.StoreLatitude, Lng: *o.StoreLongitude}, true
}

type RidersByType struct {
	Motorcycles int `json:"motorcycles"`
	Bicycles    int `json:"bicycles"`
}

// DashboardStats is derived server-side by the platform and re-fetched
// whenever the filter changes; the console never computes it locally.
type DashboardStats struct {
	ActiveRiders       int          `json:"activeRiders"`
	ActiveRidersByType RidersByType `json:"activeRidersByType"`
	TodaysOrders       int          `json:"todaysOrders"`
	PremiumSubscribers int          `json:"premiumSubscribers"`
	TotalRevenue       float64      `json:"totalRevenue"`
	PendingOrders      int          `json:"pendingOrders"`
	CompletedOrders    int          `json:"completedOrders"`
	InProgressOrders   int          `json:"inProgressOrders"`
	VerifiedRiders     int          `json:"verifiedRiders"`
}
