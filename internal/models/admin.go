package models

type Role string

const (
	RoleUser      Role = "USER"
	RoleModerator Role = "MODERATOR"
	RoleAdmin     Role = "ADMIN"
)

type User struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Role             Role   `json:"role"`
	UserType         string `json:"userType,omitempty"`
	IsSubscriber     bool   `json:"isSubscriber"`
	SubscriptionType string `json:"subscriptionType,omitempty"`
	IsOnline         bool   `json:"isOnline"`
	CreatedAt        string `json:"createdAt,omitempty"`
}

type AlertType string

const (
	AlertDocumentExpiring    AlertType = "DOCUMENT_EXPIRING"
	AlertMaintenanceCritical AlertType = "MAINTENANCE_CRITICAL"
	AlertPaymentOverdue      AlertType = "PAYMENT_OVERDUE"
)

type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "LOW"
	SeverityMedium   AlertSeverity = "MEDIUM"
	SeverityHigh     AlertSeverity = "HIGH"
	SeverityCritical AlertSeverity = "CRITICAL"
)

type Alert struct {
	ID        string        `json:"id"`
	Type      AlertType     `json:"type"`
	Severity  AlertSeverity `json:"severity"`
	Title     string        `json:"title"`
	Message   string        `json:"message"`
	UserID    *string       `json:"userId"`
	PartnerID *string       `json:"partnerId"`
	IsRead    bool          `json:"isRead"`
	ReadAt    *string       `json:"readAt"`
	CreatedAt string        `json:"createdAt"`
}

type DisputeStatus string

const (
	DisputeOpen        DisputeStatus = "OPEN"
	DisputeUnderReview DisputeStatus = "UNDER_REVIEW"
	DisputeResolved    DisputeStatus = "RESOLVED"
	DisputeClosed      DisputeStatus = "CLOSED"
)

type DisputeType string

const (
	DisputeDeliveryIssue  DisputeType = "DELIVERY_ISSUE"
	DisputePaymentIssue   DisputeType = "PAYMENT_ISSUE"
	DisputeRiderComplaint DisputeType = "RIDER_COMPLAINT"
	DisputeStoreComplaint DisputeType = "STORE_COMPLAINT"
)

type Dispute struct {
	ID              string        `json:"id"`
	DeliveryOrderID *string       `json:"deliveryOrderId"`
	ReportedBy      string        `json:"reportedBy"`
	DisputeType     DisputeType   `json:"disputeType"`
	Status          DisputeStatus `json:"status"`
	Description     string        `json:"description"`
	Resolution      *string       `json:"resolution"`
	ResolvedBy      *string       `json:"resolvedBy"`
	ResolvedAt      *string       `json:"resolvedAt"`
	CreatedAt       string        `json:"createdAt"`
	UpdatedAt       string        `json:"updatedAt"`
	Reporter        *UserRef      `json:"reporter"`
	Resolver        *UserRef      `json:"resolver"`
}

type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PartnerType string

const (
	PartnerStore    PartnerType = "STORE"
	PartnerMechanic PartnerType = "MECHANIC"
)

type PaymentStatus string

const (
	PaymentActive    PaymentStatus = "ACTIVE"
	PaymentWarning   PaymentStatus = "WARNING"
	PaymentOverdue   PaymentStatus = "OVERDUE"
	PaymentSuspended PaymentStatus = "SUSPENDED"
)

type Partner struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        PartnerType     `json:"type"`
	Address     string          `json:"address"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	Phone       *string         `json:"phone"`
	Email       *string         `json:"email"`
	Rating      float64         `json:"rating"`
	IsTrusted   bool            `json:"isTrusted"`
	Specialties []string        `json:"specialties"`
	IsBlocked   bool            `json:"isBlocked"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
	Payment     *PartnerPayment `json:"payment"`
}

type PartnerPayment struct {
	ID              string        `json:"id"`
	PartnerID       string        `json:"partnerId"`
	PlanType        string        `json:"planType"`
	MonthlyFee      *float64      `json:"monthlyFee"`
	PercentageFee   *float64      `json:"percentageFee"`
	Status          PaymentStatus `json:"status"`
	DueDate         *string       `json:"dueDate"`
	LastPaymentDate *string       `json:"lastPaymentDate"`
}

type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "PENDING"
	DocumentApproved DocumentStatus = "APPROVED"
	DocumentRejected DocumentStatus = "REJECTED"
)

type CourierDocument struct {
	ID           string         `json:"id"`
	UserID       string         `json:"userId"`
	DocumentType string         `json:"documentType"`
	Status       DocumentStatus `json:"status"`
	FileURL      string         `json:"fileUrl,omitempty"`
	ExpiresAt    *string        `json:"expiresAt"`
	CreatedAt    string         `json:"createdAt"`
	User         *UserRef       `json:"user"`
}

type RegistrationStatus string

const (
	RegistrationPending     RegistrationStatus = "PENDING"
	RegistrationUnderReview RegistrationStatus = "UNDER_REVIEW"
	RegistrationApproved    RegistrationStatus = "APPROVED"
	RegistrationRejected    RegistrationStatus = "REJECTED"
)

type DeliveryRegistration struct {
	ID                string             `json:"id"`
	UserID            string             `json:"userId"`
	Status            RegistrationStatus `json:"status"`
	CpfCnh            string             `json:"cpfCnh"`
	PlateLicense      string             `json:"plateLicense"`
	CurrentKilometers int                `json:"currentKilometers"`
	EmergencyPhone    string             `json:"emergencyPhone,omitempty"`
	RejectionReason   string             `json:"rejectionReason,omitempty"`
	AdminNotes        string             `json:"adminNotes,omitempty"`
	ApprovedAt        *string            `json:"approvedAt"`
	ApprovedBy        *string            `json:"approvedBy"`
	CreatedAt         string             `json:"createdAt"`
	User              *UserRef           `json:"user"`
}

type OverduePartner struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       *string  `json:"email"`
	DueDate     *string  `json:"dueDate"`
	AmountOwed  float64  `json:"amountOwed"`
	DaysOverdue int      `json:"daysOverdue"`
	MonthlyFee  *float64 `json:"monthlyFee"`
}

type PendingCommission struct {
	ID              string  `json:"id"`
	UserID          string  `json:"userId"`
	DeliveryOrderID *string `json:"deliveryOrderId"`
	Amount          float64 `json:"amount"`
	Description     string  `json:"description,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

type RiderReliability struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	CompletedOrders int     `json:"completedOrders"`
	CancelledOrders int     `json:"cancelledOrders"`
	AverageRating   float64 `json:"averageRating"`
	ReliabilityPct  float64 `json:"reliabilityPct"`
}
