package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type OrderView struct {
	ID                 uuid.UUID
	Number             string
	Status             string
	SenderName         string
	SenderLocality     string
	RecipientName      string
	RecipientLocality  string
	PickupType         string
	DeliveryType       string
	PackageDescription string
	PickupDate         *time.Time
	ExternalRef        *string
	CreatedAt          time.Time
	Package            *PackageView
}

type PackageView struct {
	WeightKg      float64
	DeclaredValue float64
	HeightCm      *float64
	WidthCm       *float64
	LengthCm      *float64
	Fragile       bool
}

type TrackingEventView struct {
	Status     string
	Note       *string
	OccurredAt time.Time
}

type WebhookConfigView struct {
	ID                uuid.UUID
	URL               string
	Events            []string
	Active            bool
	MaxRetries        int
	RetryDelaySeconds int
	CreatedAt         time.Time
}

type DeliveryLogView struct {
	ID           uuid.UUID
	ConfigID     uuid.UUID
	Event        string
	Attempt      int
	StatusCode   int
	ResponseBody *string
	ErrorMessage *string
	DeliveredAt  *time.Time
	CreatedAt    time.Time
}
