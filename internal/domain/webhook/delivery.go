package webhook

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryRecord is one append-only audit row per delivery attempt.
// StatusCode is 0 when the attempt failed before a response was obtained.
type DeliveryRecord struct {
	ConfigID     uuid.UUID
	Event        EventType
	Payload      []byte
	Attempt      int
	StatusCode   int
	ResponseBody *string
	ErrorMessage *string
	DeliveredAt  *time.Time
}
