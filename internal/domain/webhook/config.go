package webhook

import (
	"errors"
	"net/url"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventShipmentCreated EventType = "shipment_created"
	EventStatusUpdated   EventType = "status_updated"
	EventDelivered       EventType = "delivered"
	EventCancelled       EventType = "cancelled"
	EventException       EventType = "exception"
)

var validEvents = map[EventType]struct{}{
	EventShipmentCreated: {},
	EventStatusUpdated:   {},
	EventDelivered:       {},
	EventCancelled:       {},
	EventException:       {},
}

func (e EventType) IsValid() bool {
	_, ok := validEvents[e]
	return ok
}

func ValidEventNames() []string {
	return []string{
		string(EventShipmentCreated),
		string(EventStatusUpdated),
		string(EventDelivered),
		string(EventCancelled),
		string(EventException),
	}
}

// InvalidEvents returns the names that do not belong to the event enumeration,
// preserving request order so responses can name every offender.
func InvalidEvents(names []string) []string {
	var invalid []string
	for _, name := range names {
		if !EventType(name).IsValid() {
			invalid = append(invalid, name)
		}
	}
	return invalid
}

var (
	ErrInvalidURL  = errors.New("webhook url must be an absolute http(s) url")
	ErrNoEvents    = errors.New("webhook must subscribe to at least one event")
	ErrEmptySecret = errors.New("webhook secret must not be empty")
)

// ValidateURL accepts absolute http/https URLs only.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return ErrInvalidURL
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidURL
	}
	return nil
}

// Config is a subscriber's registered endpoint plus the events pushed to it.
type Config struct {
	ID         uuid.UUID
	APIKeyID   uuid.UUID
	URL        string
	Secret     string
	Events     []EventType
	Active     bool
	MaxRetries int
	RetryDelay time.Duration
}

// SubscribedTo reports whether the configuration wants the given event.
func (c *Config) SubscribedTo(event EventType) bool {
	for _, e := range c.Events {
		if e == event {
			return true
		}
	}
	return false
}

// Attempts is the total delivery attempts the dispatcher makes: the initial
// one plus MaxRetries.
func (c *Config) Attempts() int {
	if c.MaxRetries < 0 {
		return 1
	}
	return 1 + c.MaxRetries
}
