package usecase

import "strings"

// ValidationError names the exact missing required fields so clients can
// correct requests programmatically.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// InvalidEventsError names every requested event outside the fixed
// enumeration.
type InvalidEventsError struct {
	Invalid []string
	Valid   []string
}

func (e *InvalidEventsError) Error() string {
	return "invalid webhook events: " + strings.Join(e.Invalid, ", ")
}
