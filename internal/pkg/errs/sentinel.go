package errs

import "errors"

// Gateway-wide sentinel errors mapped to HTTP statuses at the handler layer.
var (
	// Authentication errors
	ErrMissingAuthorization = errors.New("missing authorization")
	ErrInvalidAPIKey        = errors.New("invalid api key")

	// Request errors
	ErrValidation = errors.New("validation error")

	// Lookup errors
	ErrOrderNotFound         = errors.New("order not found")
	ErrWebhookConfigNotFound = errors.New("webhook configuration not found")

	// Operation errors
	ErrOrderNumberGeneration   = errors.New("order number generation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
