package response

import (
	"time"

	"puntoenvio-gateway/internal/usecase/queries"

	"github.com/google/uuid"
)

// WebhookConfigResponse never carries the shared secret.
type WebhookConfigResponse struct {
	ID                uuid.UUID  `json:"id"`
	URL               string     `json:"url"`
	Events            []string   `json:"events"`
	Active            bool       `json:"active"`
	MaxRetries        int        `json:"max_retries"`
	RetryDelaySeconds int        `json:"retry_delay_seconds"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
}

type DeliveryLogResponse struct {
	ID           uuid.UUID  `json:"id"`
	Event        string     `json:"event"`
	Attempt      int        `json:"attempt"`
	StatusCode   int        `json:"status_code"`
	ResponseBody *string    `json:"response_body,omitempty"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	DeliveredAt  *time.Time `json:"delivered_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func FromWebhookConfigView(v *queries.WebhookConfigView) *WebhookConfigResponse {
	resp := &WebhookConfigResponse{
		ID:                v.ID,
		URL:               v.URL,
		Events:            v.Events,
		Active:            v.Active,
		MaxRetries:        v.MaxRetries,
		RetryDelaySeconds: v.RetryDelaySeconds,
	}
	if !v.CreatedAt.IsZero() {
		createdAt := v.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}

func FromDeliveryLogView(v *queries.DeliveryLogView) *DeliveryLogResponse {
	return &DeliveryLogResponse{
		ID:           v.ID,
		Event:        v.Event,
		Attempt:      v.Attempt,
		StatusCode:   v.StatusCode,
		ResponseBody: v.ResponseBody,
		ErrorMessage: v.ErrorMessage,
		DeliveredAt:  v.DeliveredAt,
		CreatedAt:    v.CreatedAt,
	}
}
