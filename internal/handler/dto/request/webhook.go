package request

import (
	"puntoenvio-gateway/internal/usecase/commands"
)

const (
	defaultMaxRetries        = 3
	defaultRetryDelaySeconds = 60
)

type WebhookConfigRequest struct {
	URL               string   `json:"url"`
	Secret            string   `json:"secret"`
	Events            []string `json:"events"`
	Active            *bool    `json:"active"`
	MaxRetries        *int     `json:"max_retries"`
	RetryDelaySeconds *int     `json:"retry_delay_seconds"`
}

func (r WebhookConfigRequest) ToParams() commands.WebhookParams {
	params := commands.WebhookParams{
		URL:               r.URL,
		Secret:            r.Secret,
		Events:            r.Events,
		Active:            true,
		MaxRetries:        defaultMaxRetries,
		RetryDelaySeconds: defaultRetryDelaySeconds,
	}
	if r.Active != nil {
		params.Active = *r.Active
	}
	if r.MaxRetries != nil {
		params.MaxRetries = *r.MaxRetries
	}
	if r.RetryDelaySeconds != nil {
		params.RetryDelaySeconds = *r.RetryDelaySeconds
	}
	return params
}
