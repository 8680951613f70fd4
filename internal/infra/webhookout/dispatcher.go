// Package webhookout delivers domain events to subscriber endpoints.
package webhookout

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"puntoenvio-gateway/internal/domain/webhook"
	"puntoenvio-gateway/internal/pkg/clock"
	"puntoenvio-gateway/internal/pkg/config"
	"puntoenvio-gateway/internal/pkg/metrics"

	"github.com/google/uuid"
)

const maxResponseBodyBytes = 64 * 1024

type ConfigSource interface {
	ActiveByEvent(ctx context.Context, keyID uuid.UUID, event webhook.EventType) ([]webhook.Config, error)
}

type DeliveryLogWriter interface {
	InsertDelivery(ctx context.Context, rec webhook.DeliveryRecord) error
}

// Dispatcher fans an event out to every active matching configuration,
// signing each payload and recording one delivery-log row per attempt.
// Dispatch is detached from the triggering request: it never blocks the
// caller and never propagates failures back to it.
type Dispatcher struct {
	configs    ConfigSource
	deliveries DeliveryLogWriter
	client     *http.Client
	clock      clock.Clock
}

func NewDispatcher(configs ConfigSource, deliveries DeliveryLogWriter, cfg config.WebhookConfig, clk clock.Clock) *Dispatcher {
	return &Dispatcher{
		configs:    configs,
		deliveries: deliveries,
		client:     &http.Client{Timeout: cfg.DeliveryTimeout},
		clock:      clk,
	}
}

// Dispatch runs delivery on its own goroutine with its own error boundary.
// The triggering request's context is deliberately not used: the response has
// already been sent when deliveries run.
func (d *Dispatcher) Dispatch(keyID uuid.UUID, event webhook.EventType, payload any) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("recovered from panic in webhook dispatch", "event", string(event), "panic", r)
			}
		}()
		d.run(context.Background(), keyID, event, payload)
	}()
}

func (d *Dispatcher) run(ctx context.Context, keyID uuid.UUID, event webhook.EventType, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to marshal webhook payload", "event", string(event), "error", err.Error())
		return
	}

	configs, err := d.configs.ActiveByEvent(ctx, keyID, event)
	if err != nil {
		slog.Error("failed to load webhook configs", "event", string(event), "error", err.Error())
		return
	}

	for i := range configs {
		d.deliver(ctx, &configs[i], event, body)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, cfg *webhook.Config, event webhook.EventType, body []byte) {
	signature := webhook.Sign(cfg.Secret, body)

	for attempt := 1; attempt <= cfg.Attempts(); attempt++ {
		status, respBody, sendErr := d.send(ctx, cfg.URL, event, signature, body)

		rec := webhook.DeliveryRecord{
			ConfigID:   cfg.ID,
			Event:      event,
			Payload:    body,
			Attempt:    attempt,
			StatusCode: status,
		}
		if respBody != "" {
			rec.ResponseBody = &respBody
		}
		if sendErr != nil {
			msg := sendErr.Error()
			rec.ErrorMessage = &msg
		}
		delivered := sendErr == nil && status >= 200 && status < 300
		if delivered {
			now := d.clock.Now()
			rec.DeliveredAt = &now
		}
		if err := d.deliveries.InsertDelivery(ctx, rec); err != nil {
			slog.Warn("failed to record webhook delivery", "config_id", cfg.ID, "error", err.Error())
		}

		if delivered {
			metrics.WebhookDeliveriesTotal.WithLabelValues(string(event), "success").Inc()
			return
		}

		metrics.WebhookDeliveriesTotal.WithLabelValues(string(event), "failure").Inc()
		slog.Warn("webhook delivery attempt failed",
			"config_id", cfg.ID, "url", cfg.URL, "attempt", attempt, "status", status)

		if attempt < cfg.Attempts() && cfg.RetryDelay > 0 {
			time.Sleep(cfg.RetryDelay)
		}
	}
}

// send returns status 0 when the request itself failed before a response was
// obtained.
func (d *Dispatcher) send(ctx context.Context, url string, event webhook.EventType, signature string, body []byte) (int, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(webhook.SignatureHeader, signature)
	req.Header.Set(webhook.EventHeader, string(event))

	resp, err := d.client.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodyBytes))
	return resp.StatusCode, string(respBody), nil
}
