package repository

import (
	"context"
	"time"

	"puntoenvio-gateway/internal/domain/webhook"
	"puntoenvio-gateway/internal/infra"
	"puntoenvio-gateway/internal/infra/db"
	"puntoenvio-gateway/internal/pkg/pgconv"
	"puntoenvio-gateway/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	insertWebhookConfigSQL = `
INSERT INTO webhook_configs (id, api_key_id, url, secret, events, is_active, max_retries, retry_delay_seconds, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	listWebhookConfigsSQL = `
SELECT id, url, events, is_active, max_retries, retry_delay_seconds, created_at
FROM webhook_configs
WHERE api_key_id = $1
ORDER BY created_at ASC`

	updateWebhookConfigSQL = `
UPDATE webhook_configs
SET url = $3, secret = $4, events = $5, is_active = $6, max_retries = $7, retry_delay_seconds = $8
WHERE id = $1 AND api_key_id = $2`

	deleteWebhookConfigSQL = `
DELETE FROM webhook_configs
WHERE id = $1 AND api_key_id = $2`

	activeWebhooksByEventSQL = `
SELECT id, api_key_id, url, secret, events, max_retries, retry_delay_seconds
FROM webhook_configs
WHERE api_key_id = $1 AND is_active = true AND $2 = ANY(events)`

	insertDeliveryLogSQL = `
INSERT INTO webhook_delivery_logs (config_id, event, payload, attempt, status_code, response_body, error_message, delivered_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	listDeliveryLogsSQL = `
SELECT l.id, l.config_id, l.event, l.attempt, l.status_code, l.response_body, l.error_message, l.delivered_at, l.created_at
FROM webhook_delivery_logs l
JOIN webhook_configs c ON c.id = l.config_id
WHERE l.config_id = $1 AND c.api_key_id = $2
ORDER BY l.created_at DESC
LIMIT $3`
)

type WebhookRepository struct {
	db db.DBTX
}

func NewWebhookRepository(dbtx db.DBTX) *WebhookRepository {
	return &WebhookRepository{db: dbtx}
}

func (r *WebhookRepository) Create(ctx context.Context, cfg *webhook.Config, now time.Time) error {
	_, err := r.db.Exec(ctx, insertWebhookConfigSQL,
		pgconv.UUIDToPgtype(cfg.ID),
		pgconv.UUIDToPgtype(cfg.APIKeyID),
		cfg.URL,
		cfg.Secret,
		eventNames(cfg.Events),
		cfg.Active,
		cfg.MaxRetries,
		int(cfg.RetryDelay/time.Second),
		pgconv.TimeToPgtype(now),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to insert webhook config", err)
	}
	return nil
}

// ListByKey never exposes another key's configurations, and omits secrets.
func (r *WebhookRepository) ListByKey(ctx context.Context, keyID uuid.UUID) ([]queries.WebhookConfigView, error) {
	rows, err := r.db.Query(ctx, listWebhookConfigsSQL, pgconv.UUIDToPgtype(keyID))
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list webhook configs", err)
	}
	defer rows.Close()

	var views []queries.WebhookConfigView
	for rows.Next() {
		var v queries.WebhookConfigView
		if err := rows.Scan(&v.ID, &v.URL, &v.Events, &v.Active, &v.MaxRetries, &v.RetryDelaySeconds, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan webhook config", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate webhook configs", err)
	}

	return views, nil
}

// Update is scoped by both id and owning key; a foreign id affects zero rows.
func (r *WebhookRepository) Update(ctx context.Context, cfg *webhook.Config) (int64, error) {
	tag, err := r.db.Exec(ctx, updateWebhookConfigSQL,
		pgconv.UUIDToPgtype(cfg.ID),
		pgconv.UUIDToPgtype(cfg.APIKeyID),
		cfg.URL,
		cfg.Secret,
		eventNames(cfg.Events),
		cfg.Active,
		cfg.MaxRetries,
		int(cfg.RetryDelay/time.Second),
	)
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to update webhook config", err)
	}
	return tag.RowsAffected(), nil
}

func (r *WebhookRepository) Delete(ctx context.Context, id, keyID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteWebhookConfigSQL, pgconv.UUIDToPgtype(id), pgconv.UUIDToPgtype(keyID))
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to delete webhook config", err)
	}
	return tag.RowsAffected(), nil
}

// ActiveByEvent returns full configurations, secrets included, for the
// dispatcher's fan-out.
func (r *WebhookRepository) ActiveByEvent(ctx context.Context, keyID uuid.UUID, event webhook.EventType) ([]webhook.Config, error) {
	rows, err := r.db.Query(ctx, activeWebhooksByEventSQL, pgconv.UUIDToPgtype(keyID), string(event))
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list active webhook configs", err)
	}
	defer rows.Close()

	var configs []webhook.Config
	for rows.Next() {
		var (
			cfg       webhook.Config
			events    []string
			delaySecs int
		)
		if err := rows.Scan(&cfg.ID, &cfg.APIKeyID, &cfg.URL, &cfg.Secret, &events, &cfg.MaxRetries, &delaySecs); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan webhook config", err)
		}
		cfg.Active = true
		cfg.RetryDelay = time.Duration(delaySecs) * time.Second
		for _, e := range events {
			cfg.Events = append(cfg.Events, webhook.EventType(e))
		}
		configs = append(configs, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate active webhook configs", err)
	}

	return configs, nil
}

func (r *WebhookRepository) InsertDelivery(ctx context.Context, rec webhook.DeliveryRecord) error {
	_, err := r.db.Exec(ctx, insertDeliveryLogSQL,
		pgconv.UUIDToPgtype(rec.ConfigID),
		string(rec.Event),
		rec.Payload,
		rec.Attempt,
		rec.StatusCode,
		pgconv.StringPtrToPgtype(rec.ResponseBody),
		pgconv.StringPtrToPgtype(rec.ErrorMessage),
		pgconv.TimePtrToPgtype(rec.DeliveredAt),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to insert webhook delivery log", err)
	}
	return nil
}

func (r *WebhookRepository) ListDeliveries(ctx context.Context, configID, keyID uuid.UUID, limit int) ([]queries.DeliveryLogView, error) {
	rows, err := r.db.Query(ctx, listDeliveryLogsSQL,
		pgconv.UUIDToPgtype(configID), pgconv.UUIDToPgtype(keyID), limit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list webhook deliveries", err)
	}
	defer rows.Close()

	var views []queries.DeliveryLogView
	for rows.Next() {
		var v queries.DeliveryLogView
		if err := rows.Scan(&v.ID, &v.ConfigID, &v.Event, &v.Attempt, &v.StatusCode, &v.ResponseBody, &v.ErrorMessage, &v.DeliveredAt, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan webhook delivery", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate webhook deliveries", err)
	}

	return views, nil
}

func eventNames(events []webhook.EventType) []string {
	names := make([]string, len(events))
	for i, e := range events {
		names[i] = string(e)
	}
	return names
}
