package queries

import (
	"context"

	"puntoenvio-gateway/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	defaultDeliveryPageSize = 20
	maxDeliveryPageSize     = 100
)

type WebhookReadStore interface {
	ListByKey(ctx context.Context, keyID uuid.UUID) ([]WebhookConfigView, error)
	ListDeliveries(ctx context.Context, configID, keyID uuid.UUID, limit int) ([]DeliveryLogView, error)
}

type WebhookQueries interface {
	List(ctx context.Context, keyID uuid.UUID) ([]WebhookConfigView, error)
	Deliveries(ctx context.Context, configID, keyID uuid.UUID, limit int) ([]DeliveryLogView, error)
}

type webhookQueriesImpl struct {
	store WebhookReadStore
}

func NewWebhookQueries(store WebhookReadStore) WebhookQueries {
	return &webhookQueriesImpl{store: store}
}

func (q *webhookQueriesImpl) List(ctx context.Context, keyID uuid.UUID) ([]WebhookConfigView, error) {
	views, err := q.store.ListByKey(ctx, keyID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

// Deliveries returns an empty list for a configuration the key does not own;
// ownership probing must look the same as an empty history.
func (q *webhookQueriesImpl) Deliveries(ctx context.Context, configID, keyID uuid.UUID, limit int) ([]DeliveryLogView, error) {
	if limit <= 0 {
		limit = defaultDeliveryPageSize
	}
	if limit > maxDeliveryPageSize {
		limit = maxDeliveryPageSize
	}

	views, err := q.store.ListDeliveries(ctx, configID, keyID, limit)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
