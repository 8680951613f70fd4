package queries

import (
	"context"
	"time"

	"puntoenvio-gateway/internal/domain/order"
	"puntoenvio-gateway/internal/infra"
	"puntoenvio-gateway/internal/pkg/errs"

	"github.com/google/uuid"
)

type TrackingReadStore interface {
	FindOrderByNumber(ctx context.Context, number string) (*OrderView, error)
	FindHistory(ctx context.Context, orderID uuid.UUID) ([]TrackingEventView, error)
}

// TrackingResult is the full authenticated view; handlers reduce it for
// unauthenticated callers.
type TrackingResult struct {
	Order             *OrderView
	History           []TrackingEventView
	EstimatedDelivery *time.Time
}

type TrackingQueries interface {
	Track(ctx context.Context, number string) (*TrackingResult, error)
}

type trackingQueriesImpl struct {
	store        TrackingReadStore
	transitHours int
}

func NewTrackingQueries(store TrackingReadStore, transitHours int) TrackingQueries {
	return &trackingQueriesImpl{
		store:        store,
		transitHours: transitHours,
	}
}

func (q *trackingQueriesImpl) Track(ctx context.Context, number string) (*TrackingResult, error) {
	// A malformed number can never match; skip the lookup.
	if !order.IsValidNumber(number) {
		return nil, errs.ErrOrderNotFound
	}

	orderView, err := q.store.FindOrderByNumber(ctx, number)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOrderNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	history, err := q.store.FindHistory(ctx, orderView.ID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	result := &TrackingResult{
		Order:   orderView,
		History: history,
	}
	if len(history) > 0 {
		estimate := orderView.CreatedAt.Add(time.Duration(q.transitHours) * time.Hour)
		result.EstimatedDelivery = &estimate
	}
	return result, nil
}
