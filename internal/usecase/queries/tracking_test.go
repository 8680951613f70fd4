package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"puntoenvio-gateway/internal/infra"
	"puntoenvio-gateway/internal/pkg/errs"
	"puntoenvio-gateway/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTrackingStore struct {
	order      *queries.OrderView
	orderErr   error
	history    []queries.TrackingEventView
	historyErr error
	lookups    int
}

func (f *fakeTrackingStore) FindOrderByNumber(_ context.Context, _ string) (*queries.OrderView, error) {
	f.lookups++
	return f.order, f.orderErr
}

func (f *fakeTrackingStore) FindHistory(_ context.Context, _ uuid.UUID) ([]queries.TrackingEventView, error) {
	return f.history, f.historyErr
}

func TestTrackMalformedNumberSkipsLookup(t *testing.T) {
	store := &fakeTrackingStore{}
	sut := queries.NewTrackingQueries(store, 72)

	_, err := sut.Track(context.Background(), "not-an-order")

	assert.ErrorIs(t, err, errs.ErrOrderNotFound)
	assert.Zero(t, store.lookups)
}

func TestTrackUnknownNumber(t *testing.T) {
	store := &fakeTrackingStore{
		orderErr: infra.WrapRepoErr(infra.KindNotFound, "order not found", errors.New("no rows")),
	}
	sut := queries.NewTrackingQueries(store, 72)

	_, err := sut.Track(context.Background(), "PE-2025-000001")

	assert.ErrorIs(t, err, errs.ErrOrderNotFound)
}

func TestTrackEstimatesDeliveryFromCreation(t *testing.T) {
	createdAt := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	store := &fakeTrackingStore{
		order: &queries.OrderView{
			ID:        uuid.New(),
			Number:    "PE-2025-000001",
			Status:    "pending",
			CreatedAt: createdAt,
		},
		history: []queries.TrackingEventView{
			{Status: "pending", OccurredAt: createdAt},
		},
	}
	sut := queries.NewTrackingQueries(store, 72)

	res, err := sut.Track(context.Background(), "PE-2025-000001")
	require.NoError(t, err)

	require.NotNil(t, res.EstimatedDelivery)
	assert.Equal(t, createdAt.Add(72*time.Hour), *res.EstimatedDelivery)
}

func TestTrackNoHistoryNoEstimate(t *testing.T) {
	store := &fakeTrackingStore{
		order: &queries.OrderView{ID: uuid.New(), Number: "PE-2025-000001"},
	}
	sut := queries.NewTrackingQueries(store, 72)

	res, err := sut.Track(context.Background(), "PE-2025-000001")
	require.NoError(t, err)

	assert.Nil(t, res.EstimatedDelivery)
}
