package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"puntoenvio-gateway/internal/domain/apikey"
	"puntoenvio-gateway/internal/domain/order"
	"puntoenvio-gateway/internal/domain/pricing"
	"puntoenvio-gateway/internal/domain/webhook"
	"puntoenvio-gateway/internal/infra/db"
	"puntoenvio-gateway/internal/pkg/clock"
	"puntoenvio-gateway/internal/pkg/errs"
	"puntoenvio-gateway/internal/usecase"
	"puntoenvio-gateway/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepo struct {
	nextNumber    string
	nextNumberErr error
	calls         int
}

func (f *fakeOrderRepo) NextOrderNumber(_ context.Context, _ time.Time) (string, error) {
	f.calls++
	return f.nextNumber, f.nextNumberErr
}

func (f *fakeOrderRepo) CreateOrder(_ context.Context, _ db.DBTX, _ *order.Order) error {
	return nil
}

func (f *fakeOrderRepo) CreatePackage(_ context.Context, _ db.DBTX, _ uuid.UUID, _ order.PackageDetails) error {
	return nil
}

func (f *fakeOrderRepo) CreateTrackingEvent(_ context.Context, _ db.DBTX, _ uuid.UUID, _ order.Status, _ string, _ time.Time) error {
	return nil
}

type fakeDispatcher struct {
	events []webhook.EventType
}

func (f *fakeDispatcher) Dispatch(_ uuid.UUID, event webhook.EventType, _ any) {
	f.events = append(f.events, event)
}

func testKey() *apikey.Key {
	return apikey.ReconstructKey(
		uuid.New(), "partner", "pe_live_ab",
		apikey.NewPermissionSet(apikey.PermissionWrite), true, nil,
	)
}

func validDraft() order.Draft {
	return order.Draft{
		Sender:             order.Party{Name: "Juan Pérez"},
		Recipient:          order.Party{Name: "María Gómez"},
		PackageDescription: "Documentos",
		Service:            order.Service{PickupType: pricing.ServiceDomicile, DeliveryType: pricing.ServiceDomicile},
	}
}

// The validation and numbering paths fail before any transaction starts, so a
// nil pool proves no database work happened.
func TestCreateShipmentValidation(t *testing.T) {
	repo := &fakeOrderRepo{}
	dispatcher := &fakeDispatcher{}
	clk := clock.NewMockClock(time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC))
	sut := commands.NewShipmentUseCase(repo, dispatcher, nil, clk)

	draft := validDraft()
	draft.Recipient.Name = ""
	draft.PackageDescription = "  "

	_, err := sut.CreateShipment(context.Background(), draft, testKey())

	require.ErrorIs(t, err, errs.ErrValidation)
	var vErr *usecase.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"destinatario.nombre", "paquete.descripcion"}, vErr.Missing)

	assert.Zero(t, repo.calls)
	assert.Empty(t, dispatcher.events)
}

func TestCreateShipmentNumberGenerationFailure(t *testing.T) {
	repo := &fakeOrderRepo{nextNumberErr: errors.New("sequence unavailable")}
	dispatcher := &fakeDispatcher{}
	clk := clock.NewMockClock(time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC))
	sut := commands.NewShipmentUseCase(repo, dispatcher, nil, clk)

	_, err := sut.CreateShipment(context.Background(), validDraft(), testKey())

	assert.ErrorIs(t, err, errs.ErrOrderNumberGeneration)
	assert.Empty(t, dispatcher.events)
}
