package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"puntoenvio-gateway/internal/domain/apikey"
	"puntoenvio-gateway/internal/domain/order"
	"puntoenvio-gateway/internal/domain/webhook"
	"puntoenvio-gateway/internal/infra/db"
	"puntoenvio-gateway/internal/pkg/clock"
	"puntoenvio-gateway/internal/pkg/errs"
	"puntoenvio-gateway/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository interface {
	NextOrderNumber(ctx context.Context, now time.Time) (string, error)
	CreateOrder(ctx context.Context, tx db.DBTX, o *order.Order) error
	CreatePackage(ctx context.Context, tx db.DBTX, orderID uuid.UUID, pkg order.PackageDetails) error
	CreateTrackingEvent(ctx context.Context, tx db.DBTX, orderID uuid.UUID, status order.Status, note string, at time.Time) error
}

// EventDispatcher is fire-and-forget: implementations must not block the
// caller or propagate delivery failures back to it.
type EventDispatcher interface {
	Dispatch(keyID uuid.UUID, event webhook.EventType, payload any)
}

type CreateShipmentResult struct {
	OrderID     uuid.UUID
	OrderNumber string
	Status      order.Status
	CreatedAt   time.Time
}

type ShipmentCommands interface {
	CreateShipment(ctx context.Context, draft order.Draft, key *apikey.Key) (*CreateShipmentResult, error)
}

type shipmentUseCaseImpl struct {
	orderRepo  OrderRepository
	dispatcher EventDispatcher
	db         *pgxpool.Pool
	clock      clock.Clock
}

func NewShipmentUseCase(
	orderRepo OrderRepository,
	dispatcher EventDispatcher,
	db *pgxpool.Pool,
	clock clock.Clock,
) ShipmentCommands {
	return &shipmentUseCaseImpl{
		orderRepo:  orderRepo,
		dispatcher: dispatcher,
		db:         db,
		clock:      clock,
	}
}

type shipmentCreatedPayload struct {
	Event       string    `json:"event"`
	OrderNumber string    `json:"numero_orden"`
	Status      string    `json:"estado"`
	CreatedAt   time.Time `json:"fecha_creacion"`
	ExternalRef *string   `json:"referencia_externa,omitempty"`
}

func (s *shipmentUseCaseImpl) CreateShipment(
	ctx context.Context,
	draft order.Draft,
	key *apikey.Key,
) (*CreateShipmentResult, error) {
	if missing := draft.MissingFields(); len(missing) > 0 {
		return nil, errs.Mark(&usecase.ValidationError{Missing: missing}, errs.ErrValidation)
	}

	now := s.clock.Now()
	number, err := s.orderRepo.NextOrderNumber(ctx, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrOrderNumberGeneration)
	}

	orderEntity := order.NewOrder(number, draft, now)

	if err := s.persistShipment(ctx, orderEntity, key); err != nil {
		return nil, err
	}

	// The dispatcher runs detached; a delivery failure never surfaces here.
	s.dispatcher.Dispatch(key.ID(), webhook.EventShipmentCreated, shipmentCreatedPayload{
		Event:       string(webhook.EventShipmentCreated),
		OrderNumber: orderEntity.Number(),
		Status:      string(orderEntity.Status()),
		CreatedAt:   orderEntity.CreatedAt(),
		ExternalRef: orderEntity.ExternalRef(),
	})

	return &CreateShipmentResult{
		OrderID:     orderEntity.ID(),
		OrderNumber: orderEntity.Number(),
		Status:      orderEntity.Status(),
		CreatedAt:   orderEntity.CreatedAt(),
	}, nil
}

// persistShipment writes the order, its optional package record and the
// initial tracking event in one transaction, so a partial shipment can never
// become visible to tracking reads.
func (s *shipmentUseCaseImpl) persistShipment(ctx context.Context, o *order.Order, key *apikey.Key) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := s.orderRepo.CreateOrder(ctx, tx, o); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if pkg := o.Package(); pkg != nil {
		if err := s.orderRepo.CreatePackage(ctx, tx, o.ID(), *pkg); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	if err := s.orderRepo.CreateTrackingEvent(ctx, tx, o.ID(), o.Status(), creationNote(o, key), o.CreatedAt()); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return errs.Mark(commitErr, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func creationNote(o *order.Order, key *apikey.Key) string {
	note := fmt.Sprintf("Orden creada vía API (%s)", key.Label())
	if ref := o.ExternalRef(); ref != nil {
		note = fmt.Sprintf("%s, ref. externa %s", note, *ref)
	}
	return note
}
