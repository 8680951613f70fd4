package repository

import (
	"context"

	"puntoenvio-gateway/internal/infra"
	"puntoenvio-gateway/internal/infra/db"
	"puntoenvio-gateway/internal/pkg/pgconv"
	"puntoenvio-gateway/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	findOrderByNumberSQL = `
SELECT o.id, o.order_number, o.status,
	o.sender_name, o.sender_locality,
	o.recipient_name, o.recipient_locality,
	o.pickup_type, o.delivery_type,
	o.package_description, o.pickup_date, o.external_ref, o.created_at,
	p.weight_kg, p.declared_value, p.height_cm, p.width_cm, p.length_cm, p.fragile
FROM orders o
LEFT JOIN order_packages p ON p.order_id = o.id
WHERE o.order_number = $1`

	findTrackingHistorySQL = `
SELECT status, note, occurred_at
FROM tracking_events
WHERE order_id = $1
ORDER BY occurred_at ASC, id ASC`
)

// TrackingReadStore serves the public and authenticated tracking views.
type TrackingReadStore struct {
	db db.DBTX
}

func NewTrackingReadStore(dbtx db.DBTX) *TrackingReadStore {
	return &TrackingReadStore{db: dbtx}
}

func (s *TrackingReadStore) FindOrderByNumber(ctx context.Context, number string) (*queries.OrderView, error) {
	var (
		view          queries.OrderView
		weightKg      *float64
		declaredValue *float64
		heightCm      *float64
		widthCm       *float64
		lengthCm      *float64
		fragile       *bool
	)

	row := s.db.QueryRow(ctx, findOrderByNumberSQL, number)
	err := row.Scan(
		&view.ID, &view.Number, &view.Status,
		&view.SenderName, &view.SenderLocality,
		&view.RecipientName, &view.RecipientLocality,
		&view.PickupType, &view.DeliveryType,
		&view.PackageDescription, &view.PickupDate, &view.ExternalRef, &view.CreatedAt,
		&weightKg, &declaredValue, &heightCm, &widthCm, &lengthCm, &fragile,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "order not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find order", err)
	}

	if weightKg != nil && declaredValue != nil {
		view.Package = &queries.PackageView{
			WeightKg:      *weightKg,
			DeclaredValue: *declaredValue,
			HeightCm:      heightCm,
			WidthCm:       widthCm,
			LengthCm:      lengthCm,
			Fragile:       fragile != nil && *fragile,
		}
	}

	return &view, nil
}

func (s *TrackingReadStore) FindHistory(ctx context.Context, orderID uuid.UUID) ([]queries.TrackingEventView, error) {
	rows, err := s.db.Query(ctx, findTrackingHistorySQL, pgconv.UUIDToPgtype(orderID))
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list tracking history", err)
	}
	defer rows.Close()

	var history []queries.TrackingEventView
	for rows.Next() {
		var ev queries.TrackingEventView
		if err := rows.Scan(&ev.Status, &ev.Note, &ev.OccurredAt); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan tracking event", err)
		}
		history = append(history, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate tracking history", err)
	}

	return history, nil
}
