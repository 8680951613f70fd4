package repository

import (
	"context"
	"time"

	"puntoenvio-gateway/internal/domain/order"
	"puntoenvio-gateway/internal/infra"
	"puntoenvio-gateway/internal/infra/db"
	"puntoenvio-gateway/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	nextOrderSeqSQL = `SELECT nextval('order_number_seq')`

	insertOrderSQL = `
INSERT INTO orders (
	id, order_number,
	sender_name, sender_address, sender_locality, sender_province, sender_phone, sender_email,
	recipient_name, recipient_address, recipient_locality, recipient_province, recipient_phone, recipient_email,
	pickup_type, delivery_type, package_description, pickup_date, external_ref, status, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`

	insertPackageSQL = `
INSERT INTO order_packages (order_id, weight_kg, declared_value, height_cm, width_cm, length_cm, fragile)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	insertTrackingEventSQL = `
INSERT INTO tracking_events (order_id, status, note, occurred_at)
VALUES ($1, $2, $3, $4)`
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) *OrderRepository {
	return &OrderRepository{db: dbtx}
}

// NextOrderNumber draws the next value from the shared sequence and formats
// it as a public order number for the given year.
func (r *OrderRepository) NextOrderNumber(ctx context.Context, now time.Time) (string, error) {
	var seq int64
	if err := r.db.QueryRow(ctx, nextOrderSeqSQL).Scan(&seq); err != nil {
		return "", infra.WrapRepoErr(infra.KindDBFailure, "failed to generate order number", err)
	}
	return order.FormatNumber(now.Year(), seq), nil
}

func (r *OrderRepository) CreateOrder(ctx context.Context, tx db.DBTX, o *order.Order) error {
	sender := o.Sender()
	recipient := o.Recipient()

	_, err := tx.Exec(ctx, insertOrderSQL,
		pgconv.UUIDToPgtype(o.ID()),
		o.Number(),
		sender.Name, sender.Address, sender.Locality, sender.Province, sender.Phone, sender.Email,
		recipient.Name, recipient.Address, recipient.Locality, recipient.Province, recipient.Phone, recipient.Email,
		string(o.Service().PickupType),
		string(o.Service().DeliveryType),
		o.PackageDescription(),
		pgconv.TimePtrToPgtype(o.PickupDate()),
		pgconv.StringPtrToPgtype(o.ExternalRef()),
		string(o.Status()),
		pgconv.TimeToPgtype(o.CreatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to insert order", err)
	}
	return nil
}

func (r *OrderRepository) CreatePackage(ctx context.Context, tx db.DBTX, orderID uuid.UUID, pkg order.PackageDetails) error {
	_, err := tx.Exec(ctx, insertPackageSQL,
		pgconv.UUIDToPgtype(orderID),
		pkg.WeightKg,
		pkg.DeclaredValue,
		pgconv.Float64PtrToPgtype(pkg.HeightCm),
		pgconv.Float64PtrToPgtype(pkg.WidthCm),
		pgconv.Float64PtrToPgtype(pkg.LengthCm),
		pkg.Fragile,
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to insert order package", err)
	}
	return nil
}

func (r *OrderRepository) CreateTrackingEvent(ctx context.Context, tx db.DBTX, orderID uuid.UUID, status order.Status, note string, at time.Time) error {
	_, err := tx.Exec(ctx, insertTrackingEventSQL,
		pgconv.UUIDToPgtype(orderID),
		string(status),
		note,
		pgconv.TimeToPgtype(at),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to insert tracking event", err)
	}
	return nil
}
