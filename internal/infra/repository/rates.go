package repository

import (
	"context"

	"puntoenvio-gateway/internal/domain/pricing"
	"puntoenvio-gateway/internal/infra"
	"puntoenvio-gateway/internal/infra/db"
	"puntoenvio-gateway/internal/pkg/pgconv"
)

const (
	findRouteRateSQL = `
SELECT base_rate, transit_hours
FROM shipping_rates
WHERE lower(origin_province) = lower($1) AND lower(dest_province) = lower($2)
LIMIT 1`

	findLegRateSQL = `
SELECT rate
FROM carrier_rates
WHERE leg = $1 AND service_point = $2 AND weight_min <= $3 AND weight_max >= $3
ORDER BY weight_min
LIMIT 1`
)

// RateRepository reads the externally-owned rate tables. Missing rows are not
// errors: the pricing engine applies its fallback policy on nil.
type RateRepository struct {
	db db.DBTX
}

func NewRateRepository(dbtx db.DBTX) *RateRepository {
	return &RateRepository{db: dbtx}
}

func (r *RateRepository) RouteRate(ctx context.Context, originProvince, destProvince string) (*pricing.RouteRate, error) {
	var rate pricing.RouteRate

	row := r.db.QueryRow(ctx, findRouteRateSQL, originProvince, destProvince)
	if err := row.Scan(&rate.BaseRate, &rate.TransitHours); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find route rate", err)
	}
	return &rate, nil
}

func (r *RateRepository) LegRate(ctx context.Context, leg pricing.Leg, point pricing.ServicePoint, weightKg float64) (*float64, error) {
	var rate float64

	row := r.db.QueryRow(ctx, findLegRateSQL, string(leg), string(point), weightKg)
	if err := row.Scan(&rate); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find carrier leg rate", err)
	}
	return &rate, nil
}
