package repository

import (
	"context"

	"puntoenvio-gateway/internal/infra"
	"puntoenvio-gateway/internal/infra/db"
	"puntoenvio-gateway/internal/pkg/pgconv"
	"puntoenvio-gateway/internal/usecase"
)

const insertUsageLogSQL = `
INSERT INTO api_usage_logs (key_id, endpoint, method, status_code, ip, user_agent, latency_ms, error_message, occurred_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

type UsageLogRepository struct {
	db db.DBTX
}

func NewUsageLogRepository(dbtx db.DBTX) *UsageLogRepository {
	return &UsageLogRepository{db: dbtx}
}

func (r *UsageLogRepository) Insert(ctx context.Context, entry usecase.UsageEntry) error {
	_, err := r.db.Exec(ctx, insertUsageLogSQL,
		entry.KeyID,
		entry.Endpoint,
		entry.Method,
		entry.StatusCode,
		entry.IP,
		entry.UserAgent,
		entry.LatencyMs,
		pgconv.StringPtrToPgtype(entry.ErrorMessage),
		pgconv.TimeToPgtype(entry.OccurredAt),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to insert usage log entry", err)
	}
	return nil
}
