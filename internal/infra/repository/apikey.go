package repository

import (
	"context"
	"time"

	"puntoenvio-gateway/internal/domain/apikey"
	"puntoenvio-gateway/internal/infra"
	"puntoenvio-gateway/internal/infra/db"
	"puntoenvio-gateway/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const findKeyByHashSQL = `
SELECT id, label, key_prefix, permissions, is_active, expires_at
FROM api_keys
WHERE key_hash = $1`

type APIKeyRepository struct {
	db db.DBTX
}

func NewAPIKeyRepository(dbtx db.DBTX) *APIKeyRepository {
	return &APIKeyRepository{db: dbtx}
}

// FindByHash looks up a key by the SHA-256 digest of its raw value. Validity
// and scope checks belong to the caller; this is a pure lookup.
func (r *APIKeyRepository) FindByHash(ctx context.Context, hash string) (*apikey.Key, error) {
	var (
		id          uuid.UUID
		label       string
		prefix      string
		permissions []string
		active      bool
		expiresAt   *time.Time
	)

	row := r.db.QueryRow(ctx, findKeyByHashSQL, hash)
	if err := row.Scan(&id, &label, &prefix, &permissions, &active, &expiresAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "api key not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find api key", err)
	}

	return apikey.ReconstructKey(id, label, prefix, apikey.ParsePermissions(permissions), active, expiresAt), nil
}
