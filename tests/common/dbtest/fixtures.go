//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"puntoenvio-gateway/internal/domain/apikey"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Raw bearer keys seeded for e2e suites. Only the digests are stored.
const (
	TestReadKey  = "pe_test_read_0000000000000000"
	TestWriteKey = "pe_test_write_000000000000000"
)

func CreateTestAPIKey(t *testing.T, db DBLike, rawKey, label string, permissions []string) uuid.UUID {
	t.Helper()

	keyID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO api_keys (id, key_hash, key_prefix, label, permissions, is_active)
		VALUES ($1, $2, $3, $4, $5, true)
		ON CONFLICT (key_hash) DO NOTHING`,
		keyID, apikey.HashKey(rawKey), rawKey[:10], label, permissions)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM api_keys WHERE key_hash = $1", apikey.HashKey(rawKey)).Scan(&keyID)
	}

	return keyID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO api_keys (id, key_hash, key_prefix, label, permissions, is_active) VALUES
		    (gen_random_uuid(), $1, $2, 'e2e read key', '{read}', true),
		    (gen_random_uuid(), $3, $4, 'e2e write key', '{read,write}', true)
		ON CONFLICT (key_hash) DO NOTHING;`,
		apikey.HashKey(TestReadKey), TestReadKey[:10],
		apikey.HashKey(TestWriteKey), TestWriteKey[:10])
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO shipping_rates (origin_province, dest_province, base_rate, transit_hours) VALUES
		    ('Córdoba', 'Córdoba', 3000, 48),
		    ('Córdoba', 'Santa Fe', 5000, 72)
		ON CONFLICT (origin_province, dest_province) DO NOTHING;`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO carrier_rates (leg, service_point, weight_min, weight_max, rate) VALUES
		    ('pickup', 'domicilio', 0, 5, 800),
		    ('pickup', 'agencia', 0, 5, 400),
		    ('delivery', 'domicilio', 0, 5, 800),
		    ('delivery', 'agencia', 0, 5, 400)
		ON CONFLICT DO NOTHING;`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
