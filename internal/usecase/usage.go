package usecase

import (
	"context"
	"log/slog"
	"time"
)

// SentinelPublicKey is recorded as the key identifier for requests that never
// produced an authenticated key context (public tracking, auth failures).
const SentinelPublicKey = "public"

// UsageEntry is one audit row per inbound request, success or failure.
type UsageEntry struct {
	KeyID        string
	Endpoint     string
	Method       string
	StatusCode   int
	IP           string
	UserAgent    string
	LatencyMs    int64
	ErrorMessage *string
	OccurredAt   time.Time
}

type UsageLogRepository interface {
	Insert(ctx context.Context, entry UsageEntry) error
}

// UsageRecorder is the fire-and-forget write path for usage entries. Failures
// are swallowed: a lost audit row must never alter the response already being
// sent.
type UsageRecorder interface {
	Record(ctx context.Context, entry UsageEntry)
}

type usageRecorderImpl struct {
	repo UsageLogRepository
}

func NewUsageRecorder(repo UsageLogRepository) UsageRecorder {
	return &usageRecorderImpl{repo: repo}
}

func (r *usageRecorderImpl) Record(ctx context.Context, entry UsageEntry) {
	if err := r.repo.Insert(ctx, entry); err != nil {
		slog.Warn("failed to write usage log entry",
			"endpoint", entry.Endpoint, "key_id", entry.KeyID, "error", err.Error())
	}
}
