package webhookout

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"puntoenvio-gateway/internal/domain/webhook"
	"puntoenvio-gateway/internal/pkg/clock"
	"puntoenvio-gateway/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConfigSource struct {
	configs []webhook.Config
}

func (f *fakeConfigSource) ActiveByEvent(_ context.Context, _ uuid.UUID, _ webhook.EventType) ([]webhook.Config, error) {
	return f.configs, nil
}

type recordingLogWriter struct {
	records []webhook.DeliveryRecord
}

func (w *recordingLogWriter) InsertDelivery(_ context.Context, rec webhook.DeliveryRecord) error {
	w.records = append(w.records, rec)
	return nil
}

func newTestDispatcher(configs []webhook.Config, logs *recordingLogWriter) *Dispatcher {
	return NewDispatcher(
		&fakeConfigSource{configs: configs},
		logs,
		config.WebhookConfig{DeliveryTimeout: 5 * time.Second},
		clock.NewMockClock(time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)),
	)
}

func TestDeliverySignsAndTagsRequests(t *testing.T) {
	var gotSignature, gotEvent, gotContentType string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get(webhook.SignatureHeader)
		gotEvent = r.Header.Get(webhook.EventHeader)
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	logs := &recordingLogWriter{}
	d := newTestDispatcher([]webhook.Config{{
		ID:     uuid.New(),
		URL:    server.URL,
		Secret: "whsec_abc",
		Events: []webhook.EventType{webhook.EventShipmentCreated},
		Active: true,
	}}, logs)

	d.run(context.Background(), uuid.New(), webhook.EventShipmentCreated,
		map[string]string{"numero_orden": "PE-2025-000001"})

	assert.Equal(t, "shipment_created", gotEvent)
	assert.Equal(t, "application/json", gotContentType)
	assert.True(t, webhook.VerifySignature("whsec_abc", gotBody, gotSignature))

	require.Len(t, logs.records, 1)
	rec := logs.records[0]
	assert.Equal(t, 1, rec.Attempt)
	assert.Equal(t, http.StatusOK, rec.StatusCode)
	assert.NotNil(t, rec.DeliveredAt)
	assert.Nil(t, rec.ErrorMessage)
}

func TestDeliveryRetriesUntilSuccess(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		if hits < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	logs := &recordingLogWriter{}
	d := newTestDispatcher([]webhook.Config{{
		ID:         uuid.New(),
		URL:        server.URL,
		Secret:     "whsec_abc",
		Active:     true,
		MaxRetries: 3,
	}}, logs)

	d.run(context.Background(), uuid.New(), webhook.EventDelivered, map[string]string{})

	assert.Equal(t, 3, hits, "delivery must stop at the first 2xx")
	require.Len(t, logs.records, 3, "one log row per attempt")
	for i, rec := range logs.records {
		assert.Equal(t, i+1, rec.Attempt)
	}
	assert.Equal(t, http.StatusInternalServerError, logs.records[0].StatusCode)
	assert.Nil(t, logs.records[0].DeliveredAt)
	assert.Equal(t, http.StatusNoContent, logs.records[2].StatusCode)
	assert.NotNil(t, logs.records[2].DeliveredAt)
}

func TestDeliveryExhaustsRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	logs := &recordingLogWriter{}
	d := newTestDispatcher([]webhook.Config{{
		ID:         uuid.New(),
		URL:        server.URL,
		Secret:     "whsec_abc",
		Active:     true,
		MaxRetries: 1,
	}}, logs)

	d.run(context.Background(), uuid.New(), webhook.EventCancelled, map[string]string{})

	require.Len(t, logs.records, 2)
	for _, rec := range logs.records {
		assert.Equal(t, http.StatusBadGateway, rec.StatusCode)
		assert.Nil(t, rec.DeliveredAt)
	}
}

func TestDeliveryRecordsUnreachableEndpoint(t *testing.T) {
	logs := &recordingLogWriter{}
	d := newTestDispatcher([]webhook.Config{{
		ID:     uuid.New(),
		URL:    "http://127.0.0.1:1/hooks",
		Secret: "whsec_abc",
		Active: true,
	}}, logs)

	d.run(context.Background(), uuid.New(), webhook.EventException, map[string]string{})

	require.Len(t, logs.records, 1)
	rec := logs.records[0]
	assert.Zero(t, rec.StatusCode)
	assert.Nil(t, rec.DeliveredAt)
	require.NotNil(t, rec.ErrorMessage)
	assert.NotEmpty(t, *rec.ErrorMessage)
}

func TestDispatchFansOutToAllConfigs(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	logs := &recordingLogWriter{}
	d := newTestDispatcher([]webhook.Config{
		{ID: uuid.New(), URL: server.URL, Secret: "s1", Active: true},
		{ID: uuid.New(), URL: server.URL, Secret: "s2", Active: true},
	}, logs)

	d.run(context.Background(), uuid.New(), webhook.EventStatusUpdated, map[string]string{})

	assert.Equal(t, 2, hits)
	assert.Len(t, logs.records, 2)
}
