package middleware

import (
	"strconv"
	"time"

	"puntoenvio-gateway/internal/pkg/clock"
	"puntoenvio-gateway/internal/pkg/metrics"
	"puntoenvio-gateway/internal/usecase"

	"github.com/gin-gonic/gin"
)

// UsageMiddleware writes exactly one usage row per inbound request, on every
// exit path, and feeds the request metrics. Requests without an authenticated
// key context are attributed to the sentinel public key.
func UsageMiddleware(recorder usecase.UsageRecorder, clk clock.Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = c.Request.URL.Path
		}

		keyID := usecase.SentinelPublicKey
		if key, ok := GetAPIKey(c); ok {
			keyID = key.ID().String()
		}

		entry := usecase.UsageEntry{
			KeyID:      keyID,
			Endpoint:   endpoint,
			Method:     c.Request.Method,
			StatusCode: status,
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
			LatencyMs:  latency.Milliseconds(),
			OccurredAt: clk.Now(),
		}
		if len(c.Errors) > 0 {
			msg := c.Errors.Last().Err.Error()
			entry.ErrorMessage = &msg
		}

		recorder.Record(c.Request.Context(), entry)

		metrics.RequestsTotal.WithLabelValues(endpoint, c.Request.Method, strconv.Itoa(status)).Inc()
		metrics.RequestDuration.WithLabelValues(endpoint, c.Request.Method).Observe(latency.Seconds())
	}
}
