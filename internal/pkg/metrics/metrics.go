package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus metrics for the public API gateway.
var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_http_requests_total",
			Help: "Total number of API requests by endpoint, method and status",
		},
		[]string{"endpoint", "method", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_http_request_duration_seconds",
			Help:    "API request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method"},
	)

	WebhookDeliveriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_webhook_deliveries_total",
			Help: "Webhook delivery attempts by event type and outcome",
		},
		[]string{"event", "outcome"},
	)
)

func Register(reg prometheus.Registerer) {
	reg.MustRegister(RequestsTotal, RequestDuration, WebhookDeliveriesTotal)
}
