package bootstrap

import (
	"puntoenvio-gateway/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewMetricsRegistry,
	),
)

func NewMetricsRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	metrics.Register(registry)
	return registry
}
