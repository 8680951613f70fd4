package components

import (
	"puntoenvio-gateway/internal/domain/pricing"
	"puntoenvio-gateway/internal/infra/webhookout"
	"puntoenvio-gateway/internal/pkg/clock"
	"puntoenvio-gateway/internal/pkg/config"
	"puntoenvio-gateway/internal/usecase"
	"puntoenvio-gateway/internal/usecase/commands"
	"puntoenvio-gateway/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPricingEngine,
	NewDispatcher,
	usecase.NewUsageRecorder,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewShipmentUseCase,
		commands.NewWebhookUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewQuoteQueries,
		NewTrackingQueries,
		queries.NewWebhookQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewKeyValidator,
	),
)

func NewPricingEngine(rates pricing.RateSource, cfg config.Config, clk clock.Clock) *pricing.Engine {
	return pricing.NewEngine(rates, PricingPolicy(cfg.Pricing), clk)
}

// PricingPolicy maps the env-sourced rate policy onto the engine's domain
// policy.
func PricingPolicy(cfg config.PricingConfig) pricing.Policy {
	return pricing.Policy{
		IntraProvinceBase:   cfg.IntraProvinceBase,
		InterProvinceBase:   cfg.InterProvinceBase,
		WeightStepSurcharge: cfg.WeightStepSurcharge,
		DomicileLegBase:     cfg.DomicileLegBase,
		AgencyLegBase:       cfg.AgencyLegBase,
		InsuranceRate:       cfg.InsuranceRate,
		AdministrativeRate:  cfg.AdministrativeRate,
		ThermosealRate:      cfg.ThermosealRate,
		ThermosealCap:       cfg.ThermosealCap,
		TaxRate:             cfg.TaxRate,
		DefaultTransitHours: cfg.DefaultTransitHours,
		QuoteValidityDays:   cfg.QuoteValidityDays,
	}
}

func NewTrackingQueries(store queries.TrackingReadStore, cfg config.Config) queries.TrackingQueries {
	return queries.NewTrackingQueries(store, cfg.Pricing.DefaultTransitHours)
}

func NewDispatcher(
	configs webhookout.ConfigSource,
	deliveries webhookout.DeliveryLogWriter,
	cfg config.Config,
	clk clock.Clock,
) commands.EventDispatcher {
	return webhookout.NewDispatcher(configs, deliveries, cfg.Webhook, clk)
}
