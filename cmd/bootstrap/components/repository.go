package components

import (
	"puntoenvio-gateway/internal/domain/pricing"
	"puntoenvio-gateway/internal/infra/db"
	repo_impl "puntoenvio-gateway/internal/infra/repository"
	"puntoenvio-gateway/internal/infra/webhookout"
	"puntoenvio-gateway/internal/usecase"
	"puntoenvio-gateway/internal/usecase/commands"
	"puntoenvio-gateway/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewAPIKeyRepository,
			fx.As(new(usecase.APIKeyRepository)),
		),
		fx.Annotate(
			repo_impl.NewUsageLogRepository,
			fx.As(new(usecase.UsageLogRepository)),
		),
		fx.Annotate(
			repo_impl.NewRateRepository,
			fx.As(new(pricing.RateSource)),
		),
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
		),
		fx.Annotate(
			repo_impl.NewTrackingReadStore,
			fx.As(new(queries.TrackingReadStore)),
		),
		// One repository serves the CRUD write side, the read side and the
		// dispatcher's fan-out.
		fx.Annotate(
			repo_impl.NewWebhookRepository,
			fx.As(new(commands.WebhookConfigRepository)),
			fx.As(new(queries.WebhookReadStore)),
			fx.As(new(webhookout.ConfigSource)),
			fx.As(new(webhookout.DeliveryLogWriter)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
