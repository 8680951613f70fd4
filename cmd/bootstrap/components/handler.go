package components

import (
	"puntoenvio-gateway/internal/handler"
	"puntoenvio-gateway/internal/handler/api"
	"puntoenvio-gateway/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewQuoteHandler,
		api.NewShipmentHandler,
		api.NewTrackingHandler,
		api.NewWebhookHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	quote *api.QuoteHandler,
	shipment *api.ShipmentHandler,
	tracking *api.TrackingHandler,
	webhook *api.WebhookHandler,
) handler.Handlers {
	return handler.Handlers{
		Quote:    quote,
		Shipment: shipment,
		Tracking: tracking,
		Webhook:  webhook,
	}
}
