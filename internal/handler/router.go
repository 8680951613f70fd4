package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"puntoenvio-gateway/internal/domain/apikey"
	"puntoenvio-gateway/internal/handler/api"
	"puntoenvio-gateway/internal/handler/httperr"
	"puntoenvio-gateway/internal/handler/middleware"
	"puntoenvio-gateway/internal/pkg/clock"
	"puntoenvio-gateway/internal/pkg/config"
	"puntoenvio-gateway/internal/usecase"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Quote    *api.QuoteHandler
	Shipment *api.ShipmentHandler
	Tracking *api.TrackingHandler
	Webhook  *api.WebhookHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	usageRecorder usecase.UsageRecorder,
	clk clock.Clock,
	registry *prometheus.Registry,
) {
	setupMiddleware(engine, cfg, usageRecorder, clk)
	setupRoutes(engine, handlers, authMiddleware, registry)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, usageRecorder usecase.UsageRecorder, clk clock.Clock) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.UsageMiddleware(usageRecorder, clk))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, handlers Handlers, authMiddleware *middleware.AuthMiddleware, registry *prometheus.Registry) {
	engine.HandleMethodNotAllowed = true
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httperr.Response{Error: "MethodNotAllowed"})
	})
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, httperr.Response{Error: "NotFound"})
	})

	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodPost, Path: "/quotes", Handler: handlers.Quote.CreateQuote,
			Mw: []gin.HandlerFunc{authMiddleware.RequireKey(apikey.PermissionRead)}},
		{Method: http.MethodPost, Path: "/create-shipment", Handler: handlers.Shipment.CreateShipment,
			Mw: []gin.HandlerFunc{authMiddleware.RequireKey(apikey.PermissionWrite)}},
		{Method: http.MethodGet, Path: "/tracking/:orderNumber", Handler: handlers.Tracking.GetTracking,
			Mw: []gin.HandlerFunc{authMiddleware.OptionalKey(apikey.PermissionRead)}},
	})

	webhooks := engine.Group("/webhooks")
	webhooks.Use(authMiddleware.RequireKey(apikey.PermissionWrite))
	{
		addRoutes(webhooks, []route{
			{Method: http.MethodGet, Path: "", Handler: handlers.Webhook.ListWebhooks},
			{Method: http.MethodPost, Path: "", Handler: handlers.Webhook.CreateWebhook},
			{Method: http.MethodPut, Path: "/:id", Handler: handlers.Webhook.UpdateWebhook},
			{Method: http.MethodDelete, Path: "/:id", Handler: handlers.Webhook.DeleteWebhook},
			{Method: http.MethodGet, Path: "/:id/deliveries", Handler: handlers.Webhook.ListDeliveries},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
