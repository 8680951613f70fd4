package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "puntoenvio-gateway/internal/handler/dto/request"
	resdto "puntoenvio-gateway/internal/handler/dto/response"
	"puntoenvio-gateway/internal/handler/httperr"
	"puntoenvio-gateway/internal/handler/middleware"
	"puntoenvio-gateway/internal/pkg/errs"
	"puntoenvio-gateway/internal/usecase"
	"puntoenvio-gateway/internal/usecase/commands"
	"puntoenvio-gateway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WebhookHandler struct {
	webhookCommands commands.WebhookCommands
	webhookQueries  queries.WebhookQueries
}

func NewWebhookHandler(webhookCommands commands.WebhookCommands, webhookQueries queries.WebhookQueries) *WebhookHandler {
	return &WebhookHandler{
		webhookCommands: webhookCommands,
		webhookQueries:  webhookQueries,
	}
}

// @Summary List webhook configurations
// @Description List the caller's webhook configurations
// @Tags webhooks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.WebhookConfigResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /webhooks [get]
func (h *WebhookHandler) ListWebhooks(c *gin.Context) {
	key, ok := middleware.GetAPIKey(c)
	if !ok {
		httperr.AbortWithError(c, errs.New("missing key context"), internalError())
		return
	}

	views, err := h.webhookQueries.List(c.Request.Context(), key.ID())
	if err != nil {
		httperr.AbortWithError(c, err, internalError())
		return
	}

	response := make([]*resdto.WebhookConfigResponse, len(views))
	for i := range views {
		response[i] = resdto.FromWebhookConfigView(&views[i])
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Register webhook configuration
// @Description Register a subscriber endpoint for a set of events
// @Tags webhooks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.WebhookConfigRequest true "Webhook configuration"
// @Success 201 {object} resdto.WebhookConfigResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /webhooks [post]
func (h *WebhookHandler) CreateWebhook(c *gin.Context) {
	key, ok := middleware.GetAPIKey(c)
	if !ok {
		httperr.AbortWithError(c, errs.New("missing key context"), internalError())
		return
	}

	var req reqdto.WebhookConfigRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, bindErr, badRequest("Invalid request format"))
		return
	}

	view, err := h.webhookCommands.Register(c.Request.Context(), key.ID(), req.ToParams())
	if err != nil {
		h.writeWebhookError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromWebhookConfigView(view))
}

// @Summary Update webhook configuration
// @Description Replace an owned webhook configuration
// @Tags webhooks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Configuration ID"
// @Param request body reqdto.WebhookConfigRequest true "Webhook configuration"
// @Success 200 {object} resdto.WebhookConfigResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /webhooks/{id} [put]
func (h *WebhookHandler) UpdateWebhook(c *gin.Context) {
	key, ok := middleware.GetAPIKey(c)
	if !ok {
		httperr.AbortWithError(c, errs.New("missing key context"), internalError())
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, err, badRequest("Invalid configuration ID format"))
		return
	}

	var req reqdto.WebhookConfigRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, bindErr, badRequest("Invalid request format"))
		return
	}

	view, err := h.webhookCommands.Update(c.Request.Context(), id, key.ID(), req.ToParams())
	if err != nil {
		h.writeWebhookError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWebhookConfigView(view))
}

// @Summary Delete webhook configuration
// @Description Delete an owned webhook configuration
// @Tags webhooks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Configuration ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /webhooks/{id} [delete]
func (h *WebhookHandler) DeleteWebhook(c *gin.Context) {
	key, ok := middleware.GetAPIKey(c)
	if !ok {
		httperr.AbortWithError(c, errs.New("missing key context"), internalError())
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, err, badRequest("Invalid configuration ID format"))
		return
	}

	if err := h.webhookCommands.Unregister(c.Request.Context(), id, key.ID()); err != nil {
		h.writeWebhookError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// @Summary List webhook delivery attempts
// @Description List recent delivery attempts for an owned configuration
// @Tags webhooks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Configuration ID"
// @Param limit query int false "Maximum entries (default 20, max 100)"
// @Success 200 {array} resdto.DeliveryLogResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /webhooks/{id}/deliveries [get]
func (h *WebhookHandler) ListDeliveries(c *gin.Context) {
	key, ok := middleware.GetAPIKey(c)
	if !ok {
		httperr.AbortWithError(c, errs.New("missing key context"), internalError())
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, err, badRequest("Invalid configuration ID format"))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	views, err := h.webhookQueries.Deliveries(c.Request.Context(), id, key.ID(), limit)
	if err != nil {
		httperr.AbortWithError(c, err, internalError())
		return
	}

	response := make([]*resdto.DeliveryLogResponse, len(views))
	for i := range views {
		response[i] = resdto.FromDeliveryLogView(&views[i])
	}
	c.JSON(http.StatusOK, response)
}

func (h *WebhookHandler) writeWebhookError(c *gin.Context, err error) {
	var (
		validationErr    *usecase.ValidationError
		invalidEventsErr *usecase.InvalidEventsError
	)
	switch {
	case errors.As(err, &invalidEventsErr):
		httperr.AbortWithError(c, err, httperr.Response{
			Status:        http.StatusBadRequest,
			Error:         "ValidationError",
			Message:       "Invalid webhook events",
			InvalidEvents: invalidEventsErr.Invalid,
			ValidEvents:   invalidEventsErr.Valid,
		})
	case errors.As(err, &validationErr):
		httperr.AbortWithError(c, err, missingFields(validationErr.Missing))
	case errors.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, err, badRequest("Webhook URL must be an absolute http(s) URL"))
	case errors.Is(err, errs.ErrWebhookConfigNotFound):
		httperr.AbortWithError(c, err, httperr.Response{
			Status: http.StatusNotFound,
			Error:  "Webhook configuration not found",
		})
	default:
		httperr.AbortWithError(c, err, internalError())
	}
}
