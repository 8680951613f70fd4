package api

import (
	"errors"
	"net/http"

	reqdto "puntoenvio-gateway/internal/handler/dto/request"
	resdto "puntoenvio-gateway/internal/handler/dto/response"
	"puntoenvio-gateway/internal/handler/httperr"
	"puntoenvio-gateway/internal/handler/middleware"
	"puntoenvio-gateway/internal/pkg/errs"
	"puntoenvio-gateway/internal/usecase"
	"puntoenvio-gateway/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ShipmentHandler struct {
	shipmentCommands commands.ShipmentCommands
}

func NewShipmentHandler(shipmentCommands commands.ShipmentCommands) *ShipmentHandler {
	return &ShipmentHandler{
		shipmentCommands: shipmentCommands,
	}
}

// @Summary Create shipment
// @Description Register a shipment order and its initial tracking event
// @Tags shipments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateShipmentRequest true "Shipment request"
// @Success 201 {object} resdto.CreateShipmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /create-shipment [post]
func (h *ShipmentHandler) CreateShipment(c *gin.Context) {
	key, ok := middleware.GetAPIKey(c)
	if !ok {
		httperr.AbortWithError(c, errs.New("missing key context"), internalError())
		return
	}

	var req reqdto.CreateShipmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, bindErr, badRequest("Invalid request format"))
		return
	}

	result, err := h.shipmentCommands.CreateShipment(c.Request.Context(), req.ToDraft(), key)
	if err != nil {
		var validationErr *usecase.ValidationError
		switch {
		case errors.As(err, &validationErr):
			httperr.AbortWithError(c, err, missingFields(validationErr.Missing))
		default:
			httperr.AbortWithError(c, err, internalError())
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromShipmentResult(result))
}
