package api

import (
	"errors"
	"net/http"

	resdto "puntoenvio-gateway/internal/handler/dto/response"
	"puntoenvio-gateway/internal/handler/httperr"
	"puntoenvio-gateway/internal/handler/middleware"
	"puntoenvio-gateway/internal/pkg/errs"
	"puntoenvio-gateway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TrackingHandler struct {
	trackingQueries queries.TrackingQueries
}

func NewTrackingHandler(trackingQueries queries.TrackingQueries) *TrackingHandler {
	return &TrackingHandler{
		trackingQueries: trackingQueries,
	}
}

// @Summary Track order
// @Description Public tracking view; a valid read key adds full details
// @Tags tracking
// @Produce json
// @Param orderNumber path string true "Order number (PE-YYYY-NNNNNN)"
// @Success 200 {object} resdto.TrackingResponse
// @Failure 404 {object} httperr.Response
// @Router /tracking/{orderNumber} [get]
func (h *TrackingHandler) GetTracking(c *gin.Context) {
	number := c.Param("orderNumber")

	result, err := h.trackingQueries.Track(c.Request.Context(), number)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrOrderNotFound):
			httperr.AbortWithError(c, err, httperr.Response{
				Status: http.StatusNotFound,
				Error:  "Order not found",
			})
		default:
			httperr.AbortWithError(c, err, internalError())
		}
		return
	}

	_, authenticated := middleware.GetAPIKey(c)
	c.JSON(http.StatusOK, resdto.FromTrackingResult(result, authenticated))
}
