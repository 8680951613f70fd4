package api

import (
	"errors"
	"net/http"

	reqdto "puntoenvio-gateway/internal/handler/dto/request"
	resdto "puntoenvio-gateway/internal/handler/dto/response"
	"puntoenvio-gateway/internal/handler/httperr"
	"puntoenvio-gateway/internal/usecase"
	"puntoenvio-gateway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	quoteQueries queries.QuoteQueries
}

func NewQuoteHandler(quoteQueries queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{
		quoteQueries: quoteQueries,
	}
}

// @Summary Compute shipping quote
// @Description Compute a tiered shipping quote for a route and package
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, bindErr, badRequest("Invalid request format"))
		return
	}

	quote, err := h.quoteQueries.ComputeQuote(c.Request.Context(), req.ToDomain())
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

	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}
