//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"puntoenvio-gateway/internal/handler/api"
	resdto "puntoenvio-gateway/internal/handler/dto/response"
	"puntoenvio-gateway/internal/pkg/errs"
	"puntoenvio-gateway/internal/usecase/queries"
	"puntoenvio-gateway/tests/common/httptest"
	queriesmock "puntoenvio-gateway/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TrackingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockTrackingQueries
	handler     *api.TrackingHandler
}

func (s *TrackingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockTrackingQueries(s.mockCtrl)
	s.handler = api.NewTrackingHandler(s.mockQueries)

	s.router.GET("/tracking/:orderNumber", stubOptionalAuth(stubKey()), s.handler.GetTracking)
}

func (s *TrackingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTrackingHandlerSuite(t *testing.T) {
	suite.Run(t, new(TrackingHandlerTestSuite))
}

func trackingResult() *queries.TrackingResult {
	createdAt := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	note := "Orden creada vía API (integration partner)"
	return &queries.TrackingResult{
		Order: &queries.OrderView{
			ID:                 uuid.New(),
			Number:             "PE-2025-000042",
			Status:             "pending",
			SenderName:         "Juan Pérez",
			SenderLocality:     "Córdoba",
			RecipientName:      "María Gómez",
			RecipientLocality:  "Rosario",
			PickupType:         "domicilio",
			DeliveryType:       "agencia",
			PackageDescription: "Documentos",
			CreatedAt:          createdAt,
		},
		History: []queries.TrackingEventView{
			{Status: "pending", Note: &note, OccurredAt: createdAt},
		},
	}
}

func (s *TrackingHandlerTestSuite) TestGetTracking() {
	url := "/tracking/PE-2025-000042"

	s.Run("public view masks names and omits details", func() {
		s.mockQueries.EXPECT().Track(gomock.Any(), "PE-2025-000042").
			Return(trackingResult(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.TrackingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Juan P.", body.Remitente.Nombre)
		s.Equal("María G.", body.Destinatario.Nombre)
		s.Nil(body.DetallesCompletos)
		s.Nil(body.Paquete)
		s.Len(body.Historial, 1)
	})

	s.Run("authenticated view carries full names and details", func() {
		s.mockQueries.EXPECT().Track(gomock.Any(), "PE-2025-000042").
			Return(trackingResult(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "pe_live_key")

		var body resdto.TrackingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Juan Pérez", body.Remitente.Nombre)
		s.NotNil(body.DetallesCompletos)
		s.Equal("domicilio", body.DetallesCompletos.TipoRetiro)
		s.NotNil(body.Paquete)
		s.Equal("Documentos", body.Paquete.Descripcion)
	})

	s.Run("unknown order returns 404", func() {
		s.mockQueries.EXPECT().Track(gomock.Any(), "PE-2025-000042").
			Return(nil, errs.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})

	s.Run("store failure returns 500", func() {
		s.mockQueries.EXPECT().Track(gomock.Any(), "PE-2025-000042").
			Return(nil, errors.New("connection reset")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "InternalError")
	})
}
