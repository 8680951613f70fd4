//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"puntoenvio-gateway/internal/domain/webhook"
	"puntoenvio-gateway/internal/handler/api"
	resdto "puntoenvio-gateway/internal/handler/dto/response"
	"puntoenvio-gateway/internal/pkg/errs"
	"puntoenvio-gateway/internal/usecase"
	"puntoenvio-gateway/internal/usecase/commands"
	"puntoenvio-gateway/internal/usecase/queries"
	"puntoenvio-gateway/tests/common/httptest"
	commandsmock "puntoenvio-gateway/tests/mock/commands"
	queriesmock "puntoenvio-gateway/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockWebhookCommands
	mockQueries  *queriesmock.MockWebhookQueries
	handler      *api.WebhookHandler
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockWebhookCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockWebhookQueries(s.mockCtrl)
	s.handler = api.NewWebhookHandler(s.mockCommands, s.mockQueries)

	auth := stubAuth(stubKey())
	s.router.GET("/webhooks", auth, s.handler.ListWebhooks)
	s.router.POST("/webhooks", auth, s.handler.CreateWebhook)
	s.router.PUT("/webhooks/:id", auth, s.handler.UpdateWebhook)
	s.router.DELETE("/webhooks/:id", auth, s.handler.DeleteWebhook)
	s.router.GET("/webhooks/:id/deliveries", auth, s.handler.ListDeliveries)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func webhookRequestBody() map[string]any {
	return map[string]any{
		"url":    "https://example.com/hooks",
		"secret": "whsec_abc",
		"events": []string{"shipment_created", "delivered"},
	}
}

func webhookView() *queries.WebhookConfigView {
	return &queries.WebhookConfigView{
		ID:                uuid.New(),
		URL:               "https://example.com/hooks",
		Events:            []string{"shipment_created", "delivered"},
		Active:            true,
		MaxRetries:        3,
		RetryDelaySeconds: 60,
		CreatedAt:         time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (s *WebhookHandlerTestSuite) TestListWebhooks() {
	s.Run("success: returns the caller's configurations", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return([]queries.WebhookConfigView{*webhookView()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/webhooks", nil, "pe_live_key")

		var body []resdto.WebhookConfigResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("https://example.com/hooks", body[0].URL)
	})

	s.Run("unauthorized: returns 401 without a key", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/webhooks", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *WebhookHandlerTestSuite) TestCreateWebhook() {
	url := "/webhooks"

	s.Run("success: returns 201 without echoing the secret", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, params commands.WebhookParams) (*queries.WebhookConfigView, error) {
				s.Equal(3, params.MaxRetries, "retry defaults applied at the DTO layer")
				s.Equal(60, params.RetryDelaySeconds)
				s.True(params.Active)
				return webhookView(), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, webhookRequestBody(), "pe_live_key")

		var body resdto.WebhookConfigResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.NotContains(rec.Body.String(), "whsec_abc")
		s.NotNil(body.CreatedAt)
	})

	s.Run("validation: returns 400 naming the missing fields", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(&usecase.ValidationError{
				Missing: []string{"secret", "events"},
			}, errs.ErrValidation)).Times(1)

		body := webhookRequestBody()
		delete(body, "secret")
		delete(body, "events")
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "pe_live_key")

		s.Equal(http.StatusBadRequest, rec.Code)
		httptest.AssertRequiredFields(s.T(), rec, []string{"secret", "events"})
	})

	s.Run("validation: returns 400 listing unknown events", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(&usecase.InvalidEventsError{
				Invalid: []string{"bogus_event"},
				Valid:   webhook.ValidEventNames(),
			}, errs.ErrValidation)).Times(1)

		body := webhookRequestBody()
		body["events"] = []string{"shipment_created", "bogus_event"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "pe_live_key")

		s.Equal(http.StatusBadRequest, rec.Code)
		var errBody struct {
			Error         string   `json:"error"`
			InvalidEvents []string `json:"invalid_events"`
			ValidEvents   []string `json:"valid_events"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errBody))
		s.Equal("ValidationError", errBody.Error)
		s.Equal([]string{"bogus_event"}, errBody.InvalidEvents)
		s.Equal(webhook.ValidEventNames(), errBody.ValidEvents)
	})

	s.Run("validation: returns 400 for a relative URL", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(webhook.ErrInvalidURL, errs.ErrValidation)).Times(1)

		body := webhookRequestBody()
		body["url"] = "/relative/path"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "pe_live_key")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "ValidationError")
	})
}

func (s *WebhookHandlerTestSuite) TestUpdateWebhook() {
	s.Run("success: returns the replaced configuration", func() {
		view := webhookView()
		view.CreatedAt = time.Time{}
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/webhooks/"+view.ID.String(), webhookRequestBody(), "pe_live_key")

		var body resdto.WebhookConfigResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Nil(body.CreatedAt)
	})

	s.Run("malformed id: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/webhooks/not-a-uuid", webhookRequestBody(), "pe_live_key")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "ValidationError")
	})

	s.Run("foreign or unknown id: returns 404", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrWebhookConfigNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/webhooks/"+uuid.NewString(), webhookRequestBody(), "pe_live_key")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Webhook configuration not found")
	})
}

func (s *WebhookHandlerTestSuite) TestDeleteWebhook() {
	s.Run("success: returns deleted status", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Unregister(gomock.Any(), id, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/webhooks/"+id.String(), nil, "pe_live_key")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("deleted", body["status"])
	})

	s.Run("foreign or unknown id: returns 404", func() {
		s.mockCommands.EXPECT().Unregister(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errs.ErrWebhookConfigNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/webhooks/"+uuid.NewString(), nil, "pe_live_key")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Webhook configuration not found")
	})
}

func (s *WebhookHandlerTestSuite) TestListDeliveries() {
	s.Run("success: forwards the limit query", func() {
		id := uuid.New()
		deliveredAt := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().Deliveries(gomock.Any(), id, gomock.Any(), 5).
			Return([]queries.DeliveryLogView{{
				ID:          uuid.New(),
				ConfigID:    id,
				Event:       "shipment_created",
				Attempt:     1,
				StatusCode:  200,
				DeliveredAt: &deliveredAt,
				CreatedAt:   deliveredAt,
			}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/webhooks/"+id.String()+"/deliveries?limit=5", nil, "pe_live_key")

		var body []resdto.DeliveryLogResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("shipment_created", body[0].Event)
		s.Equal(200, body[0].StatusCode)
	})

	s.Run("missing limit defaults to zero for the query layer", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().Deliveries(gomock.Any(), id, gomock.Any(), 0).
			Return([]queries.DeliveryLogView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/webhooks/"+id.String()+"/deliveries", nil, "pe_live_key")

		var body []resdto.DeliveryLogResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})
}
