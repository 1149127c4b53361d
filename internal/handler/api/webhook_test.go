//go:build unit

package api_test

import (
	"bytes"
	"errors"
	"net/http"
	"testing"

	"inkslot/internal/handler/api"
	"inkslot/internal/handler/httperr"
	"inkslot/internal/pkg/errs"
	"inkslot/internal/usecase/commands"
	"inkslot/internal/usecase/shared"
	"inkslot/tests/common/httptest"
	commandsmock "inkslot/tests/mock/commands"
	sharedmock "inkslot/tests/mock/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockVerifier *sharedmock.MockPaymentEventVerifier
	mockPayments *commandsmock.MockPaymentCommands
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockVerifier = sharedmock.NewMockPaymentEventVerifier(s.mockCtrl)
	s.mockPayments = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	h := api.NewWebhookHandler(s.mockVerifier, s.mockPayments)

	s.router.POST("/webhooks/stripe", h.Stripe)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) TestStripe() {
	url := "/webhooks/stripe"
	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded"}`)
	headers := map[string]string{"Stripe-Signature": "t=1,v1=abc", "Content-Type": "application/json"}
	evt := &shared.PaymentEvent{ID: "evt_1", Type: shared.PaymentSucceeded, IntentID: "pi_1", ReservationID: uuid.New()}

	s.Run("success: verified event is applied", func() {
		s.mockVerifier.EXPECT().VerifyEvent(payload, "t=1,v1=abc").Return(evt, nil)
		s.mockPayments.EXPECT().HandlePaymentEvent(gomock.Any(), *evt).Return(nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, headers)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"received":true}`, rec.Body.String())
	})

	s.Run("success: unknown reservation is acknowledged", func() {
		s.mockVerifier.EXPECT().VerifyEvent(gomock.Any(), gomock.Any()).Return(evt, nil)
		s.mockPayments.EXPECT().HandlePaymentEvent(gomock.Any(), gomock.Any()).Return(commands.ErrReservationNotFound)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, headers)

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on bad signature", func() {
		s.mockVerifier.EXPECT().VerifyEvent(gomock.Any(), gomock.Any()).Return(nil, errors.New("invalid webhook signature"))

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, headers)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidInput)
	})

	s.Run("error: 413 on oversized body", func() {
		big := bytes.Repeat([]byte("a"), 1<<20+1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, big, headers)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusRequestEntityTooLarge, httperr.CodeInvalidInput)
	})

	s.Run("error: 500 on storage failure so the event is redelivered", func() {
		s.mockVerifier.EXPECT().VerifyEvent(gomock.Any(), gomock.Any()).Return(evt, nil)
		s.mockPayments.EXPECT().HandlePaymentEvent(gomock.Any(), gomock.Any()).
			Return(errs.Mark(errors.New("connection lost"), commands.ErrPersistence))

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, headers)

		envelope := httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, httperr.CodeInternal)
		s.True(envelope.Error.Retryable)
	})
}
