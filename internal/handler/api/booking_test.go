//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"inkslot/internal/domain/reservation"
	"inkslot/internal/handler/api"
	resdto "inkslot/internal/handler/dto/response"
	"inkslot/internal/handler/httperr"
	"inkslot/internal/pkg/errs"
	"inkslot/internal/usecase/commands"
	"inkslot/internal/usecase/queries"
	"inkslot/tests/common/builder"
	"inkslot/tests/common/httptest"
	"inkslot/tests/common/testutil"
	commandsmock "inkslot/tests/mock/commands"
	queriesmock "inkslot/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/artists/:artistId/bookings", s.handler.Create)
	s.router.GET("/bookings/:id", s.handler.Get)
	s.router.POST("/bookings/:id/cancel", s.handler.Cancel)
	s.router.POST("/bookings/:id/payment-intent", s.handler.RetryPaymentIntent)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func clientField(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		client, _ := m["client"].(map[string]any)
		testutil.Field(key, value)(client)
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	artistID := uuid.New()
	url := "/artists/" + artistID.String() + "/bookings"

	rb := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.ArtistID = artistID })
	reqBody := rb.BuildCreateRequestDTO()
	result := &commands.CreateBookingResult{
		ReservationID:   rb.ID,
		BookingStatus:   reservation.BookingPending,
		PaymentStatus:   reservation.PaymentPending,
		StartTime:       rb.StartTime,
		EndTime:         rb.EndTime,
		DepositCents:    rb.DepositCents,
		Currency:        rb.Currency,
		PaymentIntentID: "pi_123",
		ClientSecret:    "pi_123_secret",
	}

	bound := []testCaseBooking{
		{name: "note length OK (1000 chars)", mutate: testutil.Field("note", strings.Repeat("a", 1000)), expectCode: http.StatusCreated},
		{name: "note length invalid (1001 chars)", mutate: testutil.Field("note", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
		{name: "client name length invalid (201 chars)", mutate: clientField("name", strings.Repeat("a", 201)), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseBooking{
		{name: "missing field: serviceId (required)", mutate: testutil.Field("serviceId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: client.name (required)", mutate: clientField("name", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: client.email (required)", mutate: clientField("email", nil), expectCode: http.StatusBadRequest},
	}

	malformed := []testCaseBooking{
		{name: "malformed email", mutate: clientField("email", "not-an-email"), expectCode: http.StatusBadRequest},
		{name: "malformed startTime", mutate: testutil.Field("startTime", "tomorrow at ten"), expectCode: http.StatusBadRequest},
		{name: "malformed serviceId", mutate: testutil.Field("serviceId", "abc"), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 with the payment handle", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.CreateBookingInput) (*commands.CreateBookingResult, error) {
				s.Equal(artistID, in.ArtistID)
				s.Equal(rb.ServiceID, in.ServiceID)
				s.True(rb.StartTime.Equal(in.StartTime))
				s.Equal(rb.ClientEmail, in.ClientEmail)
				return result, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.BookingCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(rb.ID, body.ReservationID)
		s.Equal("pending", body.Status)
		s.Equal("pending", body.PaymentStatus)
		s.Equal(int64(5000), body.DepositCents)
		s.Equal("pi_123_secret", body.ClientSecret)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/bookings/" + rb.ID.String()})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, group := range [][]testCaseBooking{bound, missing, malformed} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(result, nil)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")

					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
						return
					}
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, httperr.CodeInvalidInput)
				})
			}
		}
	})

	s.Run("error: 400 on malformed artist id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/artists/not-a-uuid/bookings", reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidInput)
	})

	errorCases := []struct {
		name       string
		err        error
		expectCode int
		expectErr  string
	}{
		{name: "invalid input", err: errs.Mark(errors.New("duration out of range"), commands.ErrInvalidInput), expectCode: http.StatusBadRequest, expectErr: httperr.CodeInvalidInput},
		{name: "artist not found", err: commands.ErrArtistNotFound, expectCode: http.StatusNotFound, expectErr: httperr.CodeNotFound},
		{name: "service not found", err: commands.ErrServiceNotFound, expectCode: http.StatusNotFound, expectErr: httperr.CodeNotFound},
		{name: "service unavailable", err: commands.ErrServiceUnavailable, expectCode: http.StatusConflict, expectErr: httperr.CodeServiceUnavailable},
		{name: "slot unavailable", err: commands.ErrSlotUnavailable, expectCode: http.StatusConflict, expectErr: httperr.CodeSlotUnavailable},
		{name: "slot taken", err: commands.ErrSlotTaken, expectCode: http.StatusConflict, expectErr: httperr.CodeSlotTaken},
		{name: "payment onboarding incomplete", err: commands.ErrPaymentSetupIncomplete, expectCode: http.StatusUnprocessableEntity, expectErr: httperr.CodeOnboardingIncomplete},
		{name: "calendar provider down", err: errs.Mark(errors.New("timeout"), commands.ErrSlotSourceUnavailable), expectCode: http.StatusBadGateway, expectErr: httperr.CodeSlotSourceUnavailable},
		{name: "persistence failure", err: errs.Mark(errors.New("connection reset"), commands.ErrPersistence), expectCode: http.StatusInternalServerError, expectErr: httperr.CodeInternal},
	}
	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

			envelope := httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectErr)
			s.Equal(tc.expectCode >= 500, envelope.Error.Retryable)
			s.NotContains(rec.Body.String(), "connection reset")
		})
	}

	s.Run("error: 502 keeps the reservation id when payment setup fails", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, &commands.PaymentIntentError{ReservationID: rb.ID})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		envelope := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, httperr.CodePaymentSetupFailed)
		s.True(envelope.Error.Retryable)
		s.Equal(rb.ID.String(), envelope.Detail["reservationId"])
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/cancel"

	s.Run("success: returns 200 with success flag", func() {
		s.mockCommands.EXPECT().CancelPending(gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var body resdto.SuccessResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
	})

	s.Run("error: 404 for unknown reservation", func() {
		s.mockCommands.EXPECT().CancelPending(gomock.Any(), id).Return(commands.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, httperr.CodeNotFound)
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/123/cancel", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidInput)
	})
}

// ================================================================================
// TestRetryPaymentIntent
// ================================================================================

func (s *BookingHandlerTestSuite) TestRetryPaymentIntent() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/payment-intent"

	s.Run("success: returns a fresh client secret", func() {
		s.mockCommands.EXPECT().RetryPaymentIntent(gomock.Any(), id).
			Return(&commands.PaymentIntentResult{ReservationID: id, PaymentIntentID: "pi_9", ClientSecret: "pi_9_secret"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var body resdto.PaymentIntentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.ReservationID)
		s.Equal("pi_9_secret", body.ClientSecret)
	})

	s.Run("error: 409 when no longer pending", func() {
		s.mockCommands.EXPECT().RetryPaymentIntent(gomock.Any(), id).Return(nil, commands.ErrReservationNotPending)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, httperr.CodeNotPending)
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	id := uuid.New()
	url := "/bookings/" + id.String()
	intent := "pi_hidden"
	view := &queries.ReservationView{
		ID:              id,
		ArtistID:        uuid.New(),
		ServiceID:       uuid.New(),
		ServiceTitle:    "Custom piece",
		ServiceKind:     "service",
		ClientName:      "Alex Client",
		ClientEmail:     "alex@example.com",
		StartTime:       time.Date(2030, 3, 4, 10, 0, 0, 0, time.UTC),
		EndTime:         time.Date(2030, 3, 4, 11, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		DepositCents:    5000,
		Currency:        "usd",
		PaymentStatus:   "pending",
		BookingStatus:   "pending",
		PaymentIntentID: &intent,
	}

	s.Run("success: returns the reservation without private fields", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.ID)
		s.Equal("Custom piece", body.ServiceTitle)
		s.Equal(int32(60), body.DurationMinutes)
		s.NotContains(rec.Body.String(), "alex@example.com")
		s.NotContains(rec.Body.String(), intent)
	})

	s.Run("error: 404 for unknown reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, httperr.CodeNotFound)
	})
}
