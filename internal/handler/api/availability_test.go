//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"inkslot/internal/handler/api"
	resdto "inkslot/internal/handler/dto/response"
	"inkslot/internal/handler/httperr"
	"inkslot/internal/pkg/errs"
	"inkslot/internal/usecase/queries"
	"inkslot/tests/common/httptest"
	queriesmock "inkslot/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	h := api.NewAvailabilityHandler(s.mockQueries)

	s.router.GET("/artists/:artistId/availability", h.Get)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestGet() {
	artistID := uuid.New()
	serviceID := uuid.New()
	base := "/artists/" + artistID.String() + "/availability"
	from := time.Date(2030, 3, 4, 0, 0, 0, 0, time.UTC)

	view := &queries.AvailabilityView{
		ArtistID:        artistID,
		TimeZone:        "Europe/Berlin",
		Source:          "native",
		From:            from,
		To:              from.AddDate(0, 0, 1),
		DurationMinutes: 60,
		StepMinutes:     30,
		Slots: []queries.SlotView{
			{Date: "2030-03-04", StartTime: "10:00", EndTime: "11:00", IsoStart: from.Add(9 * time.Hour), Available: true},
			{Date: "2030-03-04", StartTime: "10:30", EndTime: "11:30", IsoStart: from.Add(9*time.Hour + 30*time.Minute), Available: true},
		},
	}

	s.Run("success: query parameters reach the use case", func() {
		s.mockQueries.EXPECT().GetAvailability(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in queries.AvailabilityInput) (*queries.AvailabilityView, error) {
				s.Equal(artistID, in.ArtistID)
				s.Require().NotNil(in.ServiceID)
				s.Equal(serviceID, *in.ServiceID)
				s.Require().NotNil(in.From)
				s.True(from.Equal(*in.From))
				s.Require().NotNil(in.StepMinutes)
				s.Equal(15, *in.StepMinutes)
				s.Nil(in.DurationMinutes)
				return view, nil
			})

		url := base + "?serviceId=" + serviceID.String() + "&from=2030-03-04T00:00:00Z&to=2030-03-05T00:00:00Z&stepMinutes=15"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Europe/Berlin", body.TimeZone)
		s.Len(body.Slots, 2)
		s.Equal("10:30", body.Slots[1].StartTime)
	})

	s.Run("success: empty result serializes an empty list", func() {
		empty := *view
		empty.Slots = nil
		s.mockQueries.EXPECT().GetAvailability(gomock.Any(), gomock.Any()).Return(&empty, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?durationMinutes=60", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"slots":[]`)
	})

	malformed := []struct {
		name  string
		query string
	}{
		{name: "from is not RFC3339", query: "?from=tomorrow"},
		{name: "to is not RFC3339", query: "?to=2030-03-05"},
		{name: "serviceId is not a uuid", query: "?serviceId=abc"},
		{name: "durationMinutes is not a number", query: "?durationMinutes=an-hour"},
		{name: "stepMinutes is not a number", query: "?stepMinutes=x"},
	}
	for _, tc := range malformed {
		s.Run("error: 400 when "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+tc.query, nil, "")

			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidInput)
		})
	}

	s.Run("error: 400 on malformed artist id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/artists/nope/availability", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidInput)
	})

	errorCases := []struct {
		name       string
		err        error
		expectCode int
		expectErr  string
	}{
		{name: "invalid window", err: queries.ErrInvalidQuery, expectCode: http.StatusBadRequest, expectErr: httperr.CodeInvalidInput},
		{name: "artist not found", err: queries.ErrArtistNotFound, expectCode: http.StatusNotFound, expectErr: httperr.CodeNotFound},
		{name: "service not found", err: queries.ErrServiceNotFound, expectCode: http.StatusNotFound, expectErr: httperr.CodeNotFound},
		{name: "service unavailable", err: queries.ErrServiceUnavailable, expectCode: http.StatusConflict, expectErr: httperr.CodeServiceUnavailable},
		{name: "embed provider down", err: errs.Mark(errors.New("timeout"), queries.ErrSlotSourceUnavailable), expectCode: http.StatusBadGateway, expectErr: httperr.CodeSlotSourceUnavailable},
		{name: "query failure", err: errs.Mark(errors.New("boom"), queries.ErrQueryFailed), expectCode: http.StatusInternalServerError, expectErr: httperr.CodeInternal},
	}
	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockQueries.EXPECT().GetAvailability(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?durationMinutes=60", nil, "")

			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectErr)
		})
	}
}
