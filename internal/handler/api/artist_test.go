//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"inkslot/internal/handler/api"
	resdto "inkslot/internal/handler/dto/response"
	"inkslot/internal/handler/httperr"
	"inkslot/internal/handler/middleware"
	"inkslot/internal/pkg/errs"
	"inkslot/internal/usecase/commands"
	"inkslot/internal/usecase/queries"
	"inkslot/tests/common/httptest"
	commandsmock "inkslot/tests/mock/commands"
	queriesmock "inkslot/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ArtistHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockArtistCommands
	mockQueries  *queriesmock.MockReservationQueries
	artistID     uuid.UUID
}

func (s *ArtistHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockArtistCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	h := api.NewArtistHandler(s.mockCommands, s.mockQueries)
	s.artistID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeUnauthorized, nil, "Unauthorized", nil)
			return
		}
		middleware.SetArtistID(c, s.artistID)
		c.Next()
	}

	s.router.PUT("/artists/me/working-hours", authMiddleware, h.ReplaceWorkingHours)
	s.router.GET("/artists/me/reservations", authMiddleware, h.ListReservations)
}

func (s *ArtistHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestArtistHandlerSuite(t *testing.T) {
	suite.Run(t, new(ArtistHandlerTestSuite))
}

// ================================================================================
// TestReplaceWorkingHours
// ================================================================================

func (s *ArtistHandlerTestSuite) TestReplaceWorkingHours() {
	url := "/artists/me/working-hours"
	reqBody := map[string]any{
		"hours": []map[string]any{
			{"dayOfWeek": 1, "startTime": "09:00", "endTime": "18:00"},
			{"dayOfWeek": 6, "startTime": "11:00", "endTime": "15:00", "isActive": false},
		},
	}

	s.Run("success: rules reach the use case with isActive defaulted", func() {
		s.mockCommands.EXPECT().ReplaceWorkingHours(gomock.Any(), s.artistID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, in []commands.WorkingHoursInput) error {
				s.Require().Len(in, 2)
				s.Equal(commands.WorkingHoursInput{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00", Active: true}, in[0])
				s.False(in[1].Active)
				return nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "artist-token")

		var body resdto.SuccessResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, httperr.CodeUnauthorized)
	})

	s.Run("error: 400 on weekday out of range", func() {
		bad := map[string]any{"hours": []map[string]any{{"dayOfWeek": 8, "startTime": "09:00", "endTime": "18:00"}}}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, bad, "artist-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidInput)
	})

	s.Run("error: 400 when the use case rejects a rule", func() {
		s.mockCommands.EXPECT().ReplaceWorkingHours(gomock.Any(), s.artistID, gomock.Any()).
			Return(errs.Mark(errs.New("end before start"), commands.ErrInvalidInput))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "artist-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidInput)
	})
}

// ================================================================================
// TestListReservations
// ================================================================================

func (s *ArtistHandlerTestSuite) TestListReservations() {
	url := "/artists/me/reservations"
	start := time.Date(2030, 3, 4, 10, 0, 0, 0, time.UTC)
	items := []*queries.ReservationListItem{
		{ID: uuid.New(), ServiceTitle: "Custom piece", ClientName: "Alex", ClientEmail: "alex@example.com", StartTime: start, EndTime: start.Add(time.Hour), BookingStatus: "confirmed"},
	}

	s.Run("success: lists the authenticated artist's reservations", func() {
		s.mockQueries.EXPECT().ListByArtist(gomock.Any(), s.artistID, gomock.Nil(), gomock.Nil()).Return(items, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "artist-token")

		var body []resdto.ReservationListItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("alex@example.com", body[0].ClientEmail)
		s.Equal("confirmed", body[0].BookingStatus)
	})

	s.Run("success: explicit range is parsed", func() {
		s.mockQueries.EXPECT().ListByArtist(gomock.Any(), s.artistID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, from, to *time.Time) ([]*queries.ReservationListItem, error) {
				s.Require().NotNil(from)
				s.Require().NotNil(to)
				s.True(start.Equal(*from))
				s.True(start.AddDate(0, 0, 7).Equal(*to))
				return nil, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?from=2030-03-04T10:00:00Z&to=2030-03-11T10:00:00Z", nil, "artist-token")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 when the window is too wide", func() {
		s.mockQueries.EXPECT().ListByArtist(gomock.Any(), s.artistID, gomock.Any(), gomock.Any()).Return(nil, queries.ErrInvalidQuery)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?from=2030-03-04T10:00:00Z&to=2030-08-04T10:00:00Z", nil, "artist-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidInput)
	})
}
