package api

import (
	"net/http"

	reqdto "inkslot/internal/handler/dto/request"
	resdto "inkslot/internal/handler/dto/response"
	"inkslot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Get availability
// @Description Bookable start times for an artist. Either serviceId or durationMinutes is required.
// @Tags availability
// @Produce json
// @Param artistId path string true "Artist ID"
// @Param from query string false "Window start (RFC 3339), defaults to now"
// @Param to query string false "Window end (RFC 3339), defaults to the configured window"
// @Param serviceId query string false "Service or flash ID"
// @Param durationMinutes query int false "Duration override (15-480)"
// @Param stepMinutes query int false "Grid step override (5-480)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/artists/{artistId}/availability [get]
func (h *AvailabilityHandler) Get(c *gin.Context) {
	artistID, err := uuid.Parse(c.Param("artistId"))
	if err != nil {
		abortInvalid(c, err, "Invalid artist id")
		return
	}
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortInvalid(c, err, "Invalid query")
		return
	}
	in, err := q.ToInput(artistID)
	if err != nil {
		abortInvalid(c, err, "Invalid query")
		return
	}

	view, err := h.q.GetAvailability(c.Request.Context(), in)
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}
