package api

import (
	"net/http"

	reqdto "inkslot/internal/handler/dto/request"
	resdto "inkslot/internal/handler/dto/response"
	"inkslot/internal/handler/httperr"
	"inkslot/internal/handler/middleware"
	"inkslot/internal/usecase/commands"
	"inkslot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ArtistHandler struct {
	cmds commands.ArtistCommands
	q    queries.ReservationQueries
}

func NewArtistHandler(cmds commands.ArtistCommands, q queries.ReservationQueries) *ArtistHandler {
	return &ArtistHandler{cmds: cmds, q: q}
}

// @Summary Replace working hours
// @Description Replace the authenticated artist's weekly working hours
// @Tags artists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReplaceWorkingHoursRequest true "Weekly rules"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/artists/me/working-hours [put]
func (h *ArtistHandler) ReplaceWorkingHours(c *gin.Context) {
	artistID, ok := middleware.GetArtistID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.ReplaceWorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalid(c, err, "Invalid request")
		return
	}
	if err := h.cmds.ReplaceWorkingHours(c.Request.Context(), artistID, req.ToInput()); err != nil {
		abortWithCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SuccessResponse{Success: true})
}

// @Summary List own reservations
// @Description Reservations of the authenticated artist starting in [from, to)
// @Tags artists
// @Produce json
// @Security BearerAuth
// @Param from query string false "Range start (RFC 3339)"
// @Param to query string false "Range end (RFC 3339)"
// @Success 200 {array} resdto.ReservationListItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/artists/me/reservations [get]
func (h *ArtistHandler) ListReservations(c *gin.Context) {
	artistID, ok := middleware.GetArtistID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var q reqdto.RangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortInvalid(c, err, "Invalid query")
		return
	}
	from, to, err := q.Bounds()
	if err != nil {
		abortInvalid(c, err, "Invalid query")
		return
	}
	items, err := h.q.ListByArtist(c.Request.Context(), artistID, from, to)
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationList(items))
}
