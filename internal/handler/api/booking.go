package api

import (
	"net/http"

	reqdto "inkslot/internal/handler/dto/request"
	resdto "inkslot/internal/handler/dto/response"
	"inkslot/internal/usecase/commands"
	"inkslot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.ReservationQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.ReservationQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Reserve a slot and request the deposit payment intent
// @Tags bookings
// @Accept json
// @Produce json
// @Param artistId path string true "Artist ID"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/artists/{artistId}/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	artistID, err := uuid.Parse(c.Param("artistId"))
	if err != nil {
		abortInvalid(c, err, "Invalid artist id")
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalid(c, err, "Invalid request")
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), req.ToInput(artistID))
	if err != nil {
		abortWithCommandError(c, err)
		return
	}
	c.Header("Location", "/api/bookings/"+result.ReservationID.String())
	c.JSON(http.StatusCreated, resdto.FromCreateBookingResult(result))
}

// @Summary Cancel pending booking
// @Description Release a pending reservation. Repeated calls and calls on confirmed reservations succeed without changes.
// @Tags bookings
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortInvalid(c, err, "Invalid id")
		return
	}
	if err := h.cmds.CancelPending(c.Request.Context(), id); err != nil {
		abortWithCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SuccessResponse{Success: true})
}

// @Summary Retry deposit payment setup
// @Description Request the deposit payment intent again for a pending reservation
// @Tags bookings
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.PaymentIntentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/bookings/{id}/payment-intent [post]
func (h *BookingHandler) RetryPaymentIntent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortInvalid(c, err, "Invalid id")
		return
	}
	result, err := h.cmds.RetryPaymentIntent(c.Request.Context(), id)
	if err != nil {
		abortWithCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentIntentResult(result))
}

// @Summary Get booking
// @Description Get a reservation by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortInvalid(c, err, "Invalid id")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}
