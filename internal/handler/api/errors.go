package api

import (
	"log/slog"
	"net/http"

	"inkslot/internal/handler/httperr"
	"inkslot/internal/pkg/errs"
	"inkslot/internal/usecase/commands"
	"inkslot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	code   string
	msg    string
}

// Order matters: the first matching sentinel wins.
var commandErrors = []errorMapping{
	{commands.ErrInvalidInput, http.StatusBadRequest, httperr.CodeInvalidInput, "Invalid booking request"},
	{commands.ErrArtistNotFound, http.StatusNotFound, httperr.CodeNotFound, "Artist not found"},
	{commands.ErrServiceNotFound, http.StatusNotFound, httperr.CodeNotFound, "Service not found"},
	{commands.ErrReservationNotFound, http.StatusNotFound, httperr.CodeNotFound, "Reservation not found"},
	{commands.ErrServiceUnavailable, http.StatusConflict, httperr.CodeServiceUnavailable, "This service is not currently offered"},
	{commands.ErrSlotUnavailable, http.StatusConflict, httperr.CodeSlotUnavailable, "The selected time is no longer available"},
	{commands.ErrSlotTaken, http.StatusConflict, httperr.CodeSlotTaken, "The selected time was just booked by someone else"},
	{commands.ErrReservationNotPending, http.StatusConflict, httperr.CodeNotPending, "Reservation is no longer pending"},
	{commands.ErrPaymentSetupIncomplete, http.StatusUnprocessableEntity, httperr.CodeOnboardingIncomplete, "The artist has not finished payment setup"},
	{commands.ErrSlotSourceUnavailable, http.StatusBadGateway, httperr.CodeSlotSourceUnavailable, "Calendar provider is unavailable"},
}

var queryErrors = []errorMapping{
	{queries.ErrInvalidQuery, http.StatusBadRequest, httperr.CodeInvalidInput, "Invalid availability query"},
	{queries.ErrArtistNotFound, http.StatusNotFound, httperr.CodeNotFound, "Artist not found"},
	{queries.ErrServiceNotFound, http.StatusNotFound, httperr.CodeNotFound, "Service not found"},
	{queries.ErrReservationNotFound, http.StatusNotFound, httperr.CodeNotFound, "Reservation not found"},
	{queries.ErrServiceUnavailable, http.StatusConflict, httperr.CodeServiceUnavailable, "This service is not currently offered"},
	{queries.ErrSlotSourceUnavailable, http.StatusBadGateway, httperr.CodeSlotSourceUnavailable, "Calendar provider is unavailable"},
}

func abortWithCommandError(c *gin.Context, err error) {
	var intentErr *commands.PaymentIntentError
	if errs.As(err, &intentErr) {
		httperr.AbortWithError(c, http.StatusBadGateway, httperr.CodePaymentSetupFailed, err,
			"Payment setup failed, please retry", gin.H{"reservationId": intentErr.ReservationID.String()})
		return
	}
	abortWithMapped(c, err, commandErrors)
}

func abortWithQueryError(c *gin.Context, err error) {
	abortWithMapped(c, err, queryErrors)
}

func abortWithMapped(c *gin.Context, err error, table []errorMapping) {
	for _, m := range table {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, m.code, err, m.msg, nil)
			return
		}
	}
	slog.ErrorContext(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err.Error())
	httperr.AbortWithError(c, http.StatusInternalServerError, httperr.CodeInternal, err, "Internal server error", nil)
}

func abortInvalid(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeInvalidInput, err, msg, nil)
}
