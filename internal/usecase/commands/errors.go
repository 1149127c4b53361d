package commands

import (
	"inkslot/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput           = errs.New("invalid input")
	ErrArtistNotFound         = errs.New("artist not found")
	ErrServiceNotFound        = errs.New("service not found")
	ErrServiceUnavailable     = errs.New("service unavailable")
	ErrSlotUnavailable        = errs.New("slot unavailable")
	ErrSlotTaken              = errs.New("slot taken")
	ErrSlotSourceUnavailable  = errs.New("slot source unavailable")
	ErrPaymentSetupIncomplete = errs.New("artist payment setup incomplete")
	ErrPaymentIntentFailed    = errs.New("payment intent creation failed")
	ErrReservationNotFound    = errs.New("reservation not found")
	ErrReservationNotPending  = errs.New("reservation is no longer pending")
	ErrPersistence            = errs.New("persistence failure")
)

// PaymentIntentError reports a failed payment-intent request for a
// reservation that was created and is still holding its slot.
type PaymentIntentError struct {
	ReservationID uuid.UUID
	err           error
}

func newPaymentIntentError(reservationID uuid.UUID, cause error) *PaymentIntentError {
	return &PaymentIntentError{ReservationID: reservationID, err: errs.Mark(cause, ErrPaymentIntentFailed)}
}

func (e *PaymentIntentError) Error() string {
	if e.err == nil {
		return "payment intent for reservation " + e.ReservationID.String() + " failed"
	}
	return "payment intent for reservation " + e.ReservationID.String() + ": " + e.err.Error()
}

func (e *PaymentIntentError) Unwrap() error {
	return e.err
}

func (e *PaymentIntentError) Is(target error) bool {
	return target == ErrPaymentIntentFailed
}
