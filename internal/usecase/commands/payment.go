package commands

import (
	"context"
	"log/slog"

	"inkslot/internal/domain/reservation"
	"inkslot/internal/infra"
	"inkslot/internal/pkg/clock"
	"inkslot/internal/pkg/errs"
	"inkslot/internal/usecase/shared"

	"github.com/google/uuid"
)

// PaymentCommands apply verified payment processor events.
type PaymentCommands interface {
	HandlePaymentEvent(ctx context.Context, evt shared.PaymentEvent) error
	ConfirmDeposit(ctx context.Context, reservationID uuid.UUID, intentID string) error
	CancelOnPaymentFailure(ctx context.Context, reservationID uuid.UUID) error
}

type paymentUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache shared.AvailabilityCache
	clock clock.Clock
}

func NewPaymentUseCase(uow shared.UnitOfWork, cache shared.AvailabilityCache, clk clock.Clock) PaymentCommands {
	return &paymentUseCaseImpl{uow: uow, cache: cache, clock: clk}
}

func (uc *paymentUseCaseImpl) HandlePaymentEvent(ctx context.Context, evt shared.PaymentEvent) error {
	if evt.ReservationID == uuid.Nil {
		slog.InfoContext(ctx, "payment event without reservation id ignored", "event_id", evt.ID)
		return nil
	}
	switch evt.Type {
	case shared.PaymentSucceeded:
		return uc.ConfirmDeposit(ctx, evt.ReservationID, evt.IntentID)
	case shared.PaymentCanceled:
		return uc.CancelOnPaymentFailure(ctx, evt.ReservationID)
	default:
		return nil
	}
}

// ConfirmDeposit moves a pending reservation to confirmed once its deposit is
// captured. It races with cancellation; whichever guarded update lands first
// wins and the other becomes a no-op.
func (uc *paymentUseCaseImpl) ConfirmDeposit(ctx context.Context, reservationID uuid.UUID, intentID string) error {
	var confirmed *reservation.Reservation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		confirmed = nil
		res, err := tx.Reads().ReservationByID(ctx, reservationID)
		if err != nil {
			return err
		}
		if res.PaymentIntentID() != "" && intentID != "" && res.PaymentIntentID() != intentID {
			slog.WarnContext(ctx, "payment event intent does not match reservation",
				"reservation_id", reservationID.String(),
				"expected_intent", res.PaymentIntentID(),
				"event_intent", intentID)
			return nil
		}

		// The intent is attached while the row is still pending; the guarded
		// update does nothing otherwise.
		if res.PaymentIntentID() == "" && intentID != "" {
			if _, err := tx.Reservations().SetPaymentIntent(ctx, reservationID, intentID); err != nil {
				return err
			}
		}
		ok, err := tx.Reservations().ConfirmIfPending(ctx, reservationID)
		if err != nil {
			return err
		}
		if !ok {
			current, err := tx.Reads().ReservationByID(ctx, reservationID)
			if err != nil {
				return err
			}
			if current.BookingStatus() == reservation.BookingCancelled {
				slog.WarnContext(ctx, "deposit captured for a cancelled reservation",
					"reservation_id", reservationID.String())
				return enqueueReservationEvent(ctx, tx, uc.clock.Now(), topicPaymentAfterCancel, current)
			}
			return nil
		}
		confirmed = res
		return enqueueReservationEvent(ctx, tx, uc.clock.Now(), topicBookingConfirmed, res)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrPersistence)
	}

	if confirmed != nil {
		slog.InfoContext(ctx, "reservation confirmed", "reservation_id", reservationID.String())
		invalidateAvailability(ctx, uc.cache, confirmed.ArtistID())
	}
	return nil
}

func (uc *paymentUseCaseImpl) CancelOnPaymentFailure(ctx context.Context, reservationID uuid.UUID) error {
	_, err := cancelPending(ctx, uc.uow, uc.cache, uc.clock, reservationID, topicPaymentCanceled)
	return err
}
