package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"inkslot/internal/domain/artist"
	"inkslot/internal/domain/reservation"
	"inkslot/internal/infra"
	"inkslot/internal/pkg/clock"
	"inkslot/internal/pkg/errs"
	"inkslot/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	notificationKindEmail = "email"

	topicBookingRequested   = "booking_requested"
	topicBookingConfirmed   = "booking_confirmed"
	topicBookingCancelled   = "booking_cancelled"
	topicBookingExpired     = "booking_expired"
	topicPaymentCanceled    = "payment_canceled"
	topicPaymentAfterCancel = "payment_after_cancellation"
)

func loadArtist(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*artist.Artist, error) {
	a, err := reads.ArtistByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, errs.Mark(err, ErrPersistence)
	}
	return a, nil
}

// loadOffering treats an offering of another artist as missing.
func loadOffering(ctx context.Context, reads shared.CommandReads, artistID, id uuid.UUID) (*artist.Offering, error) {
	o, err := reads.OfferingByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(err, ErrPersistence)
	}
	if !o.BelongsTo(artistID) {
		return nil, ErrServiceNotFound
	}
	return o, nil
}

func loadReservation(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*reservation.Reservation, error) {
	r, err := reads.ReservationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrPersistence)
	}
	return r, nil
}

type reservationEvent struct {
	Type          string    `json:"type"`
	ReservationID uuid.UUID `json:"reservation_id"`
	ArtistID      uuid.UUID `json:"artist_id"`
	ServiceID     uuid.UUID `json:"service_id"`
	ClientName    string    `json:"client_name"`
	ClientEmail   string    `json:"client_email"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
}

// enqueueReservationEvent writes an outbox row for the external email sender
// in the caller's transaction.
func enqueueReservationEvent(ctx context.Context, tx shared.Tx, now time.Time, topic string, res *reservation.Reservation) error {
	payload, err := json.Marshal(reservationEvent{
		Type:          topic,
		ReservationID: res.ID(),
		ArtistID:      res.ArtistID(),
		ServiceID:     res.ServiceID(),
		ClientName:    res.Client().Name(),
		ClientEmail:   res.Client().Email(),
		StartTime:     res.Start(),
		EndTime:       res.End(),
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, notificationKindEmail, topic, payload, now)
}

func invalidateAvailability(ctx context.Context, cache shared.AvailabilityCache, artistID uuid.UUID) {
	if err := cache.Invalidate(ctx, artistID); err != nil {
		slog.WarnContext(ctx, "availability cache invalidation failed",
			"artist_id", artistID.String(), "error", err.Error())
	}
}

// cancelPending flips pending -> cancelled through the guarded update. It
// reports whether this call performed the transition. A reservation that is
// no longer pending is a successful no-op; an unknown id is not found.
func cancelPending(
	ctx context.Context,
	uow shared.UnitOfWork,
	cache shared.AvailabilityCache,
	clk clock.Clock,
	reservationID uuid.UUID,
	topic string,
) (bool, error) {
	var cancelled *reservation.Reservation
	err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cancelled = nil
		ok, err := tx.Reservations().CancelIfPending(ctx, reservationID)
		if err != nil {
			return err
		}
		res, err := tx.Reads().ReservationByID(ctx, reservationID)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		cancelled = res
		return enqueueReservationEvent(ctx, tx, clk.Now(), topic, res)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, ErrReservationNotFound
		}
		return false, errs.Mark(err, ErrPersistence)
	}
	if cancelled == nil {
		return false, nil
	}

	slog.InfoContext(ctx, "pending reservation cancelled",
		"reservation_id", reservationID.String(), "reason", topic)
	invalidateAvailability(ctx, cache, cancelled.ArtistID())
	return true, nil
}
