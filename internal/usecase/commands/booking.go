package commands

import (
	"context"
	"log/slog"
	"time"

	"inkslot/internal/domain/artist"
	"inkslot/internal/domain/availability"
	"inkslot/internal/domain/reservation"
	"inkslot/internal/domain/schedule"
	"inkslot/internal/infra"
	"inkslot/internal/pkg/clock"
	"inkslot/internal/pkg/errs"
	"inkslot/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	ArtistID  uuid.UUID
	ServiceID uuid.UUID
	StartTime time.Time
	// DurationMinutes overrides the service length for regular services.
	DurationMinutes *int
	ClientName      string
	ClientEmail     string
	ClientPhone     string
	Note            string
}

type CreateBookingResult struct {
	ReservationID   uuid.UUID
	BookingStatus   reservation.BookingStatus
	PaymentStatus   reservation.PaymentStatus
	StartTime       time.Time
	EndTime         time.Time
	DepositCents    int64
	Currency        string
	PaymentIntentID string
	ClientSecret    string
}

type PaymentIntentResult struct {
	ReservationID   uuid.UUID
	PaymentIntentID string
	ClientSecret    string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error)
	RetryPaymentIntent(ctx context.Context, reservationID uuid.UUID) (*PaymentIntentResult, error)
	CancelPending(ctx context.Context, reservationID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	payments shared.PaymentGateway
	embed    availability.EmbedProvider
	cache    shared.AvailabilityCache
	factory  *reservation.Factory
	clock    clock.Clock
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	payments shared.PaymentGateway,
	embed availability.EmbedProvider,
	cache shared.AvailabilityCache,
	factory *reservation.Factory,
	clk clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		payments: payments,
		embed:    embed,
		cache:    cache,
		factory:  factory,
		clock:    clk,
	}
}

type validatedInput struct {
	requested *time.Duration
	client    reservation.ClientContact
	note      reservation.Note
}

// validateInput runs before any I/O.
func validateInput(in CreateBookingInput, now time.Time) (*validatedInput, error) {
	if in.ArtistID == uuid.Nil || in.ServiceID == uuid.Nil || in.StartTime.IsZero() {
		return nil, ErrInvalidInput
	}
	if !in.StartTime.After(now) {
		return nil, errs.Mark(reservation.ErrStartNotInFuture, ErrInvalidInput)
	}

	var requested *time.Duration
	if in.DurationMinutes != nil {
		d := time.Duration(*in.DurationMinutes) * time.Minute
		if err := reservation.ValidateDuration(d); err != nil {
			return nil, errs.Mark(err, ErrInvalidInput)
		}
		requested = &d
	}

	client, err := reservation.NewClientContact(in.ClientName, in.ClientEmail, in.ClientPhone)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}
	note, err := reservation.NewNote(in.Note)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	return &validatedInput{requested: requested, client: client, note: note}, nil
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error) {
	valid, err := validateInput(in, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	reads := uc.uow.CommandReads()
	art, err := loadArtist(ctx, reads, in.ArtistID)
	if err != nil {
		return nil, err
	}
	offering, err := loadOffering(ctx, reads, art.ID(), in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !art.CanCollectDeposits() {
		return nil, ErrPaymentSetupIncomplete
	}

	hours, err := uc.workingHours(ctx, reads, art, in.StartTime)
	if err != nil {
		return nil, err
	}

	res, err := uc.factory.CreatePending(reservation.Draft{
		Artist:    art,
		Offering:  offering,
		Start:     in.StartTime,
		Requested: valid.requested,
		Client:    valid.client,
		Note:      valid.note,
		Hours:     hours,
	})
	if err != nil {
		return nil, mapDraftError(err)
	}
	if res.Deposit().IsZero() {
		return nil, ErrPaymentSetupIncomplete
	}

	// Advisory pre-check: spares a payment round trip for slots already gone.
	booked, err := reads.ActiveReservationsInRange(ctx, art.ID(), res.Slot())
	if err != nil {
		return nil, errs.Mark(err, ErrPersistence)
	}
	if availability.NewConflictIndex(booked).IsBlocked(res.Slot()) {
		slog.InfoContext(ctx, "booking rejected: slot unavailable",
			"artist_id", art.ID().String(), "start", res.Start())
		return nil, ErrSlotUnavailable
	}

	if err := uc.commit(ctx, res); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, art.ID())

	result := &CreateBookingResult{
		ReservationID: res.ID(),
		BookingStatus: res.BookingStatus(),
		PaymentStatus: res.PaymentStatus(),
		StartTime:     res.Start(),
		EndTime:       res.End(),
		DepositCents:  res.Deposit().Cents(),
		Currency:      res.Deposit().Currency(),
	}

	// The reservation keeps its slot even if the payment request fails.
	intent, err := uc.requestDeposit(ctx, art, res)
	if err != nil {
		return nil, err
	}
	result.PaymentIntentID = intent.ID
	result.ClientSecret = intent.ClientSecret
	return result, nil
}

// workingHours returns what bounds a booking for art: its weekly rules, or
// the slots the widget offers on the start's local day.
func (uc *bookingUseCaseImpl) workingHours(
	ctx context.Context,
	reads shared.CommandReads,
	art *artist.Artist,
	start time.Time,
) (reservation.WorkingHours, error) {
	if art.SlotSource() == artist.SlotSourceNative {
		rules, err := reads.WorkingHours(ctx, art.ID())
		if err != nil {
			return nil, errs.Mark(err, ErrPersistence)
		}
		return schedule.NewWeeklySchedule(rules, art.Location()), nil
	}

	if uc.embed == nil {
		return nil, errs.Mark(errs.New("no embed provider configured"), ErrSlotSourceUnavailable)
	}
	ref := art.Embed()
	day := availability.LocalDay(start, art.Location())
	offered, err := uc.embed.AvailableSlots(ctx, ref.Username, ref.EventType, day)
	if err != nil {
		slog.WarnContext(ctx, "embed slots lookup failed",
			"artist_id", art.ID().String(), "date", day.Format(time.DateOnly), "error", err)
		return nil, errs.Mark(errs.Wrap(err, "embed slots"), ErrSlotSourceUnavailable)
	}
	return availability.OfferedSlots(offered), nil
}

// commit re-checks overlap against committed state and inserts the pending
// reservation. The exclusion constraint is the final arbiter when two
// transactions pass the re-check together.
func (uc *bookingUseCaseImpl) commit(ctx context.Context, res *reservation.Reservation) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		booked, err := tx.Reads().ActiveReservationsInRange(ctx, res.ArtistID(), res.Slot())
		if err != nil {
			return err
		}
		if availability.NewConflictIndex(booked).IsBlocked(res.Slot()) {
			return ErrSlotTaken
		}

		if err := tx.Reservations().Create(ctx, res); err != nil {
			return err
		}

		return enqueueReservationEvent(ctx, tx, uc.clock.Now(), topicBookingRequested, res)
	})
	switch {
	case err == nil:
		return nil
	case errs.Is(err, ErrSlotTaken), infra.IsKind(err, infra.KindConflict):
		slog.InfoContext(ctx, "booking rejected: slot taken at commit",
			"artist_id", res.ArtistID().String(), "start", res.Start())
		return ErrSlotTaken
	default:
		return errs.Mark(err, ErrPersistence)
	}
}

func (uc *bookingUseCaseImpl) requestDeposit(ctx context.Context, art *artist.Artist, res *reservation.Reservation) (*shared.PaymentIntent, error) {
	intent, err := uc.payments.CreatePaymentIntent(ctx, shared.PaymentIntentRequest{
		ReservationID:      res.ID(),
		ArtistID:           art.ID(),
		AmountCents:        res.Deposit().Cents(),
		Currency:           res.Deposit().Currency(),
		DestinationAccount: art.PaymentAccountID(),
		Metadata: map[string]string{
			"reservation_id": res.ID().String(),
			"artist_id":      art.ID().String(),
			"service_id":     res.ServiceID().String(),
		},
	})
	if err != nil {
		slog.ErrorContext(ctx, "payment intent creation failed",
			"reservation_id", res.ID().String(), "error", err.Error())
		return nil, newPaymentIntentError(res.ID(), err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		attached, err := tx.Reservations().SetPaymentIntent(ctx, res.ID(), intent.ID)
		if err != nil {
			return err
		}
		if !attached {
			slog.WarnContext(ctx, "payment intent created for a reservation that is no longer pending",
				"reservation_id", res.ID().String(), "payment_intent_id", intent.ID)
		}
		return nil
	})
	if err != nil {
		return nil, newPaymentIntentError(res.ID(), err)
	}

	res.AttachPaymentIntent(intent.ID)
	return intent, nil
}

func (uc *bookingUseCaseImpl) RetryPaymentIntent(ctx context.Context, reservationID uuid.UUID) (*PaymentIntentResult, error) {
	reads := uc.uow.CommandReads()
	res, err := loadReservation(ctx, reads, reservationID)
	if err != nil {
		return nil, err
	}
	if !res.IsPending() {
		return nil, ErrReservationNotPending
	}
	art, err := loadArtist(ctx, reads, res.ArtistID())
	if err != nil {
		return nil, err
	}
	if !art.CanCollectDeposits() {
		return nil, ErrPaymentSetupIncomplete
	}

	intent, err := uc.requestDeposit(ctx, art, res)
	if err != nil {
		return nil, err
	}
	return &PaymentIntentResult{
		ReservationID:   res.ID(),
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
	}, nil
}

// CancelPending is idempotent: reservations that are already cancelled or
// have been confirmed are left untouched and the call still succeeds.
func (uc *bookingUseCaseImpl) CancelPending(ctx context.Context, reservationID uuid.UUID) error {
	_, err := cancelPending(ctx, uc.uow, uc.cache, uc.clock, reservationID, topicBookingCancelled)
	return err
}

func (uc *bookingUseCaseImpl) invalidate(ctx context.Context, artistID uuid.UUID) {
	invalidateAvailability(ctx, uc.cache, artistID)
}

func mapDraftError(err error) error {
	switch {
	case errs.Is(err, reservation.ErrOfferingMismatch):
		return ErrServiceNotFound
	case errs.Is(err, reservation.ErrOfferingUnavailable):
		return ErrServiceUnavailable
	default:
		return errs.Mark(err, ErrInvalidInput)
	}
}
