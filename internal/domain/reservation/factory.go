package reservation

import (
	"errors"
	"time"

	"inkslot/internal/domain/artist"
	"inkslot/internal/domain/calendar"
	"inkslot/internal/pkg/clock"
)

var (
	ErrOfferingMismatch    = errors.New("offering does not belong to artist")
	ErrOfferingUnavailable = errors.New("offering is sold out or disabled")
	ErrStartNotInFuture    = errors.New("start time must be in the future")
	ErrLeadTimeNotMet      = errors.New("lead time requirement not met")
	ErrOutsideWorkingHours = errors.New("booking does not fit inside working hours")
)

// WorkingHours reports whether a candidate lies inside one working interval.
type WorkingHours interface {
	Covers(candidate calendar.Interval) bool
}

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

type Draft struct {
	Artist   *artist.Artist
	Offering *artist.Offering
	Start    time.Time
	// Requested is the client's duration override; nil uses the offering's length.
	Requested *time.Duration
	Client    ClientContact
	Note      Note
	// Hours bounds the slot: weekly rules for native artists, the widget's
	// offered slots for embed artists. Nil skips the check.
	Hours WorkingHours
}

// CreatePending validates a booking request against the artist's rules and
// returns an unsaved pending reservation.
func (f *Factory) CreatePending(d Draft) (*Reservation, error) {
	if !d.Offering.BelongsTo(d.Artist.ID()) {
		return nil, ErrOfferingMismatch
	}
	if !d.Offering.IsOffered() {
		return nil, ErrOfferingUnavailable
	}

	duration := d.Offering.DurationFor(d.Requested)
	if err := ValidateDuration(duration); err != nil {
		return nil, err
	}
	slot, err := calendar.NewIntervalFor(d.Start, duration)
	if err != nil {
		return nil, err
	}

	now := f.Clock.Now()
	if !slot.Start().After(now) {
		return nil, ErrStartNotInFuture
	}
	if slot.Start().Before(d.Artist.EarliestBookableAt(now)) {
		return nil, ErrLeadTimeNotMet
	}
	if d.Hours != nil && !d.Hours.Covers(slot) {
		return nil, ErrOutsideWorkingHours
	}

	quote := f.PriceCalculator.Quote(d.Offering, duration)
	price, err := NewMoney(quote.PriceCents, d.Offering.Currency())
	if err != nil {
		return nil, err
	}
	deposit, err := NewMoney(quote.DepositCents, d.Offering.Currency())
	if err != nil {
		return nil, err
	}

	return newPending(d.Artist.ID(), d.Offering.ID(), d.Client, slot, price, deposit, d.Note), nil
}
