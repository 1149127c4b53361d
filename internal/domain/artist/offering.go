package artist

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidOfferingKind = errors.New("invalid offering kind")
	ErrInvalidDuration     = errors.New("offering duration must be positive")
	ErrInvalidSlotStep     = errors.New("slot step must be positive")
	ErrNegativeAmount      = errors.New("price and deposit cannot be negative")
	ErrDepositExceedsPrice = errors.New("deposit cannot exceed price")
)

// DefaultServiceStep is the candidate granularity for regular services that
// do not configure their own step.
const DefaultServiceStep = 30 * time.Minute

type OfferingKind string

const (
	KindService OfferingKind = "service"
	KindFlash   OfferingKind = "flash"
)

func (k OfferingKind) IsValid() bool {
	return k == KindService || k == KindFlash
}

func (k OfferingKind) String() string {
	return string(k)
}

// Offering is a bookable service or flash design belonging to one artist.
type Offering struct {
	id           uuid.UUID
	artistID     uuid.UUID
	kind         OfferingKind
	title        string
	duration     time.Duration
	slotStep     time.Duration
	priceCents   int64
	depositCents int64
	currency     string
	active       bool
	soldOut      bool
}

type OfferingParams struct {
	ID              uuid.UUID
	ArtistID        uuid.UUID
	Kind            string
	Title           string
	DurationMinutes int
	// SlotStepMinutes is nil when the offering falls back to the kind default.
	SlotStepMinutes *int
	PriceCents      int64
	DepositCents    int64
	Currency        string
	Active          bool
	SoldOut         bool
}

func NewOffering(p OfferingParams) (*Offering, error) {
	kind := OfferingKind(p.Kind)
	if !kind.IsValid() {
		return nil, ErrInvalidOfferingKind
	}
	if p.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	var step time.Duration
	if p.SlotStepMinutes != nil {
		if *p.SlotStepMinutes <= 0 {
			return nil, ErrInvalidSlotStep
		}
		step = time.Duration(*p.SlotStepMinutes) * time.Minute
	}
	if p.PriceCents < 0 || p.DepositCents < 0 {
		return nil, ErrNegativeAmount
	}
	if p.DepositCents > p.PriceCents {
		return nil, ErrDepositExceedsPrice
	}

	return &Offering{
		id:           p.ID,
		artistID:     p.ArtistID,
		kind:         kind,
		title:        strings.TrimSpace(p.Title),
		duration:     time.Duration(p.DurationMinutes) * time.Minute,
		slotStep:     step,
		priceCents:   p.PriceCents,
		depositCents: p.DepositCents,
		currency:     strings.ToLower(p.Currency),
		active:       p.Active,
		soldOut:      p.SoldOut,
	}, nil
}

// IsOffered reports whether the offering can currently be booked.
func (o *Offering) IsOffered() bool {
	return o.active && !o.soldOut
}

func (o *Offering) BelongsTo(artistID uuid.UUID) bool {
	return o.artistID == artistID
}

// SlotStep is the granularity at which candidate start times are tried.
// Flash designs step by their own length unless configured otherwise.
func (o *Offering) SlotStep() time.Duration {
	if o.slotStep > 0 {
		return o.slotStep
	}
	if o.kind == KindFlash {
		return o.duration
	}
	return DefaultServiceStep
}

// HasFixedDuration is true for flash designs, whose length cannot be overridden per booking.
func (o *Offering) HasFixedDuration() bool {
	return o.kind == KindFlash
}

// DurationFor resolves the booking length, honoring a per-request override
// only where the offering allows it.
func (o *Offering) DurationFor(requested *time.Duration) time.Duration {
	if requested == nil || o.HasFixedDuration() {
		return o.duration
	}
	return *requested
}

func (o *Offering) ID() uuid.UUID           { return o.id }
func (o *Offering) ArtistID() uuid.UUID     { return o.artistID }
func (o *Offering) Kind() OfferingKind      { return o.kind }
func (o *Offering) Title() string           { return o.title }
func (o *Offering) Duration() time.Duration { return o.duration }
func (o *Offering) PriceCents() int64       { return o.priceCents }
func (o *Offering) DepositCents() int64     { return o.depositCents }
func (o *Offering) Currency() string        { return o.currency }
func (o *Offering) IsActive() bool          { return o.active }
func (o *Offering) IsSoldOut() bool         { return o.soldOut }
