package artist

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyDisplayName  = errors.New("artist display name cannot be empty")
	ErrNegativeLeadTime  = errors.New("lead time cannot be negative")
	ErrInvalidTimeZone   = errors.New("invalid artist time zone")
	ErrInvalidSlotSource = errors.New("invalid slot source")
)

type SlotSource string

const (
	SlotSourceNative SlotSource = "native"
	SlotSourceEmbed  SlotSource = "embed"
)

func (s SlotSource) IsValid() bool {
	return s == SlotSourceNative || s == SlotSourceEmbed
}

func (s SlotSource) String() string {
	return string(s)
}

// EmbedRef identifies the artist's event type in the external scheduling widget.
type EmbedRef struct {
	Username  string
	EventType string
}

type Artist struct {
	id               uuid.UUID
	displayName      string
	location         *time.Location
	minLeadTimeHours int
	slotSource       SlotSource
	embed            EmbedRef
	paymentAccountID string
	paymentsEnabled  bool
}

type Params struct {
	ID               uuid.UUID
	DisplayName      string
	TimeZone         string
	MinLeadTimeHours int
	SlotSource       string
	Embed            EmbedRef
	PaymentAccountID string
	PaymentsEnabled  bool
}

func New(p Params) (*Artist, error) {
	name := strings.TrimSpace(p.DisplayName)
	if name == "" {
		return nil, ErrEmptyDisplayName
	}
	if p.MinLeadTimeHours < 0 {
		return nil, ErrNegativeLeadTime
	}
	tz := p.TimeZone
	if tz == "" {
		tz = "UTC"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, ErrInvalidTimeZone
	}
	source := SlotSource(p.SlotSource)
	if source == "" {
		source = SlotSourceNative
	}
	if !source.IsValid() {
		return nil, ErrInvalidSlotSource
	}

	return &Artist{
		id:               p.ID,
		displayName:      name,
		location:         loc,
		minLeadTimeHours: p.MinLeadTimeHours,
		slotSource:       source,
		embed:            p.Embed,
		paymentAccountID: strings.TrimSpace(p.PaymentAccountID),
		paymentsEnabled:  p.PaymentsEnabled,
	}, nil
}

// CanCollectDeposits is false until payment onboarding has produced an
// enabled destination account.
func (a *Artist) CanCollectDeposits() bool {
	return a.paymentsEnabled && a.paymentAccountID != ""
}

func (a *Artist) LeadTime() time.Duration {
	return time.Duration(a.minLeadTimeHours) * time.Hour
}

// EarliestBookableAt is the first instant a booking may start when requested at now.
func (a *Artist) EarliestBookableAt(now time.Time) time.Time {
	return now.Add(a.LeadTime())
}

func (a *Artist) ID() uuid.UUID            { return a.id }
func (a *Artist) DisplayName() string      { return a.displayName }
func (a *Artist) Location() *time.Location { return a.location }
func (a *Artist) MinLeadTimeHours() int    { return a.minLeadTimeHours }
func (a *Artist) SlotSource() SlotSource   { return a.slotSource }
func (a *Artist) Embed() EmbedRef          { return a.embed }
func (a *Artist) PaymentAccountID() string { return a.paymentAccountID }
func (a *Artist) PaymentsEnabled() bool    { return a.paymentsEnabled }
