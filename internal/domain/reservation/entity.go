package reservation

import (
	"time"

	"inkslot/internal/domain/calendar"

	"github.com/google/uuid"
)

type Reservation struct {
	id              uuid.UUID
	artistID        uuid.UUID
	serviceID       uuid.UUID
	client          ClientContact
	slot            calendar.Interval
	price           Money
	deposit         Money
	paymentStatus   PaymentStatus
	bookingStatus   BookingStatus
	paymentIntentID string
	note            Note
	cancelledAt     *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

// newPending is only reachable through Factory so every new reservation has
// passed validation.
func newPending(artistID, serviceID uuid.UUID, client ClientContact, slot calendar.Interval, price, deposit Money, note Note) *Reservation {
	return &Reservation{
		id:            uuid.New(),
		artistID:      artistID,
		serviceID:     serviceID,
		client:        client,
		slot:          slot,
		price:         price,
		deposit:       deposit,
		paymentStatus: PaymentPending,
		bookingStatus: BookingPending,
		note:          note,
	}
}

type Snapshot struct {
	ID              uuid.UUID
	ArtistID        uuid.UUID
	ServiceID       uuid.UUID
	Client          ClientContact
	Slot            calendar.Interval
	Price           Money
	Deposit         Money
	PaymentStatus   PaymentStatus
	BookingStatus   BookingStatus
	PaymentIntentID string
	Note            Note
	CancelledAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Reconstruct rebuilds a stored reservation without re-running creation rules.
func Reconstruct(s Snapshot) *Reservation {
	return &Reservation{
		id:              s.ID,
		artistID:        s.ArtistID,
		serviceID:       s.ServiceID,
		client:          s.Client,
		slot:            s.Slot,
		price:           s.Price,
		deposit:         s.Deposit,
		paymentStatus:   s.PaymentStatus,
		bookingStatus:   s.BookingStatus,
		paymentIntentID: s.PaymentIntentID,
		note:            s.Note,
		cancelledAt:     s.CancelledAt,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
	}
}

// Stamp records the storage-assigned creation time.
func (r *Reservation) Stamp(createdAt time.Time) {
	r.createdAt = createdAt
	r.updatedAt = createdAt
}

func (r *Reservation) AttachPaymentIntent(intentID string) {
	r.paymentIntentID = intentID
}

func (r *Reservation) HoldsSlot() bool {
	return r.bookingStatus.HoldsSlot()
}

func (r *Reservation) IsPending() bool {
	return r.bookingStatus == BookingPending
}

// IsStale reports whether a pending reservation has waited longer than ttl
// for its deposit.
func (r *Reservation) IsStale(now time.Time, ttl time.Duration) bool {
	return r.IsPending() && !r.createdAt.IsZero() && now.Sub(r.createdAt) > ttl
}

func (r *Reservation) ID() uuid.UUID                { return r.id }
func (r *Reservation) ArtistID() uuid.UUID          { return r.artistID }
func (r *Reservation) ServiceID() uuid.UUID         { return r.serviceID }
func (r *Reservation) Client() ClientContact        { return r.client }
func (r *Reservation) Slot() calendar.Interval      { return r.slot }
func (r *Reservation) Start() time.Time             { return r.slot.Start() }
func (r *Reservation) End() time.Time               { return r.slot.End() }
func (r *Reservation) Duration() time.Duration      { return r.slot.Duration() }
func (r *Reservation) Price() Money                 { return r.price }
func (r *Reservation) Deposit() Money               { return r.deposit }
func (r *Reservation) PaymentStatus() PaymentStatus { return r.paymentStatus }
func (r *Reservation) BookingStatus() BookingStatus { return r.bookingStatus }
func (r *Reservation) PaymentIntentID() string      { return r.paymentIntentID }
func (r *Reservation) Note() Note                   { return r.note }
func (r *Reservation) CancelledAt() *time.Time      { return r.cancelledAt }
func (r *Reservation) CreatedAt() time.Time         { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time         { return r.updatedAt }
