package queries

import (
	"time"

	"github.com/google/uuid"
)

// SlotView is one bookable start time, rendered in the artist's time zone.
type SlotView struct {
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	IsoStart  time.Time `json:"isoStart"`
	Available bool      `json:"available"`
}

type AvailabilityView struct {
	ArtistID        uuid.UUID  `json:"artistId"`
	TimeZone        string     `json:"timeZone"`
	Source          string     `json:"source"`
	From            time.Time  `json:"from"`
	To              time.Time  `json:"to"`
	DurationMinutes int        `json:"durationMinutes"`
	StepMinutes     int        `json:"stepMinutes"`
	Slots           []SlotView `json:"slots"`
}

type ReservationView struct {
	ID              uuid.UUID `json:"id"`
	ArtistID        uuid.UUID `json:"artist_id"`
	ServiceID       uuid.UUID `json:"service_id"`
	ServiceTitle    string    `json:"service_title"`
	ServiceKind     string    `json:"service_kind"`
	ClientName      string    `json:"client_name"`
	ClientEmail     string    `json:"client_email"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int32     `json:"duration_minutes"`
	PriceCents      int64     `json:"price_cents"`
	DepositCents    int64     `json:"deposit_cents"`
	Currency        string    `json:"currency"`
	PaymentStatus   string    `json:"payment_status"`
	BookingStatus   string    `json:"booking_status"`
	PaymentIntentID *string   `json:"payment_intent_id,omitempty"`
	Note            *string   `json:"note,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type ReservationListItem struct {
	ID              uuid.UUID `json:"id"`
	ServiceID       uuid.UUID `json:"service_id"`
	ServiceTitle    string    `json:"service_title"`
	ClientName      string    `json:"client_name"`
	ClientEmail     string    `json:"client_email"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DepositCents    int64     `json:"deposit_cents"`
	Currency        string    `json:"currency"`
	PaymentStatus   string    `json:"payment_status"`
	BookingStatus   string    `json:"booking_status"`
	CreatedAt       time.Time `json:"created_at"`
	DurationMinutes int32     `json:"duration_minutes"`
}
