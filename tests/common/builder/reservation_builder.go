//go:build unit || e2e

package builder

import (
	"time"

	"inkslot/internal/domain/calendar"
	"inkslot/internal/domain/reservation"
	reqdto "inkslot/internal/handler/dto/request"
	sqlc "inkslot/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	ID              uuid.UUID
	ArtistID        uuid.UUID
	ServiceID       uuid.UUID
	ClientName      string
	ClientEmail     string
	ClientPhone     string
	StartTime       time.Time
	EndTime         time.Time
	PriceCents      int64
	DepositCents    int64
	Currency        string
	PaymentStatus   reservation.PaymentStatus
	BookingStatus   reservation.BookingStatus
	PaymentIntentID string
	Note            string
	CreatedAt       time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Date(2030, time.March, 4, 10, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:            uuid.New(),
		ArtistID:      uuid.New(),
		ServiceID:     uuid.New(),
		ClientName:    "Alex Client",
		ClientEmail:   "client@example.com",
		StartTime:     start,
		EndTime:       start.Add(time.Hour),
		PriceCents:    20000,
		DepositCents:  5000,
		Currency:      "usd",
		PaymentStatus: reservation.PaymentPending,
		BookingStatus: reservation.BookingPending,
		CreatedAt:     start.Add(-48 * time.Hour),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// BuildDomain panics on invalid builder state; builders are test-only.
func (r *ReservationBuilder) BuildDomain() *reservation.Reservation {
	slot, err := calendar.NewInterval(r.StartTime, r.EndTime)
	if err != nil {
		panic(err)
	}
	client, err := reservation.NewClientContact(r.ClientName, r.ClientEmail, r.ClientPhone)
	if err != nil {
		panic(err)
	}
	price, err := reservation.NewMoney(r.PriceCents, r.Currency)
	if err != nil {
		panic(err)
	}
	deposit, err := reservation.NewMoney(r.DepositCents, r.Currency)
	if err != nil {
		panic(err)
	}
	note, err := reservation.NewNote(r.Note)
	if err != nil {
		panic(err)
	}
	return reservation.Reconstruct(reservation.Snapshot{
		ID:              r.ID,
		ArtistID:        r.ArtistID,
		ServiceID:       r.ServiceID,
		Client:          client,
		Slot:            slot,
		Price:           price,
		Deposit:         deposit,
		PaymentStatus:   r.PaymentStatus,
		BookingStatus:   r.BookingStatus,
		PaymentIntentID: r.PaymentIntentID,
		Note:            note,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.CreatedAt,
	})
}

func (r *ReservationBuilder) BuildInfra() sqlc.Reservations {
	return sqlc.Reservations{
		ID:              r.ID,
		ArtistID:        r.ArtistID,
		ServiceID:       r.ServiceID,
		ClientName:      r.ClientName,
		ClientEmail:     r.ClientEmail,
		ClientPhone:     pgtype.Text{String: r.ClientPhone, Valid: r.ClientPhone != ""},
		StartTime:       pgtype.Timestamptz{Time: r.StartTime, Valid: true},
		EndTime:         pgtype.Timestamptz{Time: r.EndTime, Valid: true},
		DurationMinutes: int32(r.EndTime.Sub(r.StartTime) / time.Minute),
		PriceCents:      r.PriceCents,
		DepositCents:    r.DepositCents,
		Currency:        r.Currency,
		PaymentStatus:   string(r.PaymentStatus),
		BookingStatus:   string(r.BookingStatus),
		PaymentIntentID: pgtype.Text{String: r.PaymentIntentID, Valid: r.PaymentIntentID != ""},
		Note:            pgtype.Text{String: r.Note, Valid: r.Note != ""},
		CreatedAt:       pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
	}
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	req := reqdto.CreateBookingRequest{
		ServiceID: r.ServiceID,
		StartTime: r.StartTime,
		Client: reqdto.ClientContactRequest{
			Name:  r.ClientName,
			Email: r.ClientEmail,
		},
	}
	if r.ClientPhone != "" {
		phone := r.ClientPhone
		req.Client.Phone = &phone
	}
	if r.Note != "" {
		note := r.Note
		req.Note = &note
	}
	return req
}
