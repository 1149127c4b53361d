package converter

import (
	"time"

	"inkslot/internal/domain/calendar"
	"inkslot/internal/domain/reservation"
	sqlc "inkslot/internal/infra/sqlc/generated"
	"inkslot/internal/pkg/errs"
	"inkslot/internal/pkg/pgconv"
)

func ReservationToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	client := res.Client()
	return sqlc.CreateReservationParams{
		ID:              res.ID(),
		ArtistID:        res.ArtistID(),
		ServiceID:       res.ServiceID(),
		ClientName:      client.Name(),
		ClientEmail:     client.Email(),
		ClientPhone:     pgconv.NullableString(client.Phone()),
		StartTime:       pgconv.TimeToPgtype(res.Start()),
		EndTime:         pgconv.TimeToPgtype(res.End()),
		DurationMinutes: int32(res.Duration() / time.Minute),
		PriceCents:      res.Price().Cents(),
		DepositCents:    res.Deposit().Cents(),
		Currency:        res.Deposit().Currency(),
		PaymentStatus:   res.PaymentStatus().String(),
		BookingStatus:   res.BookingStatus().String(),
		Note:            pgconv.NullableString(res.Note().String()),
	}
}

// ReservationFromRow rebuilds the aggregate from a stored row. Rows are
// trusted to satisfy the table constraints.
func ReservationFromRow(row sqlc.Reservations) (*reservation.Reservation, error) {
	slot, err := calendar.NewInterval(pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime))
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s has an invalid slot", row.ID)
	}
	client, err := reservation.NewClientContact(row.ClientName, row.ClientEmail, pgconv.StringFromPgtype(row.ClientPhone))
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s has an invalid client", row.ID)
	}
	price, err := reservation.NewMoney(row.PriceCents, row.Currency)
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s has an invalid price", row.ID)
	}
	deposit, err := reservation.NewMoney(row.DepositCents, row.Currency)
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s has an invalid deposit", row.ID)
	}
	note, err := reservation.NewNote(pgconv.StringFromPgtype(row.Note))
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s has an invalid note", row.ID)
	}

	return reservation.Reconstruct(reservation.Snapshot{
		ID:              row.ID,
		ArtistID:        row.ArtistID,
		ServiceID:       row.ServiceID,
		Client:          client,
		Slot:            slot,
		Price:           price,
		Deposit:         deposit,
		PaymentStatus:   reservation.PaymentStatus(row.PaymentStatus),
		BookingStatus:   reservation.BookingStatus(row.BookingStatus),
		PaymentIntentID: pgconv.StringFromPgtype(row.PaymentIntentID),
		Note:            note,
		CancelledAt:     pgconv.TimePtrFromPgtype(row.CancelledAt),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}
