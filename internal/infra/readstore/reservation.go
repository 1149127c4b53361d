package readstore

import (
	"context"
	"time"

	"inkslot/internal/domain/calendar"
	"inkslot/internal/domain/reservation"
	"inkslot/internal/infra"
	"inkslot/internal/infra/repository/converter"
	sqlc "inkslot/internal/infra/sqlc/generated"
	"inkslot/internal/pkg/pgconv"
	"inkslot/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	GetReservationViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewByIDRow, error)
	ListActiveReservationsInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveReservationsInRangeParams) ([]sqlc.ListActiveReservationsInRangeRow, error)
	ListReservationsByArtist(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByArtistParams) ([]sqlc.ListReservationsByArtistRow, error)
	ListStalePendingReservationIDs(ctx context.Context, db sqlc.DBTX, arg sqlc.ListStalePendingReservationIDsParams) ([]uuid.UUID, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return &queries.ReservationView{
		ID:              row.ID,
		ArtistID:        row.ArtistID,
		ServiceID:       row.ServiceID,
		ServiceTitle:    row.ServiceTitle,
		ServiceKind:     row.ServiceKind,
		ClientName:      row.ClientName,
		ClientEmail:     row.ClientEmail,
		StartTime:       pgconv.TimeFromPgtype(row.StartTime),
		EndTime:         pgconv.TimeFromPgtype(row.EndTime),
		DurationMinutes: row.DurationMinutes,
		PriceCents:      row.PriceCents,
		DepositCents:    row.DepositCents,
		Currency:        row.Currency,
		PaymentStatus:   row.PaymentStatus,
		BookingStatus:   row.BookingStatus,
		PaymentIntentID: pgconv.StringPtrFromPgtype(row.PaymentIntentID),
		Note:            pgconv.StringPtrFromPgtype(row.Note),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *ReservationReadStore) FindByArtist(ctx context.Context, artistID uuid.UUID, from, to time.Time) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsByArtist(ctx, r.db, sqlc.ListReservationsByArtistParams{
		ArtistID:   artistID,
		RangeStart: pgconv.TimeToPgtype(from),
		RangeEnd:   pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by artist", err)
	}

	result := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReservationListItem{
			ID:              row.ID,
			ServiceID:       row.ServiceID,
			ServiceTitle:    row.ServiceTitle,
			ClientName:      row.ClientName,
			ClientEmail:     row.ClientEmail,
			StartTime:       pgconv.TimeFromPgtype(row.StartTime),
			EndTime:         pgconv.TimeFromPgtype(row.EndTime),
			DurationMinutes: row.DurationMinutes,
			DepositCents:    row.DepositCents,
			Currency:        row.Currency,
			PaymentStatus:   row.PaymentStatus,
			BookingStatus:   row.BookingStatus,
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

// FindEntityByID loads the reservation aggregate for command-side decisions.
func (r *ReservationReadStore) FindEntityByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	res, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation is invalid", err, infra.KindDBFailure)
	}
	return res, nil
}

// FindActiveRanges returns the pending and confirmed ranges of the artist
// that overlap window, ordered by start.
func (r *ReservationReadStore) FindActiveRanges(ctx context.Context, artistID uuid.UUID, window calendar.Interval) ([]calendar.Interval, error) {
	rows, err := r.queries.ListActiveReservationsInRange(ctx, r.db, sqlc.ListActiveReservationsInRangeParams{
		ArtistID:   artistID,
		RangeStart: pgconv.TimeToPgtype(window.Start()),
		RangeEnd:   pgconv.TimeToPgtype(window.End()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active reservations", err)
	}

	ranges := make([]calendar.Interval, 0, len(rows))
	for _, row := range rows {
		iv, err := calendar.NewInterval(pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime))
		if err != nil {
			return nil, infra.WrapRepoErr("stored reservation has an invalid range", err, infra.KindDBFailure)
		}
		ranges = append(ranges, iv)
	}
	return ranges, nil
}

func (r *ReservationReadStore) FindStalePendingIDs(ctx context.Context, createdBefore time.Time, limit int) ([]uuid.UUID, error) {
	ids, err := r.queries.ListStalePendingReservationIDs(ctx, r.db, sqlc.ListStalePendingReservationIDsParams{
		CreatedBefore: pgconv.TimeToPgtype(createdBefore),
		BatchSize:     int32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stale pending reservations", err)
	}
	return ids, nil
}
