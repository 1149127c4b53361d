package repository

import (
	"context"

	"inkslot/internal/domain/reservation"
	"inkslot/internal/infra"
	"inkslot/internal/infra/repository/converter"
	sqlc "inkslot/internal/infra/sqlc/generated"
	"inkslot/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.CreateReservationRow, error)
	SetReservationPaymentIntent(ctx context.Context, db sqlc.DBTX, arg sqlc.SetReservationPaymentIntentParams) (int64, error)
	CancelPendingReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	ConfirmPendingReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts the reservation. An overlapping slot-holding reservation
// surfaces as a KindConflict error from the exclusion constraint.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	row, err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToCreateParams(res))
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	res.Stamp(pgconv.TimeFromPgtype(row.CreatedAt))
	return nil
}

func (r *ReservationRepository) SetPaymentIntent(ctx context.Context, id uuid.UUID, intentID string) (bool, error) {
	n, err := r.queries.SetReservationPaymentIntent(ctx, r.db, sqlc.SetReservationPaymentIntentParams{
		ID:              id,
		PaymentIntentID: pgconv.StringToPgtype(intentID),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to set payment intent", err)
	}
	return n > 0, nil
}

func (r *ReservationRepository) CancelIfPending(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.queries.CancelPendingReservation(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel reservation", err)
	}
	return n > 0, nil
}

func (r *ReservationRepository) ConfirmIfPending(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.queries.ConfirmPendingReservation(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to confirm reservation", err)
	}
	return n > 0, nil
}
