package queries

import (
	"context"
	"time"

	"inkslot/internal/infra"
	"inkslot/internal/pkg/clock"
	"inkslot/internal/pkg/config"
	"inkslot/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// ListByArtist returns reservations starting in [from, to). Nil bounds
	// default to now and now plus the default window.
	ListByArtist(ctx context.Context, artistID uuid.UUID, from, to *time.Time) ([]*ReservationListItem, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByArtist(ctx context.Context, artistID uuid.UUID, from, to time.Time) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	repo    ReservationViewRepo
	clock   clock.Clock
	booking config.BookingConfig
}

func NewReservationQueries(repo ReservationViewRepo, clk clock.Clock, cfg config.Config) ReservationQueries {
	return &reservationQueriesImpl{repo: repo, clock: clk, booking: cfg.Booking}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByArtist(ctx context.Context, artistID uuid.UUID, from, to *time.Time) ([]*ReservationListItem, error) {
	start := q.clock.Now().Truncate(time.Minute)
	if from != nil {
		start = *from
	}
	end := start.Add(q.booking.DefaultWindow())
	if to != nil {
		end = *to
	}
	if !end.After(start) || end.Sub(start) > q.booking.MaxWindow() {
		return nil, ErrInvalidQuery
	}

	items, err := q.repo.FindByArtist(ctx, artistID, start, end)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return items, nil
}
