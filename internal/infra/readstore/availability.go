package readstore

import (
	"context"

	"inkslot/internal/domain/artist"
	"inkslot/internal/domain/calendar"
	"inkslot/internal/domain/schedule"
	sqlc "inkslot/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

// AvailabilityReadStore serves the availability query outside any
// transaction.
type AvailabilityReadStore struct {
	artists      *ArtistReadStore
	reservations *ReservationReadStore
}

func NewAvailabilityReadStore(q *sqlc.Queries, db sqlc.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		artists:      NewArtistReadStore(q, db),
		reservations: NewReservationReadStore(q, db),
	}
}

func (s *AvailabilityReadStore) ArtistByID(ctx context.Context, id uuid.UUID) (*artist.Artist, error) {
	return s.artists.FindByID(ctx, id)
}

func (s *AvailabilityReadStore) OfferingByID(ctx context.Context, id uuid.UUID) (*artist.Offering, error) {
	return s.artists.FindOfferingByID(ctx, id)
}

func (s *AvailabilityReadStore) WorkingHours(ctx context.Context, artistID uuid.UUID) ([]schedule.Rule, error) {
	return s.artists.FindRules(ctx, artistID)
}

func (s *AvailabilityReadStore) ActiveReservationsInRange(ctx context.Context, artistID uuid.UUID, window calendar.Interval) ([]calendar.Interval, error) {
	return s.reservations.FindActiveRanges(ctx, artistID, window)
}
