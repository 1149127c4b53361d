package readstore

import (
	"context"

	"inkslot/internal/domain/artist"
	"inkslot/internal/domain/schedule"
	"inkslot/internal/infra"
	"inkslot/internal/infra/repository/converter"
	sqlc "inkslot/internal/infra/sqlc/generated"
	"inkslot/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ArtistReadQueries interface {
	GetArtistByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Artists, error)
	GetServiceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Services, error)
	ListWorkingHoursByArtist(ctx context.Context, db sqlc.DBTX, artistID uuid.UUID) ([]sqlc.WorkingHours, error)
}

// ArtistReadStore loads artists, their offerings and weekly rules as domain values.
type ArtistReadStore struct {
	queries ArtistReadQueries
	db      sqlc.DBTX
}

func NewArtistReadStore(queries ArtistReadQueries, db sqlc.DBTX) *ArtistReadStore {
	return &ArtistReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ArtistReadStore) FindByID(ctx context.Context, id uuid.UUID) (*artist.Artist, error) {
	row, err := r.queries.GetArtistByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("artist not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find artist by ID", err)
	}
	a, err := converter.ArtistFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored artist is invalid", err, infra.KindDBFailure)
	}
	return a, nil
}

func (r *ArtistReadStore) FindOfferingByID(ctx context.Context, id uuid.UUID) (*artist.Offering, error) {
	row, err := r.queries.GetServiceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	o, err := converter.OfferingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored service is invalid", err, infra.KindDBFailure)
	}
	return o, nil
}

// FindRules returns the artist's weekly rules in stored order. An artist with
// no rows is closed every day.
func (r *ArtistReadStore) FindRules(ctx context.Context, artistID uuid.UUID) ([]schedule.Rule, error) {
	rows, err := r.queries.ListWorkingHoursByArtist(ctx, r.db, artistID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list working hours", err)
	}
	rules := make([]schedule.Rule, 0, len(rows))
	for _, row := range rows {
		rule, err := converter.RuleFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("stored working hours are invalid", err, infra.KindDBFailure)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
