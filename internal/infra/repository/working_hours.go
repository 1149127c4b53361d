package repository

import (
	"context"

	"inkslot/internal/domain/schedule"
	"inkslot/internal/infra"
	"inkslot/internal/infra/repository/converter"
	sqlc "inkslot/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type WorkingHoursWriteQueries interface {
	DeleteWorkingHoursByArtist(ctx context.Context, db sqlc.DBTX, artistID uuid.UUID) error
	InsertWorkingHour(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertWorkingHourParams) error
}

type WorkingHoursRepository struct {
	queries WorkingHoursWriteQueries
	db      sqlc.DBTX
}

func NewWorkingHoursRepository(queries WorkingHoursWriteQueries, db sqlc.DBTX) *WorkingHoursRepository {
	return &WorkingHoursRepository{
		queries: queries,
		db:      db,
	}
}

// Replace swaps the artist's weekly rules. Rule order is kept in position so
// the first rule of a weekday wins on read.
func (r *WorkingHoursRepository) Replace(ctx context.Context, artistID uuid.UUID, rules []schedule.Rule) error {
	if err := r.queries.DeleteWorkingHoursByArtist(ctx, r.db, artistID); err != nil {
		return infra.WrapRepoErr("failed to clear working hours", err)
	}
	for i, rule := range rules {
		if err := r.queries.InsertWorkingHour(ctx, r.db, converter.RuleToInsertParams(artistID, i, rule)); err != nil {
			return infra.WrapRepoErr("failed to insert working hours", err)
		}
	}
	return nil
}
