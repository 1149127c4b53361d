package commands

import (
	"context"

	"inkslot/internal/domain/schedule"
	"inkslot/internal/pkg/errs"
	"inkslot/internal/usecase/shared"

	"github.com/google/uuid"
)

type WorkingHoursInput struct {
	DayOfWeek int
	StartTime string
	EndTime   string
	Active    bool
}

type ArtistCommands interface {
	ReplaceWorkingHours(ctx context.Context, artistID uuid.UUID, in []WorkingHoursInput) error
}

type artistUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache shared.AvailabilityCache
}

func NewArtistUseCase(uow shared.UnitOfWork, cache shared.AvailabilityCache) ArtistCommands {
	return &artistUseCaseImpl{uow: uow, cache: cache}
}

// ReplaceWorkingHours swaps the artist's whole weekly schedule. Order is kept:
// when several active rules share a weekday only the first is honored.
func (uc *artistUseCaseImpl) ReplaceWorkingHours(ctx context.Context, artistID uuid.UUID, in []WorkingHoursInput) error {
	rules := make([]schedule.Rule, 0, len(in))
	for _, r := range in {
		rule, err := schedule.NewRule(r.DayOfWeek, r.StartTime, r.EndTime, r.Active)
		if err != nil {
			return errs.Mark(err, ErrInvalidInput)
		}
		rules = append(rules, rule)
	}

	if _, err := loadArtist(ctx, uc.uow.CommandReads(), artistID); err != nil {
		return err
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.WorkingHours().Replace(ctx, artistID, rules)
	})
	if err != nil {
		return errs.Mark(err, ErrPersistence)
	}

	invalidateAvailability(ctx, uc.cache, artistID)
	return nil
}
