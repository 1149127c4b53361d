package commands

import (
	"context"
	"log/slog"
	"time"

	"inkslot/internal/pkg/clock"
	"inkslot/internal/pkg/errs"
	"inkslot/internal/usecase/shared"
)

const defaultSweepBatch = 100

// ExpiryCommands release slots held by reservations whose checkout was abandoned.
type ExpiryCommands interface {
	ExpireStalePending(ctx context.Context, ttl time.Duration) (int, error)
}

type expiryUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache shared.AvailabilityCache
	clock clock.Clock
	batch int
}

func NewExpiryUseCase(uow shared.UnitOfWork, cache shared.AvailabilityCache, clk clock.Clock) ExpiryCommands {
	return &expiryUseCaseImpl{uow: uow, cache: cache, clock: clk, batch: defaultSweepBatch}
}

// ExpireStalePending cancels pending reservations older than ttl, one guarded
// update each, and returns how many it cancelled. Reservations confirmed in
// the meantime are skipped by the guard.
func (uc *expiryUseCaseImpl) ExpireStalePending(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := uc.clock.Now().Add(-ttl)
	ids, err := uc.uow.CommandReads().StalePendingReservationIDs(ctx, cutoff, uc.batch)
	if err != nil {
		return 0, errs.Mark(err, ErrPersistence)
	}

	expired := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return expired, err
		}
		ok, err := cancelPending(ctx, uc.uow, uc.cache, uc.clock, id, topicBookingExpired)
		if err != nil {
			slog.ErrorContext(ctx, "failed to expire pending reservation",
				"reservation_id", id.String(), "error", err.Error())
			continue
		}
		if ok {
			expired++
		}
	}
	return expired, nil
}
