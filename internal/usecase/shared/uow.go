package shared

import (
	"context"
	"time"

	"inkslot/internal/domain/artist"
	"inkslot/internal/domain/calendar"
	"inkslot/internal/domain/reservation"
	"inkslot/internal/domain/schedule"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx scopes repositories to one transaction.
type Tx interface {
	Reservations() ReservationRepository
	WorkingHours() WorkingHoursRepository
	Notifications() NotificationRepository
	Reads() CommandReads
}

type CommandReads interface {
	ArtistByID(ctx context.Context, id uuid.UUID) (*artist.Artist, error)
	OfferingByID(ctx context.Context, id uuid.UUID) (*artist.Offering, error)
	WorkingHours(ctx context.Context, artistID uuid.UUID) ([]schedule.Rule, error)
	// ActiveReservationsInRange returns pending and confirmed ranges overlapping window.
	ActiveReservationsInRange(ctx context.Context, artistID uuid.UUID, window calendar.Interval) ([]calendar.Interval, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	StalePendingReservationIDs(ctx context.Context, createdBefore time.Time, limit int) ([]uuid.UUID, error)
}

type ReservationRepository interface {
	// Create inserts a pending reservation. An overlap with another
	// slot-holding reservation fails with a conflict-kind repository error.
	Create(ctx context.Context, res *reservation.Reservation) error
	SetPaymentIntent(ctx context.Context, id uuid.UUID, intentID string) (bool, error)
	// CancelIfPending and ConfirmIfPending are guarded updates; false means the
	// reservation was not pending (or does not exist).
	CancelIfPending(ctx context.Context, id uuid.UUID) (bool, error)
	ConfirmIfPending(ctx context.Context, id uuid.UUID) (bool, error)
}

type WorkingHoursRepository interface {
	Replace(ctx context.Context, artistID uuid.UUID, rules []schedule.Rule) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
