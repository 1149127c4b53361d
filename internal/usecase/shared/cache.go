package shared

import (
	"context"

	"github.com/google/uuid"
)

// AvailabilityCache stores serialized availability responses per artist.
// Invalidate must make every previously stored entry of the artist unreachable.
//
// Get reports the artist's cache version seen by the read, and Set stores under
// that version. A view computed before an invalidation therefore lands under a
// version that is already dead.
type AvailabilityCache interface {
	Get(ctx context.Context, artistID uuid.UUID, key string) (value []byte, version int64, ok bool, err error)
	Set(ctx context.Context, artistID uuid.UUID, version int64, key string, value []byte) error
	Invalidate(ctx context.Context, artistID uuid.UUID) error
}

// NoopAvailabilityCache is used when no cache backend is configured.
type NoopAvailabilityCache struct{}

func (NoopAvailabilityCache) Get(context.Context, uuid.UUID, string) ([]byte, int64, bool, error) {
	return nil, 0, false, nil
}

func (NoopAvailabilityCache) Set(context.Context, uuid.UUID, int64, string, []byte) error { return nil }

func (NoopAvailabilityCache) Invalidate(context.Context, uuid.UUID) error { return nil }
