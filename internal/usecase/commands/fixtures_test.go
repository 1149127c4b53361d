//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"inkslot/internal/domain/artist"
	"inkslot/internal/domain/calendar"
	"inkslot/internal/domain/reservation"
	"inkslot/internal/domain/schedule"
	"inkslot/internal/pkg/clock"
	"inkslot/tests/common/builder"
	"inkslot/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// 2026-03-02 is a Monday.
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

type recordingCache struct {
	mu          sync.Mutex
	invalidated []uuid.UUID
}

func (c *recordingCache) Get(context.Context, uuid.UUID, string) ([]byte, int64, bool, error) {
	return nil, 0, false, nil
}

func (c *recordingCache) Set(context.Context, uuid.UUID, int64, string, []byte) error { return nil }

func (c *recordingCache) Invalidate(_ context.Context, artistID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, artistID)
	return nil
}

func (c *recordingCache) Invalidations() []uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]uuid.UUID(nil), c.invalidated...)
}

type embedQuery struct {
	username  string
	eventType string
	date      time.Time
}

// fakeEmbed returns the same slots for any day and records what it was asked.
type fakeEmbed struct {
	mu    sync.Mutex
	slots []calendar.Interval
	err   error
	asked []embedQuery
}

func (e *fakeEmbed) AvailableSlots(_ context.Context, username, eventType string, date time.Time) ([]calendar.Interval, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.asked = append(e.asked, embedQuery{username: username, eventType: eventType, date: date})
	if e.err != nil {
		return nil, e.err
	}
	return e.slots, nil
}

func (e *fakeEmbed) Asked() []embedQuery {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]embedQuery(nil), e.asked...)
}

type fixture struct {
	store    *memstore.Store
	cache    *recordingCache
	embed    *fakeEmbed
	clock    *clock.MockClock
	artist   *artist.Artist
	offering *artist.Offering
	flash    *artist.Offering
}

// newFixture seeds an artist open Monday 09:00-18:00 UTC with a 60 minute
// service and a 120 minute flash design. The clock reads Monday 06:00.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	a, err := builder.NewArtistBuilder().BuildDomain()
	require.NoError(t, err)
	o, err := builder.NewOfferingBuilder(a.ID()).BuildDomain()
	require.NoError(t, err)
	f, err := builder.NewOfferingBuilder(a.ID()).With(func(b *builder.OfferingBuilder) {
		b.Kind = string(artist.KindFlash)
		b.Title = "Swallow flash"
		b.DurationMinutes = 120
	}).BuildDomain()
	require.NoError(t, err)
	rule, err := schedule.NewRule(1, "09:00", "18:00", true)
	require.NoError(t, err)

	store := memstore.New()
	store.PutArtist(a)
	store.PutOffering(o)
	store.PutOffering(f)
	store.PutRules(a.ID(), []schedule.Rule{rule})

	return &fixture{
		store:    store,
		cache:    &recordingCache{},
		embed:    &fakeEmbed{},
		clock:    clock.NewMockClock(monday.Add(6 * time.Hour)),
		artist:   a,
		offering: o,
		flash:    f,
	}
}

// useEmbed switches the fixture artist to widget-provided slots in tz.
func (f *fixture) useEmbed(t *testing.T, tz string) {
	t.Helper()
	a, err := builder.NewArtistBuilder().With(func(b *builder.ArtistBuilder) {
		b.ID = f.artist.ID()
		b.TimeZone = tz
		b.SlotSource = string(artist.SlotSourceEmbed)
		b.EmbedUsername = "inkbyalex"
		b.EmbedEventType = "session-60"
	}).BuildDomain()
	require.NoError(t, err)
	f.store.PutArtist(a)
	f.artist = a
}

func (f *fixture) factory() *reservation.Factory {
	return reservation.NewFactory(f.clock, reservation.NewProRataCalculator())
}

// pending stores a committed pending reservation for the fixture artist.
func (f *fixture) pending(mutate func(*builder.ReservationBuilder)) *reservation.Reservation {
	b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.ArtistID = f.artist.ID()
		b.ServiceID = f.offering.ID()
		b.StartTime = monday.Add(10 * time.Hour)
		b.EndTime = monday.Add(11 * time.Hour)
		b.CreatedAt = monday.Add(5 * time.Hour)
	})
	if mutate != nil {
		b.With(mutate)
	}
	res := b.BuildDomain()
	f.store.PutReservation(res)
	return res
}

func (f *fixture) status(t *testing.T, id uuid.UUID) reservation.BookingStatus {
	t.Helper()
	res, ok := f.store.Reservation(id)
	require.True(t, ok, "reservation %s not stored", id)
	return res.BookingStatus()
}
