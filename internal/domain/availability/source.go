package availability

import (
	"context"
	"slices"
	"time"

	"inkslot/internal/domain/calendar"
	"inkslot/internal/domain/schedule"
	"inkslot/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

// Source produces candidate slots for a request. Implementations may ignore
// req.Conflicts; Compute applies the conflict index to every source alike.
type Source interface {
	Name() string
	Slots(ctx context.Context, req Request) ([]Slot, error)
}

// WorkingHoursSource computes slots from the artist's own weekly rules.
type WorkingHoursSource struct {
	schedule *schedule.WeeklySchedule
}

func NewWorkingHoursSource(ws *schedule.WeeklySchedule) *WorkingHoursSource {
	return &WorkingHoursSource{schedule: ws}
}

func (s *WorkingHoursSource) Name() string { return "native" }

func (s *WorkingHoursSource) Slots(_ context.Context, req Request) ([]Slot, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	// Resolve whole days so the step grid stays anchored at opening time even
	// when the window starts mid-day.
	local := req.Window.Start().In(s.schedule.Location())
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.schedule.Location())
	working := s.schedule.Intervals(dayStart, req.Window.End())
	return Generate(working, req), nil
}

// EmbedProvider is the external scheduling widget. It knows nothing about
// reservations made through this system.
type EmbedProvider interface {
	AvailableSlots(ctx context.Context, username, eventType string, date time.Time) ([]calendar.Interval, error)
}

// OfferedSlots is what the widget returned for one day. It bounds bookings
// for artists whose opening times live in the widget.
type OfferedSlots []calendar.Interval

// Covers reports whether candidate lies inside a single offered interval.
func (o OfferedSlots) Covers(candidate calendar.Interval) bool {
	for _, iv := range o {
		if iv.Contains(candidate) {
			return true
		}
	}
	return false
}

// LocalDay is midnight of t's calendar day in loc, the date the widget is
// asked about.
func LocalDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

const embedFetchConcurrency = 4

// EmbedSource asks the scheduling widget for each local day in the window.
type EmbedSource struct {
	provider  EmbedProvider
	username  string
	eventType string
	loc       *time.Location
}

func NewEmbedSource(provider EmbedProvider, username, eventType string, loc *time.Location) *EmbedSource {
	if loc == nil {
		loc = time.UTC
	}
	return &EmbedSource{provider: provider, username: username, eventType: eventType, loc: loc}
}

func (s *EmbedSource) Name() string { return "embed" }

func (s *EmbedSource) Slots(ctx context.Context, req Request) ([]Slot, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var days []time.Time
	for day := LocalDay(req.Window.Start(), s.loc); day.Before(req.Window.End()); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}

	perDay := make([][]calendar.Interval, len(days))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(embedFetchConcurrency)
	for i, day := range days {
		g.Go(func() error {
			got, err := s.provider.AvailableSlots(gctx, s.username, s.eventType, day)
			if err != nil {
				return errs.Wrapf(err, "embed slots for %s", day.Format(time.DateOnly))
			}
			perDay[i] = got
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Slot
	for _, got := range perDay {
		for _, iv := range got {
			out = append(out, Slot{Start: iv.Start(), End: iv.End()})
		}
	}
	return out, nil
}

// Compute runs a source and filters its output through the conflict index,
// the request window and the lead time. The result is sorted and free of
// duplicates.
func Compute(ctx context.Context, src Source, req Request) ([]Slot, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	candidates, err := src.Slots(ctx, req)
	if err != nil {
		return nil, err
	}

	out := make([]Slot, 0, len(candidates))
	for _, s := range candidates {
		iv, err := calendar.NewInterval(s.Start, s.End)
		if err != nil {
			continue
		}
		if !req.Window.IsZero() && !req.Window.Contains(iv) {
			continue
		}
		if !req.admits(s.Start) || req.Conflicts.IsBlocked(iv) {
			continue
		}
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b Slot) int {
		if c := a.Start.Compare(b.Start); c != 0 {
			return c
		}
		return a.End.Compare(b.End)
	})
	return slices.CompactFunc(out, func(a, b Slot) bool {
		return a.Start.Equal(b.Start) && a.End.Equal(b.End)
	}), nil
}
