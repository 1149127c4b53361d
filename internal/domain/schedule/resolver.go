// Package schedule expands an artist's recurring weekly working hours into
// concrete calendar intervals.
package schedule

import (
	"iter"
	"time"

	"inkslot/internal/domain/calendar"
)

// WeeklySchedule is a read-only view over an artist's rules in the artist's
// time zone. Only the first active rule per weekday is honored.
type WeeklySchedule struct {
	loc   *time.Location
	byDay map[Weekday]Rule
}

func NewWeeklySchedule(rules []Rule, loc *time.Location) *WeeklySchedule {
	if loc == nil {
		loc = time.UTC
	}
	byDay := make(map[Weekday]Rule, 7)
	for _, r := range rules {
		if !r.Active {
			continue
		}
		if _, seen := byDay[r.Weekday]; seen {
			continue
		}
		byDay[r.Weekday] = r
	}
	return &WeeklySchedule{loc: loc, byDay: byDay}
}

func (w *WeeklySchedule) Location() *time.Location { return w.loc }

func (w *WeeklySchedule) IsClosed() bool { return len(w.byDay) == 0 }

func (w *WeeklySchedule) RuleFor(day Weekday) (Rule, bool) {
	r, ok := w.byDay[day]
	return r, ok
}

// Resolve yields one interval per open day inside [rangeStart, rangeEnd),
// clipped to the range. Days whose hours are already over yield nothing.
// The sequence is recomputed on every iteration.
func (w *WeeklySchedule) Resolve(rangeStart, rangeEnd time.Time) iter.Seq[calendar.Interval] {
	return func(yield func(calendar.Interval) bool) {
		if !rangeStart.Before(rangeEnd) || w.IsClosed() {
			return
		}
		local := rangeStart.In(w.loc)
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, w.loc)
		for ; day.Before(rangeEnd); day = day.AddDate(0, 0, 1) {
			rule, ok := w.byDay[WeekdayOf(day)]
			if !ok {
				continue
			}
			start, end := rule.Start.On(day), rule.End.On(day)
			if start.Before(rangeStart) {
				start = rangeStart
			}
			if end.After(rangeEnd) {
				end = rangeEnd
			}
			open, err := calendar.NewInterval(start, end)
			if err != nil {
				continue
			}
			if !yield(open) {
				return
			}
		}
	}
}

// Intervals collects Resolve into a slice.
func (w *WeeklySchedule) Intervals(rangeStart, rangeEnd time.Time) []calendar.Interval {
	var out []calendar.Interval
	for open := range w.Resolve(rangeStart, rangeEnd) {
		out = append(out, open)
	}
	return out
}

// Covers reports whether candidate lies inside a single working interval.
func (w *WeeklySchedule) Covers(candidate calendar.Interval) bool {
	from := candidate.Start().Add(-24 * time.Hour)
	to := candidate.End().Add(24 * time.Hour)
	for open := range w.Resolve(from, to) {
		if open.Contains(candidate) {
			return true
		}
		if open.Start().After(candidate.Start()) {
			return false
		}
	}
	return false
}
