// Package calendar models half-open time ranges [start, end) and the set
// operations the availability engine needs on them.
package calendar

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

var ErrInvalidInterval = errors.New("interval start must be before end")

// Interval is an immutable half-open range [start, end).
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{start: start, end: end}, nil
}

// NewIntervalFor builds [start, start+d).
func NewIntervalFor(start time.Time, d time.Duration) (Interval, error) {
	return NewInterval(start, start.Add(d))
}

func (i Interval) Start() time.Time        { return i.start }
func (i Interval) End() time.Time          { return i.end }
func (i Interval) Duration() time.Duration { return i.end.Sub(i.start) }
func (i Interval) IsZero() bool            { return i.start.IsZero() && i.end.IsZero() }

// Overlaps uses half-open semantics: touching endpoints do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return Overlaps(i, o)
}

// Contains reports whether o lies entirely inside i.
func (i Interval) Contains(o Interval) bool {
	return !o.start.Before(i.start) && !o.end.After(i.end)
}

// ClipStart drops the part of i before t. ok is false when nothing remains.
func (i Interval) ClipStart(t time.Time) (Interval, bool) {
	if !t.After(i.start) {
		return i, true
	}
	if !t.Before(i.end) {
		return Interval{}, false
	}
	return Interval{start: t, end: i.end}, true
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s,%s)", i.start.Format(time.RFC3339), i.end.Format(time.RFC3339))
}

func Overlaps(a, b Interval) bool {
	return a.start.Before(b.end) && b.start.Before(a.end)
}

// Merge sorts intervals and coalesces the ones that overlap or touch.
func Merge(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}
	sorted := slices.Clone(intervals)
	slices.SortFunc(sorted, func(a, b Interval) int {
		if c := a.start.Compare(b.start); c != 0 {
			return c
		}
		return a.end.Compare(b.end)
	})

	merged := []Interval{sorted[0]}
	for _, next := range sorted[1:] {
		last := &merged[len(merged)-1]
		if !next.start.After(last.end) {
			if next.end.After(last.end) {
				last.end = next.end
			}
			continue
		}
		merged = append(merged, next)
	}
	return merged
}

// Subtract returns the free sub-intervals of universe once every blocked range
// is removed. blocked may be unsorted and self-overlapping.
func Subtract(universe Interval, blocked []Interval) []Interval {
	var free []Interval
	cursor := universe.start
	for _, b := range Merge(blocked) {
		if !b.end.After(cursor) {
			continue
		}
		if !b.start.Before(universe.end) {
			break
		}
		if b.start.After(cursor) {
			free = append(free, Interval{start: cursor, end: b.start})
		}
		cursor = b.end
		if !cursor.Before(universe.end) {
			return free
		}
	}
	if cursor.Before(universe.end) {
		free = append(free, Interval{start: cursor, end: universe.end})
	}
	return free
}
