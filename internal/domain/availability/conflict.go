// Package availability computes the open slots an artist can offer: working
// hours minus active reservations, sliced into bookable candidates.
package availability

import (
	"slices"
	"time"

	"inkslot/internal/domain/calendar"
)

// ConflictIndex is a read-only snapshot of the time an artist already has
// committed to pending or confirmed reservations. It is valid for one
// computation only and must not be cached across requests.
type ConflictIndex struct {
	blocked []calendar.Interval
}

// NewConflictIndex merges the booked ranges so lookups can binary search.
func NewConflictIndex(booked []calendar.Interval) *ConflictIndex {
	return &ConflictIndex{blocked: calendar.Merge(booked)}
}

// IsBlocked reports whether candidate overlaps any booked range.
// Touching endpoints do not count as overlap.
func (c *ConflictIndex) IsBlocked(candidate calendar.Interval) bool {
	if c == nil || len(c.blocked) == 0 {
		return false
	}
	// first merged range ending after the candidate starts
	i, _ := slices.BinarySearchFunc(c.blocked, candidate.Start(), func(b calendar.Interval, t time.Time) int {
		if b.End().After(t) {
			return 1
		}
		return -1
	})
	return i < len(c.blocked) && c.blocked[i].Overlaps(candidate)
}

// Within returns the booked ranges that overlap window, in ascending order.
func (c *ConflictIndex) Within(window calendar.Interval) []calendar.Interval {
	if c == nil {
		return nil
	}
	var out []calendar.Interval
	for _, b := range c.blocked {
		if !b.Start().Before(window.End()) {
			break
		}
		if b.Overlaps(window) {
			out = append(out, b)
		}
	}
	return out
}

func (c *ConflictIndex) Len() int {
	if c == nil {
		return 0
	}
	return len(c.blocked)
}
