package availability

import (
	"errors"
	"time"

	"inkslot/internal/domain/calendar"
)

var (
	ErrInvalidDuration = errors.New("slot duration must be positive")
	ErrInvalidStep     = errors.New("slot step must be positive")
	ErrNegativeLead    = errors.New("lead time cannot be negative")
)

// Slot is a derived, bookable candidate. It is never persisted.
type Slot struct {
	Start time.Time
	End   time.Time
}

func (s Slot) Interval() calendar.Interval {
	i, _ := calendar.NewInterval(s.Start, s.End)
	return i
}

// Request carries everything a slot computation depends on. Now is explicit
// so computations are deterministic under a fixed clock.
type Request struct {
	Window    calendar.Interval
	Duration  time.Duration
	Step      time.Duration
	LeadTime  time.Duration
	Now       time.Time
	Conflicts *ConflictIndex
}

func (r Request) Validate() error {
	if r.Duration <= 0 {
		return ErrInvalidDuration
	}
	if r.Step <= 0 {
		return ErrInvalidStep
	}
	if r.LeadTime < 0 {
		return ErrNegativeLead
	}
	return nil
}

// Cutoff is the earliest instant a slot may start.
func (r Request) Cutoff() time.Time {
	return r.Now.Add(r.LeadTime)
}

// admits reports whether a slot starting at start satisfies the lead time and
// the strictly-in-the-future rule.
func (r Request) admits(start time.Time) bool {
	return start.After(r.Now) && !start.Before(r.Cutoff())
}
