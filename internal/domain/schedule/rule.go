package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidWeekday   = errors.New("day of week must be between 1 (Monday) and 7 (Sunday)")
	ErrInvalidClockTime = errors.New("time must be formatted as HH:MM between 00:00 and 24:00")
	ErrInvalidRule      = errors.New("working hours must end after they start")
)

// Weekday follows ISO 8601: Monday is 1, Sunday is 7.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

func NewWeekday(v int) (Weekday, error) {
	if v < int(Monday) || v > int(Sunday) {
		return 0, ErrInvalidWeekday
	}
	return Weekday(v), nil
}

func WeekdayOf(t time.Time) Weekday {
	if t.Weekday() == time.Sunday {
		return Sunday
	}
	return Weekday(t.Weekday())
}

// ClockTime is a wall-clock time of day in minutes after midnight; 1440 is end of day.
type ClockTime int

const endOfDay ClockTime = 24 * 60

func NewClockTime(hour, minute int) (ClockTime, error) {
	c := ClockTime(hour*60 + minute)
	if hour < 0 || minute < 0 || minute > 59 || c > endOfDay {
		return 0, ErrInvalidClockTime
	}
	return c, nil
}

func ParseClockTime(s string) (ClockTime, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return 0, ErrInvalidClockTime
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, ErrInvalidClockTime
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, ErrInvalidClockTime
	}
	return NewClockTime(hour, minute)
}

func (c ClockTime) Minutes() int { return int(c) }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// On places the clock time on the calendar day of midnight, in midnight's location.
func (c ClockTime) On(midnight time.Time) time.Time {
	y, m, d := midnight.Date()
	return time.Date(y, m, d, int(c)/60, int(c)%60, 0, 0, midnight.Location())
}

// Rule is one recurring weekly open period of an artist.
type Rule struct {
	Weekday Weekday
	Start   ClockTime
	End     ClockTime
	Active  bool
}

func NewRule(weekday int, start, end string, active bool) (Rule, error) {
	wd, err := NewWeekday(weekday)
	if err != nil {
		return Rule{}, err
	}
	s, err := ParseClockTime(start)
	if err != nil {
		return Rule{}, err
	}
	e, err := ParseClockTime(end)
	if err != nil {
		return Rule{}, err
	}
	return NewRuleFromMinutes(wd, s, e, active)
}

func NewRuleFromMinutes(weekday Weekday, start, end ClockTime, active bool) (Rule, error) {
	if weekday < Monday || weekday > Sunday {
		return Rule{}, ErrInvalidWeekday
	}
	if start < 0 || end > endOfDay {
		return Rule{}, ErrInvalidClockTime
	}
	if end <= start {
		return Rule{}, ErrInvalidRule
	}
	return Rule{Weekday: weekday, Start: start, End: end, Active: active}, nil
}
