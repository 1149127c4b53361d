package availability

import (
	"iter"
	"slices"
	"time"

	"inkslot/internal/domain/calendar"
)

// Stream slices working intervals into slots. Booked ranges are subtracted
// before stepping, so no emitted slot can overlap a reservation. Working
// intervals are expected in ascending order; slots come out the same way.
func Stream(working []calendar.Interval, req Request) iter.Seq[Slot] {
	return func(yield func(Slot) bool) {
		if req.Validate() != nil {
			return
		}
		for _, w := range working {
			open, ok := clipToRequest(w, req)
			if !ok {
				continue
			}
			for _, free := range calendar.Subtract(open, req.Conflicts.Within(open)) {
				for start := free.Start(); !start.Add(req.Duration).After(free.End()); start = start.Add(req.Step) {
					if !req.admits(start) {
						continue
					}
					if !yield(Slot{Start: start, End: start.Add(req.Duration)}) {
						return
					}
				}
			}
		}
	}
}

// Generate collects Stream.
func Generate(working []calendar.Interval, req Request) []Slot {
	return slices.Collect(Stream(working, req))
}

// clipToRequest trims a working interval to the request window and the lead
// time cutoff. The cutoff is rounded up onto the step grid anchored at the
// start of the working interval so slots keep their usual alignment.
func clipToRequest(w calendar.Interval, req Request) (calendar.Interval, bool) {
	floor := req.Cutoff()
	if !req.Window.IsZero() && req.Window.Start().After(floor) {
		floor = req.Window.Start()
	}
	if floor.After(w.Start()) {
		floor = alignUp(w.Start(), floor, req.Step)
	}
	open, ok := w.ClipStart(floor)
	if !ok {
		return calendar.Interval{}, false
	}
	if !req.Window.IsZero() && open.End().After(req.Window.End()) {
		clipped, err := calendar.NewInterval(open.Start(), req.Window.End())
		if err != nil {
			return calendar.Interval{}, false
		}
		open = clipped
	}
	return open, true
}

func alignUp(anchor, t time.Time, step time.Duration) time.Time {
	offset := t.Sub(anchor)
	n := offset / step
	if offset%step != 0 {
		n++
	}
	return anchor.Add(n * step)
}
