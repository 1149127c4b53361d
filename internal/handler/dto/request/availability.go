package request

import (
	"strconv"
	"strings"
	"time"

	"inkslot/internal/pkg/errs"
	"inkslot/internal/usecase/queries"

	"github.com/google/uuid"
)

// AvailabilityQuery binds the availability query string. Times are RFC 3339.
type AvailabilityQuery struct {
	From            string `form:"from"`
	To              string `form:"to"`
	ServiceID       string `form:"serviceId"`
	DurationMinutes string `form:"durationMinutes"`
	StepMinutes     string `form:"stepMinutes"`
}

func (q AvailabilityQuery) ToInput(artistID uuid.UUID) (queries.AvailabilityInput, error) {
	in := queries.AvailabilityInput{ArtistID: artistID}
	var err error
	if in.From, err = parseOptionalTime("from", q.From); err != nil {
		return in, err
	}
	if in.To, err = parseOptionalTime("to", q.To); err != nil {
		return in, err
	}
	if s := strings.TrimSpace(q.ServiceID); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return in, errs.Wrap(err, "serviceId")
		}
		in.ServiceID = &id
	}
	if in.DurationMinutes, err = parseOptionalInt("durationMinutes", q.DurationMinutes); err != nil {
		return in, err
	}
	if in.StepMinutes, err = parseOptionalInt("stepMinutes", q.StepMinutes); err != nil {
		return in, err
	}
	return in, nil
}

// RangeQuery binds a from/to pair for dashboard listings.
type RangeQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}

func (q RangeQuery) Bounds() (from, to *time.Time, err error) {
	if from, err = parseOptionalTime("from", q.From); err != nil {
		return nil, nil, err
	}
	if to, err = parseOptionalTime("to", q.To); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func parseOptionalTime(field, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, errs.Wrap(err, field)
	}
	return &t, nil
}

func parseOptionalInt(field, raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errs.Wrap(err, field)
	}
	return &v, nil
}
