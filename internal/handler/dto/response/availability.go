package response

import (
	"time"

	"inkslot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	IsoStart  time.Time `json:"isoStart"`
	Available bool      `json:"available"`
}

type AvailabilityResponse struct {
	ArtistID        uuid.UUID      `json:"artistId"`
	TimeZone        string         `json:"timeZone"`
	Source          string         `json:"source"`
	From            time.Time      `json:"from"`
	To              time.Time      `json:"to"`
	DurationMinutes int            `json:"durationMinutes"`
	StepMinutes     int            `json:"stepMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	out := &AvailabilityResponse{}
	_ = copier.Copy(out, v)
	if out.Slots == nil {
		out.Slots = []SlotResponse{}
	}
	return out
}
