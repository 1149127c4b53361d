package request

import (
	"inkslot/internal/pkg/patch"
	"inkslot/internal/usecase/commands"
)

type WorkingHourRequest struct {
	DayOfWeek int    `json:"dayOfWeek" binding:"min=1,max=7"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	// IsActive defaults to true when omitted.
	IsActive *bool `json:"isActive,omitempty"`
}

type ReplaceWorkingHoursRequest struct {
	Hours []WorkingHourRequest `json:"hours" binding:"max=50,dive"`
}

func (r ReplaceWorkingHoursRequest) ToInput() []commands.WorkingHoursInput {
	out := make([]commands.WorkingHoursInput, 0, len(r.Hours))
	for _, h := range r.Hours {
		out = append(out, commands.WorkingHoursInput{
			DayOfWeek: h.DayOfWeek,
			StartTime: h.StartTime,
			EndTime:   h.EndTime,
			Active:    patch.Coalesce(h.IsActive, true),
		})
	}
	return out
}
