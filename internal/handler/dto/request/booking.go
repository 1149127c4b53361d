package request

import (
	"strings"
	"time"

	"inkslot/internal/pkg/patch"
	"inkslot/internal/usecase/commands"

	"github.com/google/uuid"
)

type ClientContactRequest struct {
	Name  string  `json:"name" binding:"required,max=200"`
	Email string  `json:"email" binding:"required,email,max=320"`
	Phone *string `json:"phone,omitempty" binding:"omitempty,max=40"`
}

type CreateBookingRequest struct {
	ServiceID       uuid.UUID            `json:"serviceId" binding:"required"`
	StartTime       time.Time            `json:"startTime" binding:"required"`
	DurationMinutes *int                 `json:"durationMinutes,omitempty"`
	Client          ClientContactRequest `json:"client" binding:"required"`
	Note            *string              `json:"note,omitempty" binding:"omitempty,max=1000"`
}

func (r CreateBookingRequest) ToInput(artistID uuid.UUID) commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ArtistID:        artistID,
		ServiceID:       r.ServiceID,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
		ClientName:      strings.TrimSpace(r.Client.Name),
		ClientEmail:     strings.TrimSpace(r.Client.Email),
		ClientPhone:     strings.TrimSpace(patch.Coalesce(r.Client.Phone, "")),
		Note:            strings.TrimSpace(patch.Coalesce(r.Note, "")),
	}
}
