package converter

import (
	"inkslot/internal/domain/artist"
	"inkslot/internal/domain/schedule"
	sqlc "inkslot/internal/infra/sqlc/generated"
	"inkslot/internal/pkg/errs"
	"inkslot/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func ArtistFromRow(row sqlc.Artists) (*artist.Artist, error) {
	a, err := artist.New(artist.Params{
		ID:               row.ID,
		DisplayName:      row.DisplayName,
		TimeZone:         row.Timezone,
		MinLeadTimeHours: int(row.MinLeadTimeHours),
		SlotSource:       row.SlotSource,
		Embed: artist.EmbedRef{
			Username:  pgconv.StringFromPgtype(row.EmbedUsername),
			EventType: pgconv.StringFromPgtype(row.EmbedEventType),
		},
		PaymentAccountID: pgconv.StringFromPgtype(row.StripeAccountID),
		PaymentsEnabled:  row.PaymentsEnabled,
	})
	if err != nil {
		return nil, errs.Wrapf(err, "artist %s", row.ID)
	}
	return a, nil
}

func OfferingFromRow(row sqlc.Services) (*artist.Offering, error) {
	var step *int
	if row.SlotStepMinutes.Valid {
		v := int(row.SlotStepMinutes.Int32)
		step = &v
	}
	o, err := artist.NewOffering(artist.OfferingParams{
		ID:              row.ID,
		ArtistID:        row.ArtistID,
		Kind:            row.Kind,
		Title:           row.Title,
		DurationMinutes: int(row.DurationMinutes),
		SlotStepMinutes: step,
		PriceCents:      row.PriceCents,
		DepositCents:    row.DepositCents,
		Currency:        row.Currency,
		Active:          row.IsActive,
		SoldOut:         row.SoldOut,
	})
	if err != nil {
		return nil, errs.Wrapf(err, "service %s", row.ID)
	}
	return o, nil
}

func RuleFromRow(row sqlc.WorkingHours) (schedule.Rule, error) {
	return schedule.NewRuleFromMinutes(
		schedule.Weekday(row.DayOfWeek),
		schedule.ClockTime(pgconv.MinutesFromPgtime(row.StartTime)),
		schedule.ClockTime(pgconv.MinutesFromPgtime(row.EndTime)),
		row.IsActive,
	)
}

func RuleToInsertParams(artistID uuid.UUID, position int, r schedule.Rule) sqlc.InsertWorkingHourParams {
	return sqlc.InsertWorkingHourParams{
		ArtistID:  artistID,
		DayOfWeek: int16(r.Weekday),
		StartTime: pgconv.MinutesToPgtime(r.Start.Minutes()),
		EndTime:   pgconv.MinutesToPgtime(r.End.Minutes()),
		IsActive:  r.Active,
		Position:  int32(position),
	}
}
