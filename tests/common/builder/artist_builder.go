//go:build unit || e2e

package builder

import (
	"time"

	"inkslot/internal/domain/artist"
	sqlc "inkslot/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ArtistBuilder struct {
	ID               uuid.UUID
	DisplayName      string
	TimeZone         string
	MinLeadTimeHours int
	SlotSource       string
	EmbedUsername    string
	EmbedEventType   string
	PaymentAccountID string
	PaymentsEnabled  bool
}

func NewArtistBuilder() *ArtistBuilder {
	return &ArtistBuilder{
		ID:               uuid.New(),
		DisplayName:      "Test Artist",
		TimeZone:         "UTC",
		MinLeadTimeHours: 0,
		SlotSource:       string(artist.SlotSourceNative),
		PaymentAccountID: "acct_test123",
		PaymentsEnabled:  true,
	}
}

func (a *ArtistBuilder) With(mutate func(*ArtistBuilder)) *ArtistBuilder {
	mutate(a)
	return a
}

func (a *ArtistBuilder) BuildDomain() (*artist.Artist, error) {
	return artist.New(artist.Params{
		ID:               a.ID,
		DisplayName:      a.DisplayName,
		TimeZone:         a.TimeZone,
		MinLeadTimeHours: a.MinLeadTimeHours,
		SlotSource:       a.SlotSource,
		Embed:            artist.EmbedRef{Username: a.EmbedUsername, EventType: a.EmbedEventType},
		PaymentAccountID: a.PaymentAccountID,
		PaymentsEnabled:  a.PaymentsEnabled,
	})
}

func (a *ArtistBuilder) BuildInfra() sqlc.Artists {
	now := time.Now()
	return sqlc.Artists{
		ID:               a.ID,
		DisplayName:      a.DisplayName,
		Timezone:         a.TimeZone,
		MinLeadTimeHours: int32(a.MinLeadTimeHours),
		SlotSource:       a.SlotSource,
		EmbedUsername:    pgtype.Text{String: a.EmbedUsername, Valid: a.EmbedUsername != ""},
		EmbedEventType:   pgtype.Text{String: a.EmbedEventType, Valid: a.EmbedEventType != ""},
		StripeAccountID:  pgtype.Text{String: a.PaymentAccountID, Valid: a.PaymentAccountID != ""},
		PaymentsEnabled:  a.PaymentsEnabled,
		CreatedAt:        pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:        pgtype.Timestamptz{Time: now, Valid: true},
	}
}

type OfferingBuilder struct {
	ID              uuid.UUID
	ArtistID        uuid.UUID
	Kind            string
	Title           string
	DurationMinutes int
	SlotStepMinutes *int
	PriceCents      int64
	DepositCents    int64
	Currency        string
	Active          bool
	SoldOut         bool
}

func NewOfferingBuilder(artistID uuid.UUID) *OfferingBuilder {
	return &OfferingBuilder{
		ID:              uuid.New(),
		ArtistID:        artistID,
		Kind:            string(artist.KindService),
		Title:           "Custom piece",
		DurationMinutes: 60,
		PriceCents:      20000,
		DepositCents:    5000,
		Currency:        "usd",
		Active:          true,
	}
}

func (o *OfferingBuilder) With(mutate func(*OfferingBuilder)) *OfferingBuilder {
	mutate(o)
	return o
}

func (o *OfferingBuilder) BuildDomain() (*artist.Offering, error) {
	return artist.NewOffering(artist.OfferingParams{
		ID:              o.ID,
		ArtistID:        o.ArtistID,
		Kind:            o.Kind,
		Title:           o.Title,
		DurationMinutes: o.DurationMinutes,
		SlotStepMinutes: o.SlotStepMinutes,
		PriceCents:      o.PriceCents,
		DepositCents:    o.DepositCents,
		Currency:        o.Currency,
		Active:          o.Active,
		SoldOut:         o.SoldOut,
	})
}

func (o *OfferingBuilder) BuildInfra() sqlc.Services {
	now := time.Now()
	step := pgtype.Int4{}
	if o.SlotStepMinutes != nil {
		step = pgtype.Int4{Int32: int32(*o.SlotStepMinutes), Valid: true}
	}
	return sqlc.Services{
		ID:              o.ID,
		ArtistID:        o.ArtistID,
		Kind:            o.Kind,
		Title:           o.Title,
		DurationMinutes: int32(o.DurationMinutes),
		SlotStepMinutes: step,
		PriceCents:      o.PriceCents,
		DepositCents:    o.DepositCents,
		Currency:        o.Currency,
		IsActive:        o.Active,
		SoldOut:         o.SoldOut,
		CreatedAt:       pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: now, Valid: true},
	}
}
