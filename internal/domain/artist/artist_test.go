//go:build unit

package artist_test

import (
	"testing"
	"time"

	"inkslot/internal/domain/artist"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validArtistParams() artist.Params {
	return artist.Params{
		ID:               uuid.New(),
		DisplayName:      "  Mika  ",
		TimeZone:         "Asia/Tokyo",
		MinLeadTimeHours: 24,
		PaymentAccountID: "acct_123",
		PaymentsEnabled:  true,
	}
}

func TestNewArtist(t *testing.T) {
	t.Run("正常系", func(t *testing.T) {
		a, err := artist.New(validArtistParams())
		require.NoError(t, err)
		assert.Equal(t, "Mika", a.DisplayName())
		assert.Equal(t, "Asia/Tokyo", a.Location().String())
		assert.Equal(t, artist.SlotSourceNative, a.SlotSource())
		assert.Equal(t, 24*time.Hour, a.LeadTime())
		assert.True(t, a.CanCollectDeposits())
	})

	testCases := []struct {
		name   string
		mutate func(*artist.Params)
		errIs  error
	}{
		{name: "empty display name", mutate: func(p *artist.Params) { p.DisplayName = " " }, errIs: artist.ErrEmptyDisplayName},
		{name: "negative lead time", mutate: func(p *artist.Params) { p.MinLeadTimeHours = -1 }, errIs: artist.ErrNegativeLeadTime},
		{name: "unknown time zone", mutate: func(p *artist.Params) { p.TimeZone = "Mars/Olympus" }, errIs: artist.ErrInvalidTimeZone},
		{name: "unknown slot source", mutate: func(p *artist.Params) { p.SlotSource = "ical" }, errIs: artist.ErrInvalidSlotSource},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := validArtistParams()
			tc.mutate(&p)
			_, err := artist.New(p)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}

	t.Run("deposits need an enabled account", func(t *testing.T) {
		p := validArtistParams()
		p.PaymentsEnabled = false
		a, err := artist.New(p)
		require.NoError(t, err)
		assert.False(t, a.CanCollectDeposits())

		p = validArtistParams()
		p.PaymentAccountID = ""
		a, err = artist.New(p)
		require.NoError(t, err)
		assert.False(t, a.CanCollectDeposits())
	})
}

func TestOffering_SlotStep(t *testing.T) {
	fortyFive := 45
	testCases := []struct {
		name string
		kind string
		step *int
		want time.Duration
	}{
		{name: "flash steps by its duration", kind: "flash", want: 90 * time.Minute},
		{name: "service defaults to 30 minutes", kind: "service", want: 30 * time.Minute},
		{name: "explicit step wins", kind: "flash", step: &fortyFive, want: 45 * time.Minute},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o, err := artist.NewOffering(artist.OfferingParams{
				ID:              uuid.New(),
				ArtistID:        uuid.New(),
				Kind:            tc.kind,
				DurationMinutes: 90,
				SlotStepMinutes: tc.step,
				PriceCents:      20000,
				DepositCents:    5000,
				Currency:        "USD",
				Active:          true,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.want, o.SlotStep())
		})
	}
}

func TestOffering_DurationFor(t *testing.T) {
	requested := 2 * time.Hour

	flash, err := artist.NewOffering(artist.OfferingParams{Kind: "flash", DurationMinutes: 60, Active: true})
	require.NoError(t, err)
	assert.Equal(t, time.Hour, flash.DurationFor(&requested))

	service, err := artist.NewOffering(artist.OfferingParams{Kind: "service", DurationMinutes: 60, Active: true})
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, service.DurationFor(&requested))
	assert.Equal(t, time.Hour, service.DurationFor(nil))
}

func TestNewOffering_Validation(t *testing.T) {
	zero := 0
	testCases := []struct {
		name  string
		p     artist.OfferingParams
		errIs error
	}{
		{name: "unknown kind", p: artist.OfferingParams{Kind: "workshop", DurationMinutes: 60}, errIs: artist.ErrInvalidOfferingKind},
		{name: "zero duration", p: artist.OfferingParams{Kind: "service"}, errIs: artist.ErrInvalidDuration},
		{name: "zero step", p: artist.OfferingParams{Kind: "service", DurationMinutes: 60, SlotStepMinutes: &zero}, errIs: artist.ErrInvalidSlotStep},
		{name: "negative price", p: artist.OfferingParams{Kind: "service", DurationMinutes: 60, PriceCents: -1}, errIs: artist.ErrNegativeAmount},
		{name: "deposit above price", p: artist.OfferingParams{Kind: "service", DurationMinutes: 60, PriceCents: 100, DepositCents: 200}, errIs: artist.ErrDepositExceedsPrice},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := artist.NewOffering(tc.p)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}

	t.Run("sold out is not offered", func(t *testing.T) {
		o, err := artist.NewOffering(artist.OfferingParams{Kind: "flash", DurationMinutes: 60, Active: true, SoldOut: true})
		require.NoError(t, err)
		assert.False(t, o.IsOffered())
	})
}
