//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"inkslot/internal/domain/calendar"
	"inkslot/internal/domain/reservation"
	"inkslot/internal/infra"
	"inkslot/internal/infra/readstore"
	sqlc "inkslot/internal/infra/sqlc/generated"
	"inkslot/tests/common/builder"
	readstoremock "inkslot/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

func ts(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestReservationReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	start := time.Date(2030, time.March, 4, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockReservationReadQueries)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: reservation found",
			setupMock: func(m *readstoremock.MockReservationReadQueries) {
				m.EXPECT().GetReservationViewByID(ctx, gomock.Any(), id).Return(sqlc.GetReservationViewByIDRow{
					ID:              id,
					ArtistID:        uuid.New(),
					ServiceID:       uuid.New(),
					ServiceTitle:    "Fine line rose",
					ServiceKind:     "flash",
					ClientName:      "Alex Client",
					ClientEmail:     "client@example.com",
					StartTime:       ts(start),
					EndTime:         ts(start.Add(2 * time.Hour)),
					DurationMinutes: 120,
					PriceCents:      30000,
					DepositCents:    7500,
					Currency:        "usd",
					PaymentStatus:   "pending",
					BookingStatus:   "pending",
					PaymentIntentID: pgtype.Text{String: "pi_123", Valid: true},
					CreatedAt:       ts(start.Add(-time.Hour)),
				}, nil)
			},
		},
		{
			name: "error: reservation not found",
			setupMock: func(m *readstoremock.MockReservationReadQueries) {
				m.EXPECT().GetReservationViewByID(ctx, gomock.Any(), id).Return(sqlc.GetReservationViewByIDRow{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database failure",
			setupMock: func(m *readstoremock.MockReservationReadQueries) {
				m.EXPECT().GetReservationViewByID(ctx, gomock.Any(), id).Return(sqlc.GetReservationViewByIDRow{}, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
			store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			view, err := store.FindByID(ctx, id)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, view.ID)
			assert.Equal(t, int32(120), view.DurationMinutes)
			require.NotNil(t, view.PaymentIntentID)
			assert.Equal(t, "pi_123", *view.PaymentIntentID)
			assert.Nil(t, view.Note)
			assert.True(t, start.Equal(view.StartTime))
		})
	}
}

// =============================================================================
// FindEntityByID Tests
// =============================================================================

func TestReservationReadStore_FindEntityByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: row rebuilt into aggregate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.BookingStatus = reservation.BookingConfirmed
			b.PaymentStatus = reservation.PaymentDepositPaid
			b.PaymentIntentID = "pi_abc"
			b.Note = "left forearm"
		})
		mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
		mockQueries.EXPECT().GetReservationByID(ctx, gomock.Any(), b.ID).Return(b.BuildInfra(), nil)
		store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})

		res, err := store.FindEntityByID(ctx, b.ID)

		require.NoError(t, err)
		assert.Equal(t, b.ID, res.ID())
		assert.Equal(t, reservation.BookingConfirmed, res.BookingStatus())
		assert.Equal(t, reservation.PaymentDepositPaid, res.PaymentStatus())
		assert.Equal(t, "pi_abc", res.PaymentIntentID())
		assert.Equal(t, "left forearm", res.Note().String())
		assert.Equal(t, time.Hour, res.Duration())
		assert.False(t, res.IsPending())
	})

	t.Run("error: stored row with inverted range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		row := builder.NewReservationBuilder().BuildInfra()
		row.EndTime = row.StartTime
		mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
		mockQueries.EXPECT().GetReservationByID(ctx, gomock.Any(), row.ID).Return(row, nil)
		store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})

		_, err := store.FindEntityByID(ctx, row.ID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		id := uuid.New()
		mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
		mockQueries.EXPECT().GetReservationByID(ctx, gomock.Any(), id).Return(sqlc.Reservations{}, pgx.ErrNoRows)
		store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})

		_, err := store.FindEntityByID(ctx, id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

// =============================================================================
// FindActiveRanges / FindByArtist / FindStalePendingIDs Tests
// =============================================================================

func TestReservationReadStore_FindActiveRanges(t *testing.T) {
	ctx := context.Background()
	artistID := uuid.New()
	day := time.Date(2030, time.March, 4, 0, 0, 0, 0, time.UTC)
	window, err := calendar.NewInterval(day, day.Add(24*time.Hour))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
	mockQueries.EXPECT().ListActiveReservationsInRange(ctx, gomock.Any(), sqlc.ListActiveReservationsInRangeParams{
		ArtistID:   artistID,
		RangeStart: ts(window.Start()),
		RangeEnd:   ts(window.End()),
	}).Return([]sqlc.ListActiveReservationsInRangeRow{
		{ID: uuid.New(), StartTime: ts(day.Add(10 * time.Hour)), EndTime: ts(day.Add(11 * time.Hour)), BookingStatus: "pending"},
		{ID: uuid.New(), StartTime: ts(day.Add(14 * time.Hour)), EndTime: ts(day.Add(16 * time.Hour)), BookingStatus: "confirmed"},
	}, nil)
	store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})

	ranges, err := store.FindActiveRanges(ctx, artistID, window)

	require.NoError(t, err)
	require.Len(t, ranges, 2)
	assert.True(t, day.Add(10*time.Hour).Equal(ranges[0].Start()))
	assert.Equal(t, 2*time.Hour, ranges[1].Duration())
}

func TestReservationReadStore_FindByArtist(t *testing.T) {
	ctx := context.Background()
	artistID := uuid.New()
	from := time.Date(2030, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	t.Run("success: rows mapped in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		first, second := uuid.New(), uuid.New()
		mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
		mockQueries.EXPECT().ListReservationsByArtist(ctx, gomock.Any(), sqlc.ListReservationsByArtistParams{
			ArtistID:   artistID,
			RangeStart: ts(from),
			RangeEnd:   ts(to),
		}).Return([]sqlc.ListReservationsByArtistRow{
			{ID: first, ClientName: "A", StartTime: ts(from.Add(10 * time.Hour)), EndTime: ts(from.Add(11 * time.Hour)), BookingStatus: "confirmed"},
			{ID: second, ClientName: "B", StartTime: ts(from.Add(34 * time.Hour)), EndTime: ts(from.Add(35 * time.Hour)), BookingStatus: "pending"},
		}, nil)
		store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})

		items, err := store.FindByArtist(ctx, artistID, from, to)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, first, items[0].ID)
		assert.Equal(t, "pending", items[1].BookingStatus)
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
		mockQueries.EXPECT().ListReservationsByArtist(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)
		store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})

		_, err := store.FindByArtist(ctx, artistID, from, to)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestReservationReadStore_FindStalePendingIDs(t *testing.T) {
	ctx := context.Background()
	cutoff := time.Date(2030, time.March, 1, 9, 30, 0, 0, time.UTC)
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
	mockQueries.EXPECT().ListStalePendingReservationIDs(ctx, gomock.Any(), sqlc.ListStalePendingReservationIDsParams{
		CreatedBefore: ts(cutoff),
		BatchSize:     100,
	}).Return(ids, nil)
	store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})

	got, err := store.FindStalePendingIDs(ctx, cutoff, 100)

	require.NoError(t, err)
	assert.Equal(t, ids, got)
}

// =============================================================================
// Test Helpers
// =============================================================================

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
