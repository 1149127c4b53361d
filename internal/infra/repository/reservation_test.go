//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"inkslot/internal/infra"
	"inkslot/internal/infra/repository"
	sqlc "inkslot/internal/infra/sqlc/generated"
	"inkslot/tests/common/builder"
	repositorymock "inkslot/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Reservation Tests
// =============================================================================

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2030, time.March, 1, 8, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockReservationWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: reservation inserted and stamped",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.CreateReservationRow, error) {
						return sqlc.CreateReservationRow{ID: arg.ID, CreatedAt: pgtype.Timestamptz{Time: createdAt, Valid: true}}, nil
					})
			},
		},
		{
			name: "error: overlapping reservation hits the exclusion constraint",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, tx sqlc.DBTX) {
				overlap := &pgconn.PgError{Code: "23P01", ConstraintName: "reservations_no_overlap", Message: "conflicting key value violates exclusion constraint"}
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(sqlc.CreateReservationRow{}, overlap)
			},
			expectedError: true,
			expectKind:    infra.KindConflict,
		},
		{
			name: "error: unknown service violates foreign key",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key constraint"}
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(sqlc.CreateReservationRow{}, fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(sqlc.CreateReservationRow{}, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
				b.CreatedAt = time.Time{}
			}).BuildDomain()

			tc.setupMock(mockQueries, mockDB)

			err := repo.Create(ctx, res)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.True(t, res.CreatedAt().IsZero())
				return
			}
			require.NoError(t, err)
			assert.True(t, createdAt.Equal(res.CreatedAt()))
		})
	}
}

func TestReservationRepository_CreateParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewReservationRepository(mockQueries, mockDB)

	b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.ClientPhone = "+1 555 0100"
		b.EndTime = b.StartTime.Add(90 * time.Minute)
	})
	res := b.BuildDomain()

	mockQueries.EXPECT().CreateReservation(gomock.Any(), mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.CreateReservationRow, error) {
			assert.Equal(t, b.ID, arg.ID)
			assert.Equal(t, b.ArtistID, arg.ArtistID)
			assert.Equal(t, int32(90), arg.DurationMinutes)
			assert.True(t, b.StartTime.Equal(arg.StartTime.Time))
			assert.True(t, b.EndTime.Equal(arg.EndTime.Time))
			assert.Equal(t, "pending", arg.BookingStatus)
			assert.Equal(t, "pending", arg.PaymentStatus)
			assert.Equal(t, pgtype.Text{String: "+1 555 0100", Valid: true}, arg.ClientPhone)
			assert.False(t, arg.Note.Valid)
			return sqlc.CreateReservationRow{ID: arg.ID, CreatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true}}, nil
		})

	require.NoError(t, repo.Create(context.Background(), res))
}

// =============================================================================
// Guarded Update Tests
// =============================================================================

func TestReservationRepository_GuardedUpdates(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	type op func(*repository.ReservationRepository) (bool, error)
	cancel := func(r *repository.ReservationRepository) (bool, error) { return r.CancelIfPending(ctx, id) }
	confirm := func(r *repository.ReservationRepository) (bool, error) { return r.ConfirmIfPending(ctx, id) }
	setIntent := func(r *repository.ReservationRepository) (bool, error) { return r.SetPaymentIntent(ctx, id, "pi_123") }

	testCases := []struct {
		name       string
		run        op
		setupMock  func(*repositorymock.MockReservationWriteQueries)
		expectOK   bool
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "cancel: pending row updated",
			run:  cancel,
			setupMock: func(m *repositorymock.MockReservationWriteQueries) {
				m.EXPECT().CancelPendingReservation(ctx, gomock.Any(), id).Return(int64(1), nil)
			},
			expectOK: true,
		},
		{
			name: "cancel: row no longer pending",
			run:  cancel,
			setupMock: func(m *repositorymock.MockReservationWriteQueries) {
				m.EXPECT().CancelPendingReservation(ctx, gomock.Any(), id).Return(int64(0), nil)
			},
		},
		{
			name: "cancel: database error",
			run:  cancel,
			setupMock: func(m *repositorymock.MockReservationWriteQueries) {
				m.EXPECT().CancelPendingReservation(ctx, gomock.Any(), id).Return(int64(0), errors.New("connection reset"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "confirm: pending row updated",
			run:  confirm,
			setupMock: func(m *repositorymock.MockReservationWriteQueries) {
				m.EXPECT().ConfirmPendingReservation(ctx, gomock.Any(), id).Return(int64(1), nil)
			},
			expectOK: true,
		},
		{
			name: "confirm: already cancelled",
			run:  confirm,
			setupMock: func(m *repositorymock.MockReservationWriteQueries) {
				m.EXPECT().ConfirmPendingReservation(ctx, gomock.Any(), id).Return(int64(0), nil)
			},
		},
		{
			name: "set intent: attached",
			run:  setIntent,
			setupMock: func(m *repositorymock.MockReservationWriteQueries) {
				m.EXPECT().SetReservationPaymentIntent(ctx, gomock.Any(), sqlc.SetReservationPaymentIntentParams{
					ID:              id,
					PaymentIntentID: pgtype.Text{String: "pi_123", Valid: true},
				}).Return(int64(1), nil)
			},
			expectOK: true,
		},
		{
			name: "set intent: no rows",
			run:  setIntent,
			setupMock: func(m *repositorymock.MockReservationWriteQueries) {
				m.EXPECT().SetReservationPaymentIntent(ctx, gomock.Any(), gomock.Any()).Return(int64(0), pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			repo := repository.NewReservationRepository(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			ok, err := tc.run(repo)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectOK, ok)
		})
	}
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
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
