//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type ArtistFixture struct {
	ArtistID  uuid.UUID
	ServiceID uuid.UUID
	FlashID   uuid.UUID
}

// CreateBookableArtist inserts a UTC artist with payments enabled, a 60 minute
// service, a 120 minute flash design and Monday to Friday 09:00-18:00 hours.
func CreateBookableArtist(t *testing.T, db DBLike) ArtistFixture {
	t.Helper()
	ctx := context.Background()

	f := ArtistFixture{ArtistID: uuid.New(), ServiceID: uuid.New(), FlashID: uuid.New()}

	_, err := db.Exec(ctx, `INSERT INTO artists (id, display_name, timezone, min_lead_time_hours, slot_source, stripe_account_id, payments_enabled)
		VALUES ($1, 'E2E Artist', 'UTC', 0, 'native', 'acct_e2e', true)`, f.ArtistID)
	require.NoError(t, err)

	_, err = db.Exec(ctx, `INSERT INTO services (id, artist_id, kind, title, duration_minutes, price_cents, deposit_cents, currency)
		VALUES ($1, $3, 'service', 'Custom piece', 60, 20000, 5000, 'usd'),
		       ($2, $3, 'flash', 'Swallow flash', 120, 30000, 8000, 'usd')`, f.ServiceID, f.FlashID, f.ArtistID)
	require.NoError(t, err)

	for day := 1; day <= 5; day++ {
		_, err = db.Exec(ctx, `INSERT INTO working_hours (artist_id, day_of_week, start_time, end_time, is_active, position)
			VALUES ($1, $2, '09:00', '18:00', true, $3)`, f.ArtistID, day, day-1)
		require.NoError(t, err)
	}

	return f
}

func CountHoldingReservations(t *testing.T, db DBLike, artistID uuid.UUID) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(),
		`SELECT count(*) FROM reservations WHERE artist_id = $1 AND booking_status IN ('pending', 'confirmed')`,
		artistID).Scan(&n)
	require.NoError(t, err)
	return n
}

func ReservationStatus(t *testing.T, db DBLike, id uuid.UUID) string {
	t.Helper()
	var status string
	err := db.QueryRow(context.Background(), `SELECT booking_status FROM reservations WHERE id = $1`, id).Scan(&status)
	require.NoError(t, err)
	return status
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
