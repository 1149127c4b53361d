//go:build unit

package pgconv_test

import (
	"testing"

	"inkslot/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestMinutesPgtime(t *testing.T) {
	for _, minutes := range []int{0, 9 * 60, 17*60 + 30, 24 * 60} {
		assert.Equal(t, minutes, pgconv.MinutesFromPgtime(pgconv.MinutesToPgtime(minutes)))
	}
	assert.Equal(t, 0, pgconv.MinutesFromPgtime(pgtype.Time{}))
}

func TestNullableString(t *testing.T) {
	assert.False(t, pgconv.NullableString("").Valid)
	assert.Equal(t, "x", pgconv.StringFromPgtype(pgconv.NullableString("x")))
	assert.Nil(t, pgconv.StringPtrFromPgtype(pgtype.Text{}))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(assert.AnError))
}
