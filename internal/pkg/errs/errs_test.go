//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"inkslot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("slot taken")

	t.Run("marked error matches sentinel and keeps cause", func(t *testing.T) {
		cause := errors.New("exclusion violation")
		marked := errs.Mark(cause, sentinel)

		assert.True(t, errs.Is(marked, sentinel))
		assert.True(t, errs.Is(marked, cause))
		assert.Contains(t, marked.Error(), "exclusion violation")
	})

	t.Run("nil cause yields the sentinel", func(t *testing.T) {
		assert.Same(t, sentinel, errs.Mark(nil, sentinel))
	})
}

func TestWrap(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))

	cause := errors.New("boom")
	wrapped := errs.Wrapf(cause, "load artist %d", 7)
	require.Error(t, wrapped)
	assert.Equal(t, "load artist 7: boom", wrapped.Error())
	assert.True(t, errs.Is(wrapped, cause))
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 3))

	lines := errs.ExtractStackLines(errs.New("with stack"), 2)
	assert.Len(t, lines, 2)
	assert.Equal(t, "with stack", lines[0])
}
