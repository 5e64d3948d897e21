package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesKind(t *testing.T) {
	err := MalformedInput("week.txt:4", "expected %d fields, got %d", 3, 2)

	assert.True(t, errors.Is(err, ErrMalformedInput))
	assert.False(t, errors.Is(err, ErrInvalidConfiguration))
	assert.Equal(t, "malformed input: week.txt:4: expected 3 fields, got 2", err.Error())
}

func TestError_WrappedKeepsKind(t *testing.T) {
	wrapped := fmt.Errorf("failed to load week: %w", New(ErrOutOfRange, "", "week 4 of 4"))

	assert.True(t, errors.Is(wrapped, ErrOutOfRange))
	assert.Equal(t, ErrOutOfRange, KindOf(wrapped))
	assert.Contains(t, wrapped.Error(), "out of range: week 4 of 4")
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Nil(t, KindOf(errors.New("boom")))
}
