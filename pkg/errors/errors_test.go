package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("radius", "must be between 1 and 50000 meters", 70000)

	assert.True(t, Is(err, ErrInvalidArgument))
	assert.Contains(t, err.Error(), "radius")
	assert.Contains(t, err.Error(), "70000")

	var verr *ValidationError
	require.True(t, As(err, &verr))
	assert.Equal(t, "radius", verr.Field)

	t.Run("nil value omitted from message", func(t *testing.T) {
		err := NewValidationError("area", "is required", nil)
		assert.NotContains(t, err.Error(), "value:")
	})
}

func TestUpstreamError(t *testing.T) {
	cause := fmt.Errorf("maps: OVER_QUERY_LIMIT")
	err := NewUpstreamError("places text search", cause)

	assert.True(t, Is(err, ErrUpstream))
	assert.True(t, Is(err, cause), "wrapped cause stays reachable")
	assert.Contains(t, err.Error(), "OVER_QUERY_LIMIT", "upstream message survives verbatim")
	assert.False(t, Is(err, ErrInvalidArgument))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))

	err := Wrap(ErrNotFound, "geocode")
	assert.True(t, Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "geocode")

	err = Wrapf(ErrNotFound, "no route from %q", "A")
	assert.True(t, Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), `"A"`)
}
