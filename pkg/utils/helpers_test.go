package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetersPerSecondToKmh(t *testing.T) {
	assert.InDelta(t, 36.0, MetersPerSecondToKmh(10), 1e-9)
	assert.Equal(t, 12.0, RoundTo(MetersPerSecondToKmh(3.3), 0))
}

func TestParseNumber(t *testing.T) {
	v, err := ParseNumber(" 15.5 ")
	require.NoError(t, err)
	assert.Equal(t, 15.5, v)

	for _, bad := range []string{"", "abc", "NaN", "Inf", "-Inf"} {
		_, err := ParseNumber(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 1, ClampInt(-5, 1, 10))
	assert.Equal(t, 10, ClampInt(50, 1, 10))
	assert.Equal(t, 7, ClampInt(7, 1, 10))
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 3.14, RoundTo(3.14159, 2))
	assert.Equal(t, 15.0, RoundTo(14.5, 0))
}
