package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestampEmpty(t *testing.T) {
	got, err := ParseTimestamp("")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestParseTimestampRFC3339(t *testing.T) {
	got, err := ParseTimestamp("2024-06-15T10:30:00Z")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC), got.UTC())
}

func TestParseTimestampDateOnly(t *testing.T) {
	got, err := ParseTimestamp("2024-01-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.January, got.Month())
}

func TestParseTimestampInvalid(t *testing.T) {
	_, err := ParseTimestamp("yesterday")
	assert.ErrorIs(t, err, ErrInvalidTimestamp)
}
