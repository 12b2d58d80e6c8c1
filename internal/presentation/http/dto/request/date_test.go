package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	blank := "  "
	got, err := ParseDate(&blank)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseDate(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	day := "2024-01-15"
	got, err = ParseDate(&day)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), *got)

	stamp := "2024-01-15T10:30:00Z"
	got, err = ParseDate(&stamp)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour())

	bad := "15/01/2024"
	_, err = ParseDate(&bad)
	assert.Error(t, err)
}
