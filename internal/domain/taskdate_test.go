package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTaskDate_DateOnlyIsUTCMidnight(t *testing.T) {
	got, err := NormalizeTaskDate("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01T00:00:00.000Z", got)
}

func TestNormalizeTaskDate_TimestampConvertedToUTC(t *testing.T) {
	got, err := NormalizeTaskDate("2024-05-01T10:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01T08:30:00.000Z", got)

	got, err = NormalizeTaskDate("2024-05-01T08:30:00.123456Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01T08:30:00.123Z", got)
}

func TestNormalizeTaskDate_Rejects(t *testing.T) {
	for _, in := range []string{"", "   ", "05/01/2024", "2024-13-01", "tomorrow"} {
		_, err := NormalizeTaskDate(in)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", in)
	}
}

func TestParseTaskDate(t *testing.T) {
	ts, ok := ParseTaskDate("2024-05-01T00:00:00.000Z")
	require.True(t, ok)
	assert.Equal(t, 2024, ts.Year())

	_, ok = ParseTaskDate("not a date")
	assert.False(t, ok)
}

func TestCoalesceStr(t *testing.T) {
	assert.Equal(t, "b", CoalesceStr("", "b", "c"))
	assert.Equal(t, "", CoalesceStr("", ""))
}
