package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowUTC(t *testing.T) {
	assert.Equal(t, time.UTC, NowUTC().Location())
}

func TestConvertToLocalAndBack(t *testing.T) {
	utc := time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)

	local, err := ConvertToLocal(utc, "America/Bogota")
	require.NoError(t, err)
	assert.Equal(t, 10, local.Hour())

	back, err := ConvertToUTC(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC), "America/Bogota")
	require.NoError(t, err)
	assert.True(t, back.Equal(utc))
}

func TestConvertToLocal_UnknownZone(t *testing.T) {
	_, err := ConvertToLocal(time.Now(), "Mars/Olympus")
	assert.Error(t, err)
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2024, 2, 29, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "2024-02-29 09:05:00", FormatDateTime(ts, ""))
	assert.Equal(t, "29/02/2024", FormatDateTime(ts, "02/01/2006"))
}

func TestCalculateAge(t *testing.T) {
	now := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		birth time.Time
		want  int
	}{
		{"birthday passed", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), 34},
		{"birthday today", time.Date(2000, 5, 10, 0, 0, 0, 0, time.UTC), 24},
		{"birthday tomorrow", time.Date(2000, 5, 11, 0, 0, 0, 0, time.UTC), 23},
		{"born in the future", time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateAge(tt.birth, now))
		})
	}
}

func TestIsBusinessHour(t *testing.T) {
	monday10 := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	monday17 := time.Date(2024, 6, 3, 17, 0, 0, 0, time.UTC)
	saturday10 := time.Date(2024, 6, 8, 10, 0, 0, 0, time.UTC)

	assert.True(t, IsBusinessHour(monday10, 9, 17))
	assert.False(t, IsBusinessHour(monday17, 9, 17))
	assert.False(t, IsBusinessHour(saturday10, 9, 17))
	assert.True(t, IsWeekend(saturday10))
	assert.False(t, IsWeekend(monday10))
}
