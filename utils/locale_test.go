package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLocationPicksFirstUsable(t *testing.T) {
	loc, fallback := ResolveLocation([]string{"Not/AZone", "UTC"}, 120)

	assert.False(t, fallback)
	assert.Equal(t, "UTC", loc.String())
}

func TestResolveLocationFallsBackToOffset(t *testing.T) {
	loc, fallback := ResolveLocation([]string{"Not/AZone", ""}, 120)

	require.True(t, fallback)
	instant := time.Date(2024, 6, 2, 16, 30, 0, 0, time.UTC)
	assert.Equal(t, 18, instant.In(loc).Hour())
}

func TestFormatAppointmentTimeArabic(t *testing.T) {
	loc := time.FixedZone("UTC+2:00", 120*60)
	instant := time.Date(2024, 6, 2, 16, 30, 0, 0, time.UTC) // Sunday 18:30 local

	date, timeStr, weekday := FormatAppointmentTime(instant, loc, "ar")

	assert.Equal(t, "02/06/2024", date)
	assert.Equal(t, "6:30 PM", timeStr)
	assert.Equal(t, "الأحد", weekday)
}

func TestFormatAppointmentTimeEnglish(t *testing.T) {
	instant := time.Date(2024, 6, 3, 9, 5, 0, 0, time.UTC) // Monday morning

	date, timeStr, weekday := FormatAppointmentTime(instant, time.UTC, "en")

	assert.Equal(t, "03/06/2024", date)
	assert.Equal(t, "9:05 AM", timeStr)
	assert.Equal(t, "Monday", weekday)
}

func TestFormatAppointmentTimeDeterministic(t *testing.T) {
	loc := time.FixedZone("UTC+2:00", 120*60)
	instant := time.Date(2024, 6, 2, 16, 30, 0, 0, time.UTC)

	d1, t1, w1 := FormatAppointmentTime(instant, loc, "ar")
	d2, t2, w2 := FormatAppointmentTime(instant, loc, "ar")

	assert.Equal(t, d1, d2)
	assert.Equal(t, t1, t2)
	assert.Equal(t, w1, w2)
}
