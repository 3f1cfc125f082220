package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allAvailable = AvailabilityFunc(func(string, int) bool { return true })
var noneAvailable = AvailabilityFunc(func(string, int) bool { return false })

func TestGenerateTimeSlotsFullDay(t *testing.T) {
	now := time.Date(2026, time.April, 15, 10, 0, 0, 0, time.UTC)
	slots, err := GenerateTimeSlots("2026-04-20", now, allAvailable)
	require.NoError(t, err)

	// Half-hour starts from 08:00 through 16:30 inclusive.
	require.Len(t, slots, 18)
	assert.Equal(t, "08:00", slots[0].Time)
	assert.Equal(t, "8:00 AM", slots[0].Display)
	assert.Equal(t, "16:30", slots[len(slots)-1].Time)
	assert.Equal(t, "4:30 PM", slots[len(slots)-1].Display)
}

func TestGenerateTimeSlotsSkipsElapsedToday(t *testing.T) {
	now := time.Date(2026, time.April, 15, 10, 15, 0, 0, time.UTC)
	slots, err := GenerateTimeSlots("2026-04-15", now, allAvailable)
	require.NoError(t, err)

	require.Len(t, slots, 13)
	assert.Equal(t, "10:30", slots[0].Time)
}

func TestGenerateTimeSlotsNoneAvailable(t *testing.T) {
	now := time.Date(2026, time.April, 15, 10, 0, 0, 0, time.UTC)
	slots, err := GenerateTimeSlots("2026-04-20", now, noneAvailable)

	assert.ErrorIs(t, err, ErrNoSlots)
	assert.Nil(t, slots)
}

func TestGenerateTimeSlotsFiltersBySource(t *testing.T) {
	now := time.Date(2026, time.April, 15, 10, 0, 0, 0, time.UTC)
	morningOnly := AvailabilityFunc(func(_ string, minute int) bool {
		return minute < 12*60
	})
	slots, err := GenerateTimeSlots("2026-04-20", now, morningOnly)
	require.NoError(t, err)

	require.Len(t, slots, 8)
	for _, s := range slots {
		minute, err := clockToMinute(s.Time)
		require.NoError(t, err)
		assert.Less(t, minute, 12*60)
	}
}

func TestSlotDisplayRoundTrip(t *testing.T) {
	now := time.Date(2026, time.April, 15, 10, 0, 0, 0, time.UTC)
	slots, err := GenerateTimeSlots("2026-04-20", now, allAvailable)
	require.NoError(t, err)

	for _, s := range slots {
		back, err := ParseSlotDisplay(s.Display)
		require.NoError(t, err)
		assert.Equal(t, s.Time, back)
	}
}

func TestFormatSlotTime(t *testing.T) {
	assert.Equal(t, "8:00 AM", FormatSlotTime("08:00"))
	assert.Equal(t, "12:00 PM", FormatSlotTime("12:00"))
	assert.Equal(t, "12:30 PM", FormatSlotTime("12:30"))
	assert.Equal(t, "2:30 PM", FormatSlotTime("14:30"))
	assert.Equal(t, "4:30 PM", FormatSlotTime("16:30"))
}

func TestRandomAvailabilityRate(t *testing.T) {
	src := NewRandomAvailability(0.8, 42)
	available := 0
	const trials = 2000
	for i := 0; i < trials; i++ {
		if src.IsAvailable("2026-04-20", 480) {
			available++
		}
	}
	rate := float64(available) / trials
	assert.InDelta(t, 0.8, rate, 0.05)
}
