package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tp(t time.Time) *time.Time { return &t }

func TestLiveStatusAt_InsideWindow(t *testing.T) {
	start := time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC)
	inst := &EventInstance{
		StartTime: start,
		EndTime:   tp(start.Add(6 * time.Hour)),
	}

	status := inst.LiveStatusAt(start.Add(2 * time.Hour))

	assert.True(t, status.HappeningNow)
	assert.Equal(t, 1, status.TotalDays)
	require.NotNil(t, status.DaysIntoEvent)
	assert.Equal(t, 1, *status.DaysIntoEvent)
	require.NotNil(t, status.DaysRemaining)
	assert.Equal(t, 0, *status.DaysRemaining)
}

func TestLiveStatusAt_OutsideWindow(t *testing.T) {
	start := time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC)
	inst := &EventInstance{
		StartTime: start,
		EndTime:   tp(start.Add(6 * time.Hour)),
	}

	before := inst.LiveStatusAt(start.Add(-time.Minute))
	after := inst.LiveStatusAt(start.Add(7 * time.Hour))

	assert.False(t, before.HappeningNow)
	assert.Nil(t, before.DaysIntoEvent)
	assert.Nil(t, before.DaysRemaining)
	assert.False(t, after.HappeningNow)
}

func TestLiveStatusAt_MultiDayFestival(t *testing.T) {
	start := time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC)
	inst := &EventInstance{
		StartTime: start,
		EndTime:   tp(time.Date(2025, 7, 13, 18, 0, 0, 0, time.UTC)),
	}

	status := inst.LiveStatusAt(time.Date(2025, 7, 12, 12, 0, 0, 0, time.UTC))

	assert.True(t, status.HappeningNow)
	assert.Equal(t, 4, status.TotalDays)
	require.NotNil(t, status.DaysIntoEvent)
	assert.Equal(t, 3, *status.DaysIntoEvent)
	require.NotNil(t, status.DaysRemaining)
	assert.Equal(t, 1, *status.DaysRemaining)
}

func TestLiveStatusAt_NoEndTime_SameDayOnly(t *testing.T) {
	start := time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC)
	inst := &EventInstance{StartTime: start}

	assert.True(t, inst.LiveStatusAt(start.Add(10*time.Hour)).HappeningNow)
	assert.False(t, inst.LiveStatusAt(start.Add(-time.Hour)).HappeningNow, "before start")
	assert.False(t, inst.LiveStatusAt(start.AddDate(0, 0, 1)).HappeningNow, "next day")
}
