package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/domain"
)

func TestNext_NoneYieldsEmpty(t *testing.T) {
	anchor := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	got, err := Next(anchor, domain.RecurrenceNone, nil, 10)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNext_UnknownRule(t *testing.T) {
	anchor := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	_, err := Next(anchor, domain.RecurrenceRule("fortnightly"), nil, 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNext_StrictlyIncreasingAfterAnchor(t *testing.T) {
	anchor := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	for _, rule := range []domain.RecurrenceRule{
		domain.RecurrenceDaily,
		domain.RecurrenceWeekly,
		domain.RecurrenceMonthly,
		domain.RecurrenceYearly,
	} {
		horizon := anchor.AddDate(10, 0, 0)
		got, err := Next(anchor, rule, &horizon, 8)

		require.NoError(t, err, rule)
		require.NotEmpty(t, got, rule)

		prev := anchor
		for _, ts := range got {
			assert.True(t, ts.After(prev), "%s: %s not after %s", rule, ts, prev)
			prev = ts
		}
	}
}

func TestNext_Daily(t *testing.T) {
	anchor := time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC)

	got, err := Next(anchor, domain.RecurrenceDaily, nil, 3)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, time.Date(2025, 6, 2, 18, 30, 0, 0, time.UTC), got[0])
	assert.Equal(t, time.Date(2025, 6, 4, 18, 30, 0, 0, time.UTC), got[2])
}

func TestNext_WeeklyKeepsWeekdayAndClock(t *testing.T) {
	// Monday 20:00.
	anchor := time.Date(2025, 6, 2, 20, 0, 0, 0, time.UTC)
	require.Equal(t, time.Monday, anchor.Weekday())

	got, err := Next(anchor, domain.RecurrenceWeekly, nil, 4)

	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, time.Date(2025, 6, 9, 20, 0, 0, 0, time.UTC), got[0])
	for _, ts := range got {
		assert.Equal(t, time.Monday, ts.Weekday())
		assert.Equal(t, 20, ts.Hour())
	}
}

func TestNext_MonthlyClampsToEndOfFebruary(t *testing.T) {
	anchor := time.Date(2025, 1, 31, 9, 0, 0, 0, time.UTC)

	got, err := Next(anchor, domain.RecurrenceMonthly, nil, 4)

	require.NoError(t, err)
	require.Len(t, got, 4)
	// Not March 2/3 via naive +30 days.
	assert.Equal(t, time.Date(2025, 2, 28, 9, 0, 0, 0, time.UTC), got[0])
	assert.Equal(t, time.Date(2025, 3, 31, 9, 0, 0, 0, time.UTC), got[1])
	assert.Equal(t, time.Date(2025, 4, 30, 9, 0, 0, 0, time.UTC), got[2])
	assert.Equal(t, time.Date(2025, 5, 31, 9, 0, 0, 0, time.UTC), got[3])
}

func TestNext_MonthlyClampLeapYear(t *testing.T) {
	anchor := time.Date(2024, 1, 31, 9, 0, 0, 0, time.UTC)

	got, err := Next(anchor, domain.RecurrenceMonthly, nil, 1)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, time.Date(2024, 2, 29, 9, 0, 0, 0, time.UTC), got[0])
}

func TestNext_YearlyClampsFeb29(t *testing.T) {
	anchor := time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)
	horizon := anchor.AddDate(5, 0, 0)

	got, err := Next(anchor, domain.RecurrenceYearly, &horizon, 4)

	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, time.Date(2025, 2, 28, 12, 0, 0, 0, time.UTC), got[0])
	assert.Equal(t, time.Date(2028, 2, 29, 12, 0, 0, 0, time.UTC), got[3])
}

func TestNext_StopsAtExplicitHorizon(t *testing.T) {
	anchor := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	horizon := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	got, err := Next(anchor, domain.RecurrenceWeekly, &horizon, 10)

	require.NoError(t, err)
	// June 8 and June 15 fit; June 22 is past the horizon.
	require.Len(t, got, 2)
	assert.Equal(t, 15, got[1].Day())
}

func TestNext_DefaultHorizonIsOneYear(t *testing.T) {
	anchor := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	got, err := Next(anchor, domain.RecurrenceYearly, nil, 5)

	require.NoError(t, err)
	// Only the +1 year occurrence lands inside anchor+365d.
	require.Len(t, got, 1)
	assert.Equal(t, 2026, got[0].Year())
}

func TestNext_ZeroCount(t *testing.T) {
	anchor := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	got, err := Next(anchor, domain.RecurrenceDaily, nil, 0)

	require.NoError(t, err)
	assert.Empty(t, got)
}
