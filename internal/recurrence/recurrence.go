// Package recurrence computes candidate occurrence times for recurring
// event templates. It is pure: no clock, no store.
package recurrence

import (
	"fmt"
	"time"

	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/domain"
)

// DefaultHorizonDays bounds generation for templates without an explicit
// recurrence end date.
const DefaultHorizonDays = 365

// Next returns up to count occurrence times after anchor, in order.
//
// Daily and weekly rules are fixed-step. Monthly and yearly rules use
// calendar-aware addition with day-of-month clamping, so an anchor on
// Jan 31 yields the last day of February rather than drifting into March.
// Emission stops once a candidate's calendar date passes the horizon
// (anchor + DefaultHorizonDays when horizon is nil). A "none" rule yields
// an empty sequence.
func Next(anchor time.Time, rule domain.RecurrenceRule, horizon *time.Time, count int) ([]time.Time, error) {
	if !rule.Valid() {
		return nil, fmt.Errorf("%w: unknown recurrence rule %q", domain.ErrValidation, rule)
	}
	if rule == domain.RecurrenceNone || count <= 0 {
		return nil, nil
	}

	limit := anchor.AddDate(0, 0, DefaultHorizonDays)
	if horizon != nil {
		limit = *horizon
	}
	limitDate := dateOf(limit)

	out := make([]time.Time, 0, count)
	for k := 1; k <= count; k++ {
		var candidate time.Time
		switch rule {
		case domain.RecurrenceDaily:
			candidate = anchor.AddDate(0, 0, k)
		case domain.RecurrenceWeekly:
			candidate = anchor.AddDate(0, 0, 7*k)
		case domain.RecurrenceMonthly:
			candidate = addMonthsClamped(anchor, k)
		case domain.RecurrenceYearly:
			candidate = addMonthsClamped(anchor, 12*k)
		}

		if dateOf(candidate).After(limitDate) {
			break
		}
		out = append(out, candidate)
	}

	return out, nil
}

// addMonthsClamped adds months keeping the day of month, clamped to the
// target month's last day. time.Time.AddDate normalizes overflow instead
// (Jan 31 + 1 month = Mar 2/3), which is exactly the drift we must avoid.
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()

	total := int(month) - 1 + months
	year += total / 12
	month = time.Month(total%12 + 1)

	if last := lastDayOfMonth(year, month); day > last {
		day = last
	}

	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func lastDayOfMonth(year int, month time.Month) int {
	// Day 0 of the following month; time.Date normalizes month 13.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func dateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
