package domain

import "time"

// LiveStatus is derived per read, never stored.
type LiveStatus struct {
	HappeningNow  bool `json:"happening_now"`
	TotalDays     int  `json:"total_days"`
	DaysIntoEvent *int `json:"days_into_event"`
	DaysRemaining *int `json:"days_remaining"`
}

// LiveStatusAt derives the instance status as of now. With no end time the
// instance is considered live from its start until the end of that UTC
// calendar day.
func (e *EventInstance) LiveStatusAt(now time.Time) LiveStatus {
	now = now.UTC()
	start := e.StartTime.UTC()

	var status LiveStatus

	if e.EndTime == nil {
		status.TotalDays = 1
		if sameDate(now, start) && !now.Before(start) {
			status.HappeningNow = true
			one, zero := 1, 0
			status.DaysIntoEvent = &one
			status.DaysRemaining = &zero
		}
		return status
	}

	end := e.EndTime.UTC()
	status.TotalDays = daysBetween(start, end) + 1

	if now.Before(start) || now.After(end) {
		return status
	}

	status.HappeningNow = true
	into := daysBetween(start, now) + 1
	remaining := status.TotalDays - into
	status.DaysIntoEvent = &into
	status.DaysRemaining = &remaining
	return status
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// daysBetween counts whole calendar days from a's date to b's date.
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}
