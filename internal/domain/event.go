package domain

import "time"

type RecurrenceRule string

const (
	RecurrenceNone    RecurrenceRule = "none"
	RecurrenceDaily   RecurrenceRule = "daily"
	RecurrenceWeekly  RecurrenceRule = "weekly"
	RecurrenceMonthly RecurrenceRule = "monthly"
	RecurrenceYearly  RecurrenceRule = "yearly"
)

func (r RecurrenceRule) Valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly:
		return true
	}
	return false
}

func (r RecurrenceRule) IsRecurring() bool {
	return r.Valid() && r != RecurrenceNone
}

// DefaultEventSpan is assumed when a template has no end time, so that
// generated instances always carry a bounded window.
const DefaultEventSpan = 2 * time.Hour

// EventTemplate is the recurring definition ("parent"). It is never served
// to end users as a live or upcoming event; only its instances are.
type EventTemplate struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Location         string         `json:"location"`
	Latitude         *float64       `json:"latitude"`
	Longitude        *float64       `json:"longitude"`
	StartTime        time.Time      `json:"start_time"`
	EndTime          *time.Time     `json:"end_time"`
	Recurrence       RecurrenceRule `json:"recurrence"`
	RecurrenceEnd    *time.Time     `json:"recurrence_end"`
	Capacity         *int           `json:"capacity"`
	Tags             []string       `json:"tags"`
	Published        bool           `json:"published"`
	RequiresApproval bool           `json:"requires_approval"`
	AllowWaitlist    bool           `json:"allow_waitlist"`
	FormFields       []FormField    `json:"form_fields"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// Span is the duration an instance of this template covers.
func (t *EventTemplate) Span() time.Duration {
	if t.EndTime != nil && t.EndTime.After(t.StartTime) {
		return t.EndTime.Sub(t.StartTime)
	}
	return DefaultEventSpan
}

// EventInstance is one concrete occurrence, either produced by the generator
// from a template or created directly as a one-off event. Generated instances
// are immutable snapshots of their template.
type EventInstance struct {
	ID               string      `json:"id"`
	TemplateID       *string     `json:"template_id"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	Location         string      `json:"location"`
	Latitude         *float64    `json:"latitude"`
	Longitude        *float64    `json:"longitude"`
	StartTime        time.Time   `json:"start_time"`
	EndTime          *time.Time  `json:"end_time"`
	Capacity         *int        `json:"capacity"`
	Tags             []string    `json:"tags"`
	Published        bool        `json:"published"`
	Generated        bool        `json:"generated"`
	RequiresApproval bool        `json:"requires_approval"`
	AllowWaitlist    bool        `json:"allow_waitlist"`
	FormFields       []FormField `json:"form_fields"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

type InstancePeriod string

const (
	PeriodNow      InstancePeriod = "now"
	PeriodUpcoming InstancePeriod = "upcoming"
	PeriodPast     InstancePeriod = "past"
)

type InstanceFilter struct {
	Period     InstancePeriod
	TemplateID string
}

type InstanceDetails struct {
	Instance      EventInstance  `json:"instance"`
	Live          LiveStatus     `json:"live"`
	SpotsLeft     *int           `json:"spots_left"`
	Registrations []Registration `json:"registrations"`
	NearbyPlaces  []NearbyPlace  `json:"nearby_places"`
}

type TemplateDetails struct {
	Template        EventTemplate   `json:"template"`
	FutureInstances []EventInstance `json:"future_instances"`
}

type CreateTemplateInput struct {
	Title            string
	Description      string
	Location         string
	Latitude         *float64
	Longitude        *float64
	StartTime        time.Time
	EndTime          *time.Time
	Recurrence       RecurrenceRule
	RecurrenceEnd    *time.Time
	Capacity         *int
	Tags             []string
	Published        bool
	RequiresApproval bool
	AllowWaitlist    bool
	FormFields       []FormField
}

type CreateInstanceInput struct {
	Title            string
	Description      string
	Location         string
	Latitude         *float64
	Longitude        *float64
	StartTime        time.Time
	EndTime          *time.Time
	Capacity         *int
	Tags             []string
	Published        bool
	RequiresApproval bool
	AllowWaitlist    bool
	FormFields       []FormField
}
