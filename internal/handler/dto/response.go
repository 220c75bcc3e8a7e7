package dto

import (
	"time"

	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/domain"
)

type TemplateResponse struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Location         string             `json:"location"`
	Latitude         *float64           `json:"latitude,omitempty"`
	Longitude        *float64           `json:"longitude,omitempty"`
	StartTime        string             `json:"start_time"`
	EndTime          *string            `json:"end_time,omitempty"`
	Recurrence       string             `json:"recurrence"`
	RecurrenceEnd    *string            `json:"recurrence_end,omitempty"`
	Capacity         *int               `json:"capacity,omitempty"`
	Tags             []string           `json:"tags"`
	Published        bool               `json:"published"`
	RequiresApproval bool               `json:"requires_approval"`
	AllowWaitlist    bool               `json:"allow_waitlist"`
	FormFields       []domain.FormField `json:"form_fields"`
	CreatedAt        string             `json:"created_at"`
}

type TemplateDetailsResponse struct {
	Template        TemplateResponse `json:"template"`
	FutureInstances []EventResponse  `json:"future_instances"`
}

type EventResponse struct {
	ID               string             `json:"id"`
	TemplateID       *string            `json:"template_id,omitempty"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Location         string             `json:"location"`
	Latitude         *float64           `json:"latitude,omitempty"`
	Longitude        *float64           `json:"longitude,omitempty"`
	StartTime        string             `json:"start_time"`
	EndTime          *string            `json:"end_time,omitempty"`
	Capacity         *int               `json:"capacity,omitempty"`
	Tags             []string           `json:"tags"`
	Published        bool               `json:"published"`
	Generated        bool               `json:"generated"`
	RequiresApproval bool               `json:"requires_approval"`
	AllowWaitlist    bool               `json:"allow_waitlist"`
	FormFields       []domain.FormField `json:"form_fields"`
	CreatedAt        string             `json:"created_at"`
}

type LiveStatusResponse struct {
	HappeningNow  bool `json:"happening_now"`
	TotalDays     int  `json:"total_days"`
	DaysIntoEvent *int `json:"days_into_event,omitempty"`
	DaysRemaining *int `json:"days_remaining,omitempty"`
}

type NearbyPlaceResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	DistanceKM float64 `json:"distance_km"`
}

type EventDetailsResponse struct {
	Event         EventResponse          `json:"event"`
	Live          LiveStatusResponse     `json:"live"`
	SpotsLeft     *int                   `json:"spots_left,omitempty"`
	Registrations []RegistrationResponse `json:"registrations"`
	NearbyPlaces  []NearbyPlaceResponse  `json:"nearby_places"`
}

type RegistrationResponse struct {
	ID          string         `json:"id"`
	InstanceID  string         `json:"instance_id"`
	UserID      *string        `json:"user_id,omitempty"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Status      string         `json:"status"`
	FormData    map[string]any `json:"form_data,omitempty"`
	ReviewedBy  *string        `json:"reviewed_by,omitempty"`
	ReviewedAt  *string        `json:"reviewed_at,omitempty"`
	ReviewNotes string         `json:"review_notes,omitempty"`
	CreatedAt   string         `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToTemplateResponse(t *domain.EventTemplate) TemplateResponse {
	return TemplateResponse{
		ID:               t.ID,
		Title:            t.Title,
		Description:      t.Description,
		Location:         t.Location,
		Latitude:         t.Latitude,
		Longitude:        t.Longitude,
		StartTime:        t.StartTime.Format(time.RFC3339),
		EndTime:          formatTimePtr(t.EndTime),
		Recurrence:       string(t.Recurrence),
		RecurrenceEnd:    formatTimePtr(t.RecurrenceEnd),
		Capacity:         t.Capacity,
		Tags:             t.Tags,
		Published:        t.Published,
		RequiresApproval: t.RequiresApproval,
		AllowWaitlist:    t.AllowWaitlist,
		FormFields:       t.FormFields,
		CreatedAt:        t.CreatedAt.Format(time.RFC3339),
	}
}

func ToTemplateDetailsResponse(d *domain.TemplateDetails) TemplateDetailsResponse {
	instances := make([]EventResponse, 0, len(d.FutureInstances))
	for i := range d.FutureInstances {
		instances = append(instances, ToEventResponse(&d.FutureInstances[i]))
	}

	return TemplateDetailsResponse{
		Template:        ToTemplateResponse(&d.Template),
		FutureInstances: instances,
	}
}

func ToEventResponse(e *domain.EventInstance) EventResponse {
	return EventResponse{
		ID:               e.ID,
		TemplateID:       e.TemplateID,
		Title:            e.Title,
		Description:      e.Description,
		Location:         e.Location,
		Latitude:         e.Latitude,
		Longitude:        e.Longitude,
		StartTime:        e.StartTime.Format(time.RFC3339),
		EndTime:          formatTimePtr(e.EndTime),
		Capacity:         e.Capacity,
		Tags:             e.Tags,
		Published:        e.Published,
		Generated:        e.Generated,
		RequiresApproval: e.RequiresApproval,
		AllowWaitlist:    e.AllowWaitlist,
		FormFields:       e.FormFields,
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.InstanceDetails) EventDetailsResponse {
	registrations := make([]RegistrationResponse, 0, len(d.Registrations))
	for i := range d.Registrations {
		registrations = append(registrations, ToRegistrationResponse(&d.Registrations[i]))
	}

	nearby := make([]NearbyPlaceResponse, 0, len(d.NearbyPlaces))
	for _, p := range d.NearbyPlaces {
		nearby = append(nearby, NearbyPlaceResponse{
			ID:         p.Place.ID,
			Name:       p.Place.Name,
			Category:   p.Place.Category,
			DistanceKM: p.DistanceKM,
		})
	}

	return EventDetailsResponse{
		Event: ToEventResponse(&d.Instance),
		Live: LiveStatusResponse{
			HappeningNow:  d.Live.HappeningNow,
			TotalDays:     d.Live.TotalDays,
			DaysIntoEvent: d.Live.DaysIntoEvent,
			DaysRemaining: d.Live.DaysRemaining,
		},
		SpotsLeft:     d.SpotsLeft,
		Registrations: registrations,
		NearbyPlaces:  nearby,
	}
}

func ToRegistrationResponse(r *domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:          r.ID,
		InstanceID:  r.InstanceID,
		UserID:      r.UserID,
		Name:        r.Name,
		Email:       r.Email,
		Status:      string(r.Status),
		FormData:    r.FormData,
		ReviewedBy:  r.ReviewedBy,
		ReviewedAt:  formatTimePtr(r.ReviewedAt),
		ReviewNotes: r.ReviewNotes,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
