package domain

import "time"

type RegistrationStatus string

const (
	RegistrationStatusPending   RegistrationStatus = "pending"
	RegistrationStatusConfirmed RegistrationStatus = "confirmed"
	RegistrationStatusCancelled RegistrationStatus = "cancelled"
	RegistrationStatusRejected  RegistrationStatus = "rejected"
	RegistrationStatusWaitlist  RegistrationStatus = "waitlist"
)

// ApprovableStatuses may still be promoted to confirmed by a reviewer.
var ApprovableStatuses = []RegistrationStatus{RegistrationStatusPending, RegistrationStatusWaitlist}

// Final reports whether the status is terminal.
func (s RegistrationStatus) Final() bool {
	return s == RegistrationStatusCancelled || s == RegistrationStatusRejected
}

// Registration links an attendee (authenticated or guest) to one event
// instance. Only confirmed registrations count against capacity.
type Registration struct {
	ID          string             `json:"id"`
	InstanceID  string             `json:"instance_id"`
	UserID      *string            `json:"user_id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Status      RegistrationStatus `json:"status"`
	FormData    map[string]any     `json:"form_data"`
	ReviewedBy  *string            `json:"reviewed_by"`
	ReviewedAt  *time.Time         `json:"reviewed_at"`
	ReviewNotes string             `json:"review_notes"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type SubmitRegistrationInput struct {
	UserID   *string
	Name     string
	Email    string
	FormData map[string]any
}

type ReviewInput struct {
	Reviewer string
	Notes    string
}
