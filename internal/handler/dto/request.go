package dto

type FormFieldRequest struct {
	Key      string   `json:"key" binding:"required"`
	Label    string   `json:"label"`
	Type     string   `json:"type" binding:"required"`
	Required bool     `json:"required"`
	Options  []string `json:"options"`
}

type CreateTemplateRequest struct {
	Title            string             `json:"title" binding:"required"`
	Description      string             `json:"description"`
	Location         string             `json:"location"`
	Latitude         *float64           `json:"latitude"`
	Longitude        *float64           `json:"longitude"`
	StartTime        string             `json:"start_time" binding:"required"`
	EndTime          *string            `json:"end_time"`
	Recurrence       string             `json:"recurrence" binding:"required"`
	RecurrenceEnd    *string            `json:"recurrence_end"`
	Capacity         *int               `json:"capacity"`
	Tags             []string           `json:"tags"`
	Published        *bool              `json:"published"`
	RequiresApproval bool               `json:"requires_approval"`
	AllowWaitlist    bool               `json:"allow_waitlist"`
	FormFields       []FormFieldRequest `json:"form_fields"`
}

type CreateEventRequest struct {
	Title            string             `json:"title" binding:"required"`
	Description      string             `json:"description"`
	Location         string             `json:"location"`
	Latitude         *float64           `json:"latitude"`
	Longitude        *float64           `json:"longitude"`
	StartTime        string             `json:"start_time" binding:"required"`
	EndTime          *string            `json:"end_time"`
	Capacity         *int               `json:"capacity"`
	Tags             []string           `json:"tags"`
	Published        *bool              `json:"published"`
	RequiresApproval bool               `json:"requires_approval"`
	AllowWaitlist    bool               `json:"allow_waitlist"`
	FormFields       []FormFieldRequest `json:"form_fields"`
}

type SubmitRegistrationRequest struct {
	UserID   *string        `json:"user_id" binding:"omitempty,uuid"`
	Name     string         `json:"name" binding:"required"`
	Email    string         `json:"email" binding:"required,email"`
	FormData map[string]any `json:"form_data"`
}

type ReviewRequest struct {
	Reviewer string `json:"reviewer" binding:"required"`
	Notes    string `json:"notes"`
}
