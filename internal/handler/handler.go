package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/domain"
	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/handler/dto"
)

type TemplateSvc interface {
	CreateTemplate(ctx context.Context, input domain.CreateTemplateInput) (*domain.EventTemplate, error)
	GetDetails(ctx context.Context, id string) (*domain.TemplateDetails, error)
	List(ctx context.Context) ([]*domain.EventTemplate, error)
	Delete(ctx context.Context, id string) error
}

type InstanceSvc interface {
	CreateManual(ctx context.Context, input domain.CreateInstanceInput) (*domain.EventInstance, error)
	GetDetails(ctx context.Context, id string) (*domain.InstanceDetails, error)
	List(ctx context.Context, filter domain.InstanceFilter) ([]*domain.EventInstance, error)
	Delete(ctx context.Context, id string) error
}

type RegistrationSvc interface {
	Submit(ctx context.Context, instanceID string, input domain.SubmitRegistrationInput) (*domain.Registration, error)
	Approve(ctx context.Context, id string, review domain.ReviewInput) (*domain.Registration, error)
	Reject(ctx context.Context, id string, review domain.ReviewInput) (*domain.Registration, error)
	Cancel(ctx context.Context, id string) (*domain.Registration, error)
	ListByInstance(ctx context.Context, instanceID string) ([]*domain.Registration, error)
}

type Handler struct {
	templateService     TemplateSvc
	instanceService     InstanceSvc
	registrationService RegistrationSvc
}

func NewHandler(templateService TemplateSvc, instanceService InstanceSvc, registrationService RegistrationSvc) *Handler {
	return &Handler{
		templateService:     templateService,
		instanceService:     instanceService,
		registrationService: registrationService,
	}
}

// Templates

func (h *Handler) CreateTemplate(c *ginext.Context) {
	var req dto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_time format, expected RFC3339",
		})
		return
	}
	endTime, err := parseTimePtr(req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid end_time format, expected RFC3339",
		})
		return
	}
	recurrenceEnd, err := parseTimePtr(req.RecurrenceEnd)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid recurrence_end format, expected RFC3339",
		})
		return
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	input := domain.CreateTemplateInput{
		Title:            req.Title,
		Description:      req.Description,
		Location:         req.Location,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		StartTime:        startTime,
		EndTime:          endTime,
		Recurrence:       domain.RecurrenceRule(req.Recurrence),
		RecurrenceEnd:    recurrenceEnd,
		Capacity:         req.Capacity,
		Tags:             req.Tags,
		Published:        published,
		RequiresApproval: req.RequiresApproval,
		AllowWaitlist:    req.AllowWaitlist,
		FormFields:       toFormFields(req.FormFields),
	}

	tpl, err := h.templateService.CreateTemplate(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTemplateResponse(tpl))
}

func (h *Handler) GetTemplate(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid template id"})
		return
	}

	details, err := h.templateService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTemplateDetailsResponse(details))
}

func (h *Handler) ListTemplates(c *ginext.Context) {
	templates, err := h.templateService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		resp = append(resp, dto.ToTemplateResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteTemplate(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid template id"})
		return
	}

	if err := h.templateService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_time format, expected RFC3339",
		})
		return
	}
	endTime, err := parseTimePtr(req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid end_time format, expected RFC3339",
		})
		return
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	input := domain.CreateInstanceInput{
		Title:            req.Title,
		Description:      req.Description,
		Location:         req.Location,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		StartTime:        startTime,
		EndTime:          endTime,
		Capacity:         req.Capacity,
		Tags:             req.Tags,
		Published:        published,
		RequiresApproval: req.RequiresApproval,
		AllowWaitlist:    req.AllowWaitlist,
		FormFields:       toFormFields(req.FormFields),
	}

	inst, err := h.instanceService.CreateManual(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(inst))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	details, err := h.instanceService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	filter := domain.InstanceFilter{
		Period:     domain.InstancePeriod(c.Query("status")),
		TemplateID: c.Query("template_id"),
	}
	if filter.TemplateID != "" {
		if _, err := uuid.Parse(filter.TemplateID); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid template_id"})
			return
		}
	}

	events, err := h.instanceService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	if err := h.instanceService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Registrations

func (h *Handler) RegisterForEvent(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.SubmitRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.SubmitRegistrationInput{
		UserID:   req.UserID,
		Name:     req.Name,
		Email:    req.Email,
		FormData: req.FormData,
	}

	reg, err := h.registrationService.Submit(c.Request.Context(), eventID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRegistrationResponse(reg))
}

func (h *Handler) ListEventRegistrations(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	regs, err := h.registrationService.ListByInstance(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RegistrationResponse, 0, len(regs))
	for _, r := range regs {
		resp = append(resp, dto.ToRegistrationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ApproveRegistration(c *ginext.Context) {
	h.review(c, h.registrationService.Approve)
}

func (h *Handler) RejectRegistration(c *ginext.Context) {
	h.review(c, h.registrationService.Reject)
}

func (h *Handler) review(c *ginext.Context, action func(context.Context, string, domain.ReviewInput) (*domain.Registration, error)) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reg, err := action(c.Request.Context(), id, domain.ReviewInput{
		Reviewer: req.Reviewer,
		Notes:    req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}

func (h *Handler) CancelRegistration(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	reg, err := h.registrationService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrTemplateNotFound),
		errors.Is(err, domain.ErrInstanceNotFound),
		errors.Is(err, domain.ErrRegistrationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrInstanceExists),
		errors.Is(err, domain.ErrRegistrationNotPending),
		errors.Is(err, domain.ErrRegistrationFinal):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func parseTimePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func toFormFields(fields []dto.FormFieldRequest) []domain.FormField {
	if len(fields) == 0 {
		return nil
	}
	out := make([]domain.FormField, len(fields))
	for i, f := range fields {
		out[i] = domain.FormField{
			Key:      f.Key,
			Label:    f.Label,
			Type:     domain.FieldType(f.Type),
			Required: f.Required,
			Options:  f.Options,
		}
	}
	return out
}
