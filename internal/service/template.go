package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/clock"
	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/domain"
	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/service/ports"
)

type instanceGenerator interface {
	Generate(ctx context.Context, tpl *domain.EventTemplate, target int) ([]*domain.EventInstance, error)
}

type TemplateService struct {
	repo         ports.TemplateRepo
	instanceRepo ports.InstanceRepo
	generator    instanceGenerator
	clock        clock.Clock
	logger       logger.Logger
}

func NewTemplateService(
	repo ports.TemplateRepo,
	instanceRepo ports.InstanceRepo,
	generator instanceGenerator,
	clk clock.Clock,
	logger logger.Logger,
) *TemplateService {
	return &TemplateService{
		repo:         repo,
		instanceRepo: instanceRepo,
		generator:    generator,
		clock:        clk,
		logger:       logger,
	}
}

// CreateTemplate stores a recurring definition and generates its first
// instance synchronously, so an "Upcoming" view is never empty right after
// creation. A failed first generation is only logged: the scheduler tick
// picks the template up again.
func (s *TemplateService) CreateTemplate(ctx context.Context, input domain.CreateTemplateInput) (*domain.EventTemplate, error) {
	if err := validateTemplateInput(input); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	tpl := &domain.EventTemplate{
		ID:               uuid.New().String(),
		Title:            input.Title,
		Description:      input.Description,
		Location:         input.Location,
		Latitude:         input.Latitude,
		Longitude:        input.Longitude,
		StartTime:        input.StartTime,
		EndTime:          input.EndTime,
		Recurrence:       input.Recurrence,
		RecurrenceEnd:    input.RecurrenceEnd,
		Capacity:         input.Capacity,
		Tags:             input.Tags,
		Published:        input.Published,
		RequiresApproval: input.RequiresApproval,
		AllowWaitlist:    input.AllowWaitlist,
		FormFields:       input.FormFields,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, tpl); err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}

	created, err := s.generator.Generate(ctx, tpl, 1)
	if err != nil {
		s.logger.Error("initial instance generation failed",
			logger.String("template_id", tpl.ID),
			logger.String("error", err.Error()),
		)
	} else {
		s.logger.Info("template created",
			logger.String("template_id", tpl.ID),
			logger.Int("instances_generated", len(created)),
		)
	}

	return tpl, nil
}

func (s *TemplateService) GetDetails(ctx context.Context, id string) (*domain.TemplateDetails, error) {
	tpl, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	future, err := s.instanceRepo.ListFutureByTemplate(ctx, id, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("list future instances: %w", err)
	}

	details := &domain.TemplateDetails{
		Template:        *tpl,
		FutureInstances: make([]domain.EventInstance, len(future)),
	}
	for i, inst := range future {
		details.FutureInstances[i] = *inst
	}

	return details, nil
}

func (s *TemplateService) List(ctx context.Context) ([]*domain.EventTemplate, error) {
	return s.repo.List(ctx)
}

// Delete removes the template only. Already-generated instances survive
// with their template reference nulled; past occurrences stay visible.
func (s *TemplateService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("template deleted", logger.String("template_id", id))
	return nil
}

func validateTemplateInput(input domain.CreateTemplateInput) error {
	if input.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.StartTime.IsZero() {
		return fmt.Errorf("%w: start_time is required", domain.ErrValidation)
	}
	if !input.Recurrence.Valid() {
		return fmt.Errorf("%w: unknown recurrence rule %q", domain.ErrValidation, input.Recurrence)
	}
	if !input.Recurrence.IsRecurring() {
		return fmt.Errorf("%w: a template must recur; create a one-off event instead", domain.ErrValidation)
	}
	if input.EndTime != nil && !input.EndTime.After(input.StartTime) {
		return fmt.Errorf("%w: end_time must be after start_time", domain.ErrValidation)
	}
	if input.RecurrenceEnd != nil && input.RecurrenceEnd.Before(input.StartTime) {
		return fmt.Errorf("%w: recurrence_end must not precede start_time", domain.ErrValidation)
	}
	if input.Capacity != nil && *input.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	return domain.ValidateFormFields(input.FormFields)
}
