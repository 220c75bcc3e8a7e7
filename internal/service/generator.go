package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/clock"
	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/domain"
	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/recurrence"
	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/service/ports"
)

// generationWindow is how many candidates the calculator is asked for per
// run. It covers a daily rule across the default one-year horizon, so the
// generator can step over past and already-materialized dates.
const generationWindow = 366

type GeneratorService struct {
	templateRepo ports.TemplateRepo
	instanceRepo ports.InstanceRepo
	clock        clock.Clock
	logger       logger.Logger
}

func NewGeneratorService(
	templateRepo ports.TemplateRepo,
	instanceRepo ports.InstanceRepo,
	clk clock.Clock,
	logger logger.Logger,
) *GeneratorService {
	return &GeneratorService{
		templateRepo: templateRepo,
		instanceRepo: instanceRepo,
		clock:        clk,
		logger:       logger,
	}
}

// Generate materializes up to target future instances for one template.
// Candidates whose date already has an instance are skipped, and a
// concurrent replica winning the insert race is treated the same way, so
// calling Generate twice (or from two workers at once) never duplicates an
// occurrence. Only instances actually created are returned; an empty result
// is not an error.
func (s *GeneratorService) Generate(ctx context.Context, tpl *domain.EventTemplate, target int) ([]*domain.EventInstance, error) {
	if !tpl.Recurrence.IsRecurring() {
		return nil, nil
	}

	candidates, err := recurrence.Next(tpl.StartTime, tpl.Recurrence, tpl.RecurrenceEnd, generationWindow)
	if err != nil {
		return nil, fmt.Errorf("compute occurrences: %w", err)
	}
	// The anchor is itself the first occurrence.
	candidates = append([]time.Time{tpl.StartTime}, candidates...)

	now := s.clock.Now()
	span := tpl.Span()

	var created []*domain.EventInstance
	for _, start := range candidates {
		if len(created) >= target {
			break
		}
		if !start.After(now) {
			continue
		}

		exists, err := s.instanceRepo.ExistsForDate(ctx, tpl.ID, start)
		if err != nil {
			return created, fmt.Errorf("check existing date: %w", err)
		}
		if exists {
			continue
		}

		inst := instanceFromTemplate(tpl, start, span)
		if err := s.instanceRepo.Create(ctx, inst); err != nil {
			if errors.Is(err, domain.ErrInstanceExists) {
				// Another replica created this date between our check and
				// insert. The occurrence exists, which is all we wanted.
				continue
			}
			return created, fmt.Errorf("create instance: %w", err)
		}

		s.logger.Info("instance generated",
			logger.String("template_id", tpl.ID),
			logger.String("instance_id", inst.ID),
			logger.String("start_time", inst.StartTime.String()),
		)
		created = append(created, inst)
	}

	return created, nil
}

// GenerateDue extends every template whose generated sequence has run out.
// Per-template failures are logged and skipped; the next tick retries them.
func (s *GeneratorService) GenerateDue(ctx context.Context) (int, error) {
	templates, err := s.templateRepo.ListDue(ctx, s.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("list due templates: %w", err)
	}

	total := 0
	for _, tpl := range templates {
		created, err := s.Generate(ctx, tpl, 1)
		if err != nil {
			s.logger.Error("failed to extend template",
				logger.String("template_id", tpl.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		total += len(created)
	}

	return total, nil
}

func instanceFromTemplate(tpl *domain.EventTemplate, start time.Time, span time.Duration) *domain.EventInstance {
	end := start.Add(span)
	templateID := tpl.ID
	return &domain.EventInstance{
		ID:               uuid.New().String(),
		TemplateID:       &templateID,
		Title:            tpl.Title,
		Description:      tpl.Description,
		Location:         tpl.Location,
		Latitude:         tpl.Latitude,
		Longitude:        tpl.Longitude,
		StartTime:        start,
		EndTime:          &end,
		Capacity:         tpl.Capacity,
		Tags:             tpl.Tags,
		Published:        tpl.Published,
		Generated:        true,
		RequiresApproval: tpl.RequiresApproval,
		AllowWaitlist:    tpl.AllowWaitlist,
		FormFields:       tpl.FormFields,
	}
}
