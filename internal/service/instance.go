package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/clock"
	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/domain"
	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/geo"
	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/service/ports"
)

// nearbyRadiusKM bounds the nearby-places lookup on detail views.
const nearbyRadiusKM = 25.0

type InstanceService struct {
	repo             ports.InstanceRepo
	registrationRepo ports.RegistrationRepo
	placeRepo        ports.PlaceRepo
	clock            clock.Clock
	logger           logger.Logger
}

func NewInstanceService(
	repo ports.InstanceRepo,
	registrationRepo ports.RegistrationRepo,
	placeRepo ports.PlaceRepo,
	clk clock.Clock,
	logger logger.Logger,
) *InstanceService {
	return &InstanceService{
		repo:             repo,
		registrationRepo: registrationRepo,
		placeRepo:        placeRepo,
		clock:            clk,
		logger:           logger,
	}
}

// CreateManual creates a one-off instance with no template. These are the
// only instances an admin may also delete by hand.
func (s *InstanceService) CreateManual(ctx context.Context, input domain.CreateInstanceInput) (*domain.EventInstance, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.StartTime.IsZero() {
		return nil, fmt.Errorf("%w: start_time is required", domain.ErrValidation)
	}
	if input.EndTime != nil && !input.EndTime.After(input.StartTime) {
		return nil, fmt.Errorf("%w: end_time must be after start_time", domain.ErrValidation)
	}
	if input.Capacity != nil && *input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if err := domain.ValidateFormFields(input.FormFields); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	inst := &domain.EventInstance{
		ID:               uuid.New().String(),
		Title:            input.Title,
		Description:      input.Description,
		Location:         input.Location,
		Latitude:         input.Latitude,
		Longitude:        input.Longitude,
		StartTime:        input.StartTime,
		EndTime:          input.EndTime,
		Capacity:         input.Capacity,
		Tags:             input.Tags,
		Published:        input.Published,
		Generated:        false,
		RequiresApproval: input.RequiresApproval,
		AllowWaitlist:    input.AllowWaitlist,
		FormFields:       input.FormFields,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, inst); err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}

	return inst, nil
}

func (s *InstanceService) GetDetails(ctx context.Context, id string) (*domain.InstanceDetails, error) {
	inst, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &domain.InstanceDetails{
		Instance: *inst,
		Live:     inst.LiveStatusAt(s.clock.Now()),
	}

	if inst.Capacity != nil {
		confirmed, err := s.registrationRepo.CountConfirmed(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("count confirmed: %w", err)
		}
		left := *inst.Capacity - confirmed
		if left < 0 {
			left = 0
		}
		details.SpotsLeft = &left
	}

	regs, err := s.registrationRepo.ListByInstance(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	details.Registrations = make([]domain.Registration, len(regs))
	for i, r := range regs {
		details.Registrations[i] = *r
	}

	details.NearbyPlaces = s.nearbyPlaces(ctx, inst)

	return details, nil
}

// nearbyPlaces is best-effort enrichment; a failing places lookup never
// fails the detail view.
func (s *InstanceService) nearbyPlaces(ctx context.Context, inst *domain.EventInstance) []domain.NearbyPlace {
	if inst.Latitude == nil || inst.Longitude == nil {
		return nil
	}

	places, err := s.placeRepo.ListWithCoordinates(ctx)
	if err != nil {
		s.logger.Error("failed to load places for nearby lookup",
			logger.String("instance_id", inst.ID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	candidates := make([]geo.Candidate, len(places))
	byID := make(map[string]*domain.Place, len(places))
	for i, p := range places {
		candidates[i] = geo.Candidate{
			ID:        p.ID,
			Name:      p.Name,
			Category:  p.Category,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
		}
		byID[p.ID] = p
	}

	matches := geo.Nearest(*inst.Latitude, *inst.Longitude, candidates, nearbyRadiusKM, geo.DefaultLimit)

	nearby := make([]domain.NearbyPlace, 0, len(matches))
	for _, m := range matches {
		nearby = append(nearby, domain.NearbyPlace{
			Place:      *byID[m.Candidate.ID],
			DistanceKM: m.DistanceKM,
		})
	}
	return nearby
}

func (s *InstanceService) List(ctx context.Context, filter domain.InstanceFilter) ([]*domain.EventInstance, error) {
	switch filter.Period {
	case "", domain.PeriodNow, domain.PeriodUpcoming, domain.PeriodPast:
	default:
		return nil, fmt.Errorf("%w: unknown period %q", domain.ErrValidation, filter.Period)
	}

	return s.repo.List(ctx, filter, s.clock.Now())
}

// Delete removes a manually created instance. Generated instances are owned
// by the retention sweeper and cannot be deleted here.
func (s *InstanceService) Delete(ctx context.Context, id string) error {
	inst, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if inst.Generated {
		return fmt.Errorf("%w: generated instances are pruned by retention, not deleted", domain.ErrValidation)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("instance deleted", logger.String("instance_id", id))
	return nil
}
