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

type RegistrationService struct {
	repo         ports.RegistrationRepo
	instanceRepo ports.InstanceRepo
	notifier     ports.RegistrationNotifier
	clock        clock.Clock
	logger       logger.Logger
}

func NewRegistrationService(
	repo ports.RegistrationRepo,
	instanceRepo ports.InstanceRepo,
	notifier ports.RegistrationNotifier,
	clk clock.Clock,
	logger logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		repo:         repo,
		instanceRepo: instanceRepo,
		notifier:     notifier,
		clock:        clk,
		logger:       logger,
	}
}

// Submit registers an attendee against one instance. The status depends on
// the instance policy: confirmed when no approval is required, pending
// otherwise, waitlist when capacity is exhausted and the instance allows it.
func (s *RegistrationService) Submit(ctx context.Context, instanceID string, input domain.SubmitRegistrationInput) (*domain.Registration, error) {
	inst, err := s.instanceRepo.GetByID(ctx, instanceID)
	if err != nil {
		return nil, fmt.Errorf("check instance: %w", err)
	}
	if !inst.Published {
		return nil, domain.ErrInstanceNotFound
	}

	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if err := domain.ValidateFormData(inst.FormFields, input.FormData); err != nil {
		return nil, err
	}

	status := domain.RegistrationStatusConfirmed
	if inst.RequiresApproval {
		status = domain.RegistrationStatusPending
	}

	now := s.clock.Now()
	reg := &domain.Registration{
		ID:         uuid.New().String(),
		InstanceID: instanceID,
		UserID:     input.UserID,
		Name:       input.Name,
		Email:      input.Email,
		Status:     status,
		FormData:   input.FormData,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err = s.repo.Submit(ctx, reg); err != nil {
		return nil, fmt.Errorf("submit registration: %w", err)
	}

	s.logger.Info("registration submitted",
		logger.String("registration_id", reg.ID),
		logger.String("instance_id", instanceID),
		logger.String("status", string(reg.Status)),
	)

	if reg.Status == domain.RegistrationStatusConfirmed {
		go s.notifier.NotifyApproved(context.WithoutCancel(ctx), reg, inst)
	} else {
		go s.notifier.NotifySubmitted(context.WithoutCancel(ctx), reg, inst)
	}

	return reg, nil
}

// Approve confirms a pending (or waitlisted) registration. Capacity is
// re-checked at approval time inside the store transaction; a full event
// fails explicitly instead of silently overfilling.
func (s *RegistrationService) Approve(ctx context.Context, id string, review domain.ReviewInput) (*domain.Registration, error) {
	if review.Reviewer == "" {
		return nil, fmt.Errorf("%w: reviewer is required", domain.ErrValidation)
	}

	if err := s.repo.Approve(ctx, id, review); err != nil {
		return nil, err
	}

	reg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload registration: %w", err)
	}

	s.logger.Info("registration approved",
		logger.String("registration_id", id),
		logger.String("reviewer", review.Reviewer),
	)

	s.notifyAsync(ctx, reg, s.notifier.NotifyApproved)
	return reg, nil
}

func (s *RegistrationService) Reject(ctx context.Context, id string, review domain.ReviewInput) (*domain.Registration, error) {
	if review.Reviewer == "" {
		return nil, fmt.Errorf("%w: reviewer is required", domain.ErrValidation)
	}

	if err := s.repo.Reject(ctx, id, review); err != nil {
		return nil, err
	}

	reg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload registration: %w", err)
	}

	s.logger.Info("registration rejected",
		logger.String("registration_id", id),
		logger.String("reviewer", review.Reviewer),
	)

	s.notifyAsync(ctx, reg, s.notifier.NotifyRejected)
	return reg, nil
}

// Cancel frees the attendee's slot immediately.
func (s *RegistrationService) Cancel(ctx context.Context, id string) (*domain.Registration, error) {
	if err := s.repo.Cancel(ctx, id); err != nil {
		return nil, err
	}

	reg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload registration: %w", err)
	}

	s.logger.Info("registration cancelled", logger.String("registration_id", id))

	s.notifyAsync(ctx, reg, s.notifier.NotifyCancelled)
	return reg, nil
}

func (s *RegistrationService) ListByInstance(ctx context.Context, instanceID string) ([]*domain.Registration, error) {
	if _, err := s.instanceRepo.GetByID(ctx, instanceID); err != nil {
		return nil, err
	}
	return s.repo.ListByInstance(ctx, instanceID)
}

// notifyAsync sends fire-and-forget: a failed notification never undoes the
// state transition that triggered it.
func (s *RegistrationService) notifyAsync(
	ctx context.Context,
	reg *domain.Registration,
	notify func(context.Context, *domain.Registration, *domain.EventInstance),
) {
	inst, err := s.instanceRepo.GetByID(ctx, reg.InstanceID)
	if err != nil {
		s.logger.Error("failed to get instance for notification",
			logger.String("instance_id", reg.InstanceID),
			logger.String("error", err.Error()),
		)
		return
	}

	go notify(context.WithoutCancel(ctx), reg, inst)
}
