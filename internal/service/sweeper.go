package service

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/clock"
	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/service/ports"
)

type SweeperService struct {
	instanceRepo  ports.InstanceRepo
	retentionDays int
	clock         clock.Clock
	logger        logger.Logger
}

func NewSweeperService(
	instanceRepo ports.InstanceRepo,
	retentionDays int,
	clk clock.Clock,
	logger logger.Logger,
) *SweeperService {
	return &SweeperService{
		instanceRepo:  instanceRepo,
		retentionDays: retentionDays,
		clock:         clk,
		logger:        logger,
	}
}

// Sweep prunes generated instances that ended before the retention window.
// Templates and manually created instances are never candidates.
func (s *SweeperService) Sweep(ctx context.Context) (int64, error) {
	cutoff := s.clock.Now().AddDate(0, 0, -s.retentionDays)

	deleted, err := s.instanceRepo.DeleteExpiredGenerated(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("sweep instances: %w", err)
	}

	if deleted > 0 {
		s.logger.Info("old generated instances swept",
			logger.Int64("deleted", deleted),
			logger.String("cutoff", cutoff.String()),
		)
	}

	return deleted, nil
}
