package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/wb-go/wbf/logger"
)

// Job is one periodic task. The generator and the sweeper run as jobs on
// independent intervals. Run errors are logged; the job retries on its
// next tick.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

type Scheduler struct {
	jobs   []Job
	logger logger.Logger
}

func New(logger logger.Logger, jobs ...Job) *Scheduler {
	return &Scheduler{
		jobs:   jobs,
		logger: logger,
	}
}

// Start runs every job on its own ticker until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	var wg sync.WaitGroup

	for _, job := range s.jobs {
		wg.Add(1)
		go func(job Job) {
			defer wg.Done()
			s.runJob(ctx, job)
		}(job)
	}

	wg.Wait()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) runJob(ctx context.Context, job Job) {
	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	s.logger.Info("job scheduled",
		logger.String("job", job.Name),
		logger.Duration("interval", job.Interval),
	)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx, job)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context, job Job) {
	if err := job.Run(ctx); err != nil {
		s.logger.Error("job run failed",
			logger.String("job", job.Name),
			logger.String("error", err.Error()),
		)
	}
}
