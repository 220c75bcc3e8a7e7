package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_RunsJobOnTicks(t *testing.T) {
	log := newTestLogger(t)

	var runs atomic.Int32
	s := New(log, Job{
		Name:     "generator",
		Interval: 30 * time.Millisecond,
		Run: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, runs.Load(), int32(3))
}

func TestScheduler_IndependentIntervals(t *testing.T) {
	log := newTestLogger(t)

	var fast, slow atomic.Int32
	s := New(log,
		Job{Name: "generator", Interval: 25 * time.Millisecond, Run: func(ctx context.Context) error {
			fast.Add(1)
			return nil
		}},
		Job{Name: "sweeper", Interval: 80 * time.Millisecond, Run: func(ctx context.Context) error {
			slow.Add(1)
			return nil
		}},
	)

	ctx, cancel := context.WithTimeout(context.Background(), 180*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, fast.Load(), int32(4))
	assert.LessOrEqual(t, slow.Load(), int32(2))
	assert.GreaterOrEqual(t, slow.Load(), int32(1))
}

func TestScheduler_JobErrorDoesNotStopTicks(t *testing.T) {
	log := newTestLogger(t)

	var runs atomic.Int32
	s := New(log, Job{
		Name:     "generator",
		Interval: 30 * time.Millisecond,
		Run: func(ctx context.Context) error {
			runs.Add(1)
			return errors.New("db error")
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, runs.Load(), int32(2))
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	log := newTestLogger(t)

	s := New(log, Job{
		Name:     "generator",
		Interval: time.Second, // interval longer than test
		Run:      func(ctx context.Context) error { return nil },
	})

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
