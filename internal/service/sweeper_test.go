package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/clock"
	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/service/ports/mocks"
)

func TestSweeperService_Sweep(t *testing.T) {
	instanceRepo := mocks.NewMockInstanceRepo(t)
	now := time.Date(2025, 7, 1, 3, 0, 0, 0, time.UTC)
	clk := clock.NewFake(now)

	svc := NewSweeperService(instanceRepo, 90, clk, newTestLogger(t))

	wantCutoff := now.AddDate(0, 0, -90)
	instanceRepo.EXPECT().DeleteExpiredGenerated(mock.Anything, wantCutoff).Return(int64(4), nil)

	deleted, err := svc.Sweep(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
}

func TestSweeperService_Sweep_RepoError(t *testing.T) {
	instanceRepo := mocks.NewMockInstanceRepo(t)
	clk := clock.NewFake(time.Date(2025, 7, 1, 3, 0, 0, 0, time.UTC))

	svc := NewSweeperService(instanceRepo, 30, clk, newTestLogger(t))

	dbErr := errors.New("timeout")
	instanceRepo.EXPECT().DeleteExpiredGenerated(mock.Anything, mock.Anything).Return(int64(0), dbErr)

	_, err := svc.Sweep(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}
