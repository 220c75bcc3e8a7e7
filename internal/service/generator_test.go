package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/clock"
	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/domain"
	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func weeklyTemplate(anchor time.Time) *domain.EventTemplate {
	return &domain.EventTemplate{
		ID:         "tpl-1",
		Title:      "Guided City Walk",
		Recurrence: domain.RecurrenceWeekly,
		StartTime:  anchor,
		Published:  true,
	}
}

func TestGeneratorService_Generate_NonRecurring(t *testing.T) {
	templateRepo := mocks.NewMockTemplateRepo(t)
	instanceRepo := mocks.NewMockInstanceRepo(t)
	clk := clock.NewFake(time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC))

	svc := NewGeneratorService(templateRepo, instanceRepo, clk, newTestLogger(t))

	tpl := weeklyTemplate(time.Date(2025, 1, 6, 20, 0, 0, 0, time.UTC))
	tpl.Recurrence = domain.RecurrenceNone

	created, err := svc.Generate(context.Background(), tpl, 1)

	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestGeneratorService_Generate_NextFutureOccurrence(t *testing.T) {
	templateRepo := mocks.NewMockTemplateRepo(t)
	instanceRepo := mocks.NewMockInstanceRepo(t)
	// Wednesday; the template anchor is a Monday evening months back.
	clk := clock.NewFake(time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC))

	svc := NewGeneratorService(templateRepo, instanceRepo, clk, newTestLogger(t))

	anchor := time.Date(2025, 1, 6, 20, 0, 0, 0, time.UTC)
	tpl := weeklyTemplate(anchor)

	wantStart := time.Date(2025, 6, 16, 20, 0, 0, 0, time.UTC)

	instanceRepo.EXPECT().ExistsForDate(mock.Anything, "tpl-1", wantStart).Return(false, nil)
	instanceRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, e *domain.EventInstance) {
		assert.Equal(t, wantStart, e.StartTime)
		require.NotNil(t, e.EndTime)
		assert.Equal(t, wantStart.Add(domain.DefaultEventSpan), *e.EndTime)
		assert.True(t, e.Generated)
		require.NotNil(t, e.TemplateID)
		assert.Equal(t, "tpl-1", *e.TemplateID)
		assert.Equal(t, tpl.Title, e.Title)
	}).Return(nil)

	created, err := svc.Generate(context.Background(), tpl, 1)

	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, wantStart, created[0].StartTime)
}

func TestGeneratorService_Generate_SpanFollowsTemplateEndTime(t *testing.T) {
	templateRepo := mocks.NewMockTemplateRepo(t)
	instanceRepo := mocks.NewMockInstanceRepo(t)
	clk := clock.NewFake(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	svc := NewGeneratorService(templateRepo, instanceRepo, clk, newTestLogger(t))

	anchor := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	end := anchor.Add(3 * time.Hour)
	tpl := weeklyTemplate(anchor)
	tpl.EndTime = &end

	instanceRepo.EXPECT().ExistsForDate(mock.Anything, "tpl-1", anchor).Return(false, nil)
	instanceRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, e *domain.EventInstance) {
		require.NotNil(t, e.EndTime)
		assert.Equal(t, e.StartTime.Add(3*time.Hour), *e.EndTime)
	}).Return(nil)

	created, err := svc.Generate(context.Background(), tpl, 1)

	require.NoError(t, err)
	require.Len(t, created, 1)
}

func TestGeneratorService_Generate_SecondRunCreatesNothing(t *testing.T) {
	templateRepo := mocks.NewMockTemplateRepo(t)
	instanceRepo := mocks.NewMockInstanceRepo(t)
	clk := clock.NewFake(time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC))

	svc := NewGeneratorService(templateRepo, instanceRepo, clk, newTestLogger(t))

	anchor := time.Date(2025, 1, 6, 20, 0, 0, 0, time.UTC)
	// Recurrence ends right after the single remaining future occurrence.
	recEnd := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)
	tpl := weeklyTemplate(anchor)
	tpl.RecurrenceEnd = &recEnd

	wantStart := time.Date(2025, 6, 16, 20, 0, 0, 0, time.UTC)

	instanceRepo.EXPECT().ExistsForDate(mock.Anything, "tpl-1", wantStart).Return(true, nil)

	created, err := svc.Generate(context.Background(), tpl, 1)

	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestGeneratorService_Generate_RecoversFromInsertRace(t *testing.T) {
	templateRepo := mocks.NewMockTemplateRepo(t)
	instanceRepo := mocks.NewMockInstanceRepo(t)
	clk := clock.NewFake(time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC))

	svc := NewGeneratorService(templateRepo, instanceRepo, clk, newTestLogger(t))

	tpl := weeklyTemplate(time.Date(2025, 1, 6, 20, 0, 0, 0, time.UTC))

	first := time.Date(2025, 6, 16, 20, 0, 0, 0, time.UTC)
	second := time.Date(2025, 6, 23, 20, 0, 0, 0, time.UTC)

	// A concurrent replica wins the first insert; the generator moves on
	// to the next occurrence instead of failing.
	instanceRepo.EXPECT().ExistsForDate(mock.Anything, "tpl-1", first).Return(false, nil)
	instanceRepo.EXPECT().ExistsForDate(mock.Anything, "tpl-1", second).Return(false, nil)
	instanceRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrInstanceExists).Once()
	instanceRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

	created, err := svc.Generate(context.Background(), tpl, 1)

	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, second, created[0].StartTime)
}

func TestGeneratorService_Generate_RepoError(t *testing.T) {
	templateRepo := mocks.NewMockTemplateRepo(t)
	instanceRepo := mocks.NewMockInstanceRepo(t)
	clk := clock.NewFake(time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC))

	svc := NewGeneratorService(templateRepo, instanceRepo, clk, newTestLogger(t))

	tpl := weeklyTemplate(time.Date(2025, 1, 6, 20, 0, 0, 0, time.UTC))

	dbErr := errors.New("connection reset")
	instanceRepo.EXPECT().ExistsForDate(mock.Anything, "tpl-1", mock.Anything).Return(false, dbErr)

	_, err := svc.Generate(context.Background(), tpl, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestGeneratorService_GenerateDue(t *testing.T) {
	templateRepo := mocks.NewMockTemplateRepo(t)
	instanceRepo := mocks.NewMockInstanceRepo(t)
	now := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)
	clk := clock.NewFake(now)

	svc := NewGeneratorService(templateRepo, instanceRepo, clk, newTestLogger(t))

	healthy := weeklyTemplate(time.Date(2025, 1, 6, 20, 0, 0, 0, time.UTC))
	broken := weeklyTemplate(time.Date(2025, 1, 7, 18, 0, 0, 0, time.UTC))
	broken.ID = "tpl-2"

	templateRepo.EXPECT().ListDue(mock.Anything, now).Return([]*domain.EventTemplate{healthy, broken}, nil)

	instanceRepo.EXPECT().ExistsForDate(mock.Anything, "tpl-1", mock.Anything).Return(false, nil)
	instanceRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	// The second template fails; GenerateDue logs and keeps going.
	instanceRepo.EXPECT().ExistsForDate(mock.Anything, "tpl-2", mock.Anything).Return(false, errors.New("boom"))

	total, err := svc.GenerateDue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestGeneratorService_GenerateDue_ListError(t *testing.T) {
	templateRepo := mocks.NewMockTemplateRepo(t)
	instanceRepo := mocks.NewMockInstanceRepo(t)
	clk := clock.NewFake(time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC))

	svc := NewGeneratorService(templateRepo, instanceRepo, clk, newTestLogger(t))

	dbErr := errors.New("down")
	templateRepo.EXPECT().ListDue(mock.Anything, mock.Anything).Return(nil, dbErr)

	_, err := svc.GenerateDue(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}
