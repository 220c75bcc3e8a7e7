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
	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/domain"
	"github.com/amadououry885/tourism-analytics-dashboard-sub000/internal/service/ports/mocks"
)

type stubGenerator struct {
	created []*domain.EventInstance
	err     error
	calls   int
}

func (g *stubGenerator) Generate(ctx context.Context, tpl *domain.EventTemplate, target int) ([]*domain.EventInstance, error) {
	g.calls++
	return g.created, g.err
}

func validTemplateInput() domain.CreateTemplateInput {
	return domain.CreateTemplateInput{
		Title:      "Sunset Kayak Tour",
		Location:   "Harbor Pier 3",
		StartTime:  time.Date(2025, 7, 7, 18, 30, 0, 0, time.UTC),
		Recurrence: domain.RecurrenceWeekly,
		Published:  true,
	}
}

func TestTemplateService_Create_Success(t *testing.T) {
	repo := mocks.NewMockTemplateRepo(t)
	instanceRepo := mocks.NewMockInstanceRepo(t)
	gen := &stubGenerator{}
	clk := clock.NewFake(time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC))

	svc := NewTemplateService(repo, instanceRepo, gen, clk, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, tpl *domain.EventTemplate) {
		assert.NotEmpty(t, tpl.ID)
		assert.Equal(t, "Sunset Kayak Tour", tpl.Title)
		assert.Equal(t, domain.RecurrenceWeekly, tpl.Recurrence)
		assert.Equal(t, clk.Now(), tpl.CreatedAt)
	}).Return(nil)

	tpl, err := svc.CreateTemplate(context.Background(), validTemplateInput())

	require.NoError(t, err)
	assert.NotEmpty(t, tpl.ID)
	assert.Equal(t, 1, gen.calls)
}

func TestTemplateService_Create_GeneratorFailureIsNotFatal(t *testing.T) {
	repo := mocks.NewMockTemplateRepo(t)
	instanceRepo := mocks.NewMockInstanceRepo(t)
	gen := &stubGenerator{err: errors.New("db busy")}
	clk := clock.NewFake(time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC))

	svc := NewTemplateService(repo, instanceRepo, gen, clk, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	tpl, err := svc.CreateTemplate(context.Background(), validTemplateInput())

	// The template exists; the scheduler tick will generate instances later.
	require.NoError(t, err)
	assert.NotEmpty(t, tpl.ID)
}

func TestTemplateService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.CreateTemplateInput)
	}{
		{"empty title", func(in *domain.CreateTemplateInput) { in.Title = "" }},
		{"zero start", func(in *domain.CreateTemplateInput) { in.StartTime = time.Time{} }},
		{"unknown rule", func(in *domain.CreateTemplateInput) { in.Recurrence = "fortnightly" }},
		{"non-recurring", func(in *domain.CreateTemplateInput) { in.Recurrence = domain.RecurrenceNone }},
		{"end before start", func(in *domain.CreateTemplateInput) {
			end := in.StartTime.Add(-time.Hour)
			in.EndTime = &end
		}},
		{"recurrence end before start", func(in *domain.CreateTemplateInput) {
			recEnd := in.StartTime.Add(-24 * time.Hour)
			in.RecurrenceEnd = &recEnd
		}},
		{"zero capacity", func(in *domain.CreateTemplateInput) {
			capacity := 0
			in.Capacity = &capacity
		}},
		{"duplicate form field keys", func(in *domain.CreateTemplateInput) {
			in.FormFields = []domain.FormField{
				{Key: "diet", Label: "Diet", Type: domain.FieldTypeText},
				{Key: "diet", Label: "Diet again", Type: domain.FieldTypeText},
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockTemplateRepo(t)
			instanceRepo := mocks.NewMockInstanceRepo(t)
			gen := &stubGenerator{}
			clk := clock.NewFake(time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC))

			svc := NewTemplateService(repo, instanceRepo, gen, clk, newTestLogger(t))

			input := validTemplateInput()
			tt.mutate(&input)

			_, err := svc.CreateTemplate(context.Background(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Zero(t, gen.calls)
		})
	}
}

func TestTemplateService_GetDetails(t *testing.T) {
	repo := mocks.NewMockTemplateRepo(t)
	instanceRepo := mocks.NewMockInstanceRepo(t)
	now := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	clk := clock.NewFake(now)

	svc := NewTemplateService(repo, instanceRepo, &stubGenerator{}, clk, newTestLogger(t))

	tpl := &domain.EventTemplate{ID: "tpl-1", Title: "Market Tour"}
	future := []*domain.EventInstance{
		{ID: "i1", StartTime: now.Add(24 * time.Hour)},
		{ID: "i2", StartTime: now.Add(8 * 24 * time.Hour)},
	}

	repo.EXPECT().GetByID(mock.Anything, "tpl-1").Return(tpl, nil)
	instanceRepo.EXPECT().ListFutureByTemplate(mock.Anything, "tpl-1", now).Return(future, nil)

	details, err := svc.GetDetails(context.Background(), "tpl-1")

	require.NoError(t, err)
	assert.Equal(t, "Market Tour", details.Template.Title)
	require.Len(t, details.FutureInstances, 2)
	assert.Equal(t, "i1", details.FutureInstances[0].ID)
}

func TestTemplateService_GetDetails_NotFound(t *testing.T) {
	repo := mocks.NewMockTemplateRepo(t)
	instanceRepo := mocks.NewMockInstanceRepo(t)
	clk := clock.NewFake(time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC))

	svc := NewTemplateService(repo, instanceRepo, &stubGenerator{}, clk, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrTemplateNotFound)

	_, err := svc.GetDetails(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestTemplateService_Delete(t *testing.T) {
	repo := mocks.NewMockTemplateRepo(t)
	instanceRepo := mocks.NewMockInstanceRepo(t)
	clk := clock.NewFake(time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC))

	svc := NewTemplateService(repo, instanceRepo, &stubGenerator{}, clk, newTestLogger(t))

	repo.EXPECT().Delete(mock.Anything, "tpl-1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "tpl-1"))
}

func TestTemplateService_Delete_NotFound(t *testing.T) {
	repo := mocks.NewMockTemplateRepo(t)
	instanceRepo := mocks.NewMockInstanceRepo(t)
	clk := clock.NewFake(time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC))

	svc := NewTemplateService(repo, instanceRepo, &stubGenerator{}, clk, newTestLogger(t))

	repo.EXPECT().Delete(mock.Anything, "missing").Return(domain.ErrTemplateNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), domain.ErrTemplateNotFound)
}
