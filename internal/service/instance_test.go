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

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func newInstanceService(t *testing.T, now time.Time) (*InstanceService, *mocks.MockInstanceRepo, *mocks.MockRegistrationRepo, *mocks.MockPlaceRepo) {
	t.Helper()
	repo := mocks.NewMockInstanceRepo(t)
	registrationRepo := mocks.NewMockRegistrationRepo(t)
	placeRepo := mocks.NewMockPlaceRepo(t)
	svc := NewInstanceService(repo, registrationRepo, placeRepo, clock.NewFake(now), newTestLogger(t))
	return svc, repo, registrationRepo, placeRepo
}

func TestInstanceService_CreateManual(t *testing.T) {
	now := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	svc, repo, _, _ := newInstanceService(t, now)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, e *domain.EventInstance) {
		assert.NotEmpty(t, e.ID)
		assert.False(t, e.Generated)
		assert.Nil(t, e.TemplateID)
	}).Return(nil)

	inst, err := svc.CreateManual(context.Background(), domain.CreateInstanceInput{
		Title:     "Wine Tasting Evening",
		StartTime: now.Add(48 * time.Hour),
		Published: true,
	})

	require.NoError(t, err)
	assert.False(t, inst.Generated)
}

func TestInstanceService_CreateManual_Validation(t *testing.T) {
	now := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	svc, _, _, _ := newInstanceService(t, now)

	_, err := svc.CreateManual(context.Background(), domain.CreateInstanceInput{
		StartTime: now,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestInstanceService_GetDetails(t *testing.T) {
	now := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	svc, repo, registrationRepo, placeRepo := newInstanceService(t, now)

	inst := &domain.EventInstance{
		ID:        "i1",
		Title:     "Old Town Food Walk",
		StartTime: now.Add(-time.Hour),
		Capacity:  intPtr(10),
		Latitude:  floatPtr(52.5200),
		Longitude: floatPtr(13.4050),
		Published: true,
	}

	repo.EXPECT().GetByID(mock.Anything, "i1").Return(inst, nil)
	registrationRepo.EXPECT().CountConfirmed(mock.Anything, "i1").Return(7, nil)
	registrationRepo.EXPECT().ListByInstance(mock.Anything, "i1").Return([]*domain.Registration{
		{ID: "r1", Status: domain.RegistrationStatusConfirmed},
		{ID: "r2", Status: domain.RegistrationStatusPending},
	}, nil)
	placeRepo.EXPECT().ListWithCoordinates(mock.Anything).Return([]*domain.Place{
		{ID: "p1", Name: "Harbor Museum", Category: "attraction", Latitude: floatPtr(52.5210), Longitude: floatPtr(13.4070)},
		{ID: "p2", Name: "Far Lodge", Category: "stay", Latitude: floatPtr(48.8566), Longitude: floatPtr(2.3522)},
	}, nil)

	details, err := svc.GetDetails(context.Background(), "i1")

	require.NoError(t, err)
	assert.True(t, details.Live.HappeningNow)
	require.NotNil(t, details.SpotsLeft)
	assert.Equal(t, 3, *details.SpotsLeft)
	assert.Len(t, details.Registrations, 2)
	// Paris is well outside the nearby radius.
	require.Len(t, details.NearbyPlaces, 1)
	assert.Equal(t, "Harbor Museum", details.NearbyPlaces[0].Place.Name)
}

func TestInstanceService_GetDetails_NoCapacityNoCoords(t *testing.T) {
	now := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	svc, repo, registrationRepo, _ := newInstanceService(t, now)

	inst := &domain.EventInstance{
		ID:        "i1",
		StartTime: now.Add(24 * time.Hour),
		Published: true,
	}

	repo.EXPECT().GetByID(mock.Anything, "i1").Return(inst, nil)
	registrationRepo.EXPECT().ListByInstance(mock.Anything, "i1").Return(nil, nil)

	details, err := svc.GetDetails(context.Background(), "i1")

	require.NoError(t, err)
	assert.Nil(t, details.SpotsLeft)
	assert.Nil(t, details.NearbyPlaces)
	assert.False(t, details.Live.HappeningNow)
}

func TestInstanceService_GetDetails_PlacesLookupFailureIsNotFatal(t *testing.T) {
	now := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	svc, repo, registrationRepo, placeRepo := newInstanceService(t, now)

	inst := &domain.EventInstance{
		ID:        "i1",
		StartTime: now.Add(24 * time.Hour),
		Latitude:  floatPtr(52.52),
		Longitude: floatPtr(13.40),
		Published: true,
	}

	repo.EXPECT().GetByID(mock.Anything, "i1").Return(inst, nil)
	registrationRepo.EXPECT().ListByInstance(mock.Anything, "i1").Return(nil, nil)
	placeRepo.EXPECT().ListWithCoordinates(mock.Anything).Return(nil, errors.New("places table gone"))

	details, err := svc.GetDetails(context.Background(), "i1")

	require.NoError(t, err)
	assert.Nil(t, details.NearbyPlaces)
}

func TestInstanceService_List_UnknownPeriod(t *testing.T) {
	now := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	svc, _, _, _ := newInstanceService(t, now)

	_, err := svc.List(context.Background(), domain.InstanceFilter{Period: "someday"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestInstanceService_List(t *testing.T) {
	now := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	svc, repo, _, _ := newInstanceService(t, now)

	filter := domain.InstanceFilter{Period: domain.PeriodUpcoming}
	repo.EXPECT().List(mock.Anything, filter, now).Return([]*domain.EventInstance{{ID: "i1"}}, nil)

	out, err := svc.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestInstanceService_Delete_Manual(t *testing.T) {
	now := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	svc, repo, _, _ := newInstanceService(t, now)

	repo.EXPECT().GetByID(mock.Anything, "i1").Return(&domain.EventInstance{ID: "i1", Generated: false}, nil)
	repo.EXPECT().Delete(mock.Anything, "i1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "i1"))
}

func TestInstanceService_Delete_GeneratedRejected(t *testing.T) {
	now := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	svc, repo, _, _ := newInstanceService(t, now)

	repo.EXPECT().GetByID(mock.Anything, "i1").Return(&domain.EventInstance{ID: "i1", Generated: true}, nil)

	assert.ErrorIs(t, svc.Delete(context.Background(), "i1"), domain.ErrValidation)
}
