package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func TestDistanceKM_KnownPair(t *testing.T) {
	// Dakar to Saint-Louis, roughly 186 km.
	d := DistanceKM(14.7167, -17.4677, 16.0326, -16.4818)

	assert.InDelta(t, 182, d, 10)
}

func TestDistanceKM_SamePoint(t *testing.T) {
	assert.InDelta(t, 0, DistanceKM(14.7, -17.4, 14.7, -17.4), 1e-9)
}

func TestNearest_OrdersByDistanceAscending(t *testing.T) {
	candidates := []Candidate{
		{ID: "far", Latitude: ptr(14.9), Longitude: ptr(-17.4)},
		{ID: "near", Latitude: ptr(14.71), Longitude: ptr(-17.46)},
		{ID: "mid", Latitude: ptr(14.8), Longitude: ptr(-17.4)},
	}

	got := Nearest(14.7, -17.46, candidates, 100, 10)

	require.Len(t, got, 3)
	assert.Equal(t, "near", got[0].Candidate.ID)
	assert.Equal(t, "mid", got[1].Candidate.ID)
	assert.Equal(t, "far", got[2].Candidate.ID)
	assert.Less(t, got[0].DistanceKM, got[1].DistanceKM)
}

func TestNearest_ExcludesMissingCoordinates(t *testing.T) {
	candidates := []Candidate{
		{ID: "no-coords"},
		{ID: "lat-only", Latitude: ptr(14.7)},
		{ID: "ok", Latitude: ptr(14.7), Longitude: ptr(-17.46)},
	}

	got := Nearest(14.7, -17.46, candidates, 50, 10)

	require.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].Candidate.ID)
}

func TestNearest_RespectsRadius(t *testing.T) {
	candidates := []Candidate{
		{ID: "inside", Latitude: ptr(14.71), Longitude: ptr(-17.46)},
		{ID: "outside", Latitude: ptr(16.0), Longitude: ptr(-16.5)},
	}

	got := Nearest(14.7, -17.46, candidates, 10, 10)

	require.Len(t, got, 1)
	assert.Equal(t, "inside", got[0].Candidate.ID)
}

func TestNearest_CapsToDefaultLimit(t *testing.T) {
	var candidates []Candidate
	for i := 0; i < 6; i++ {
		lat := 14.7 + float64(i)*0.01
		candidates = append(candidates, Candidate{ID: string(rune('a' + i)), Latitude: ptr(lat), Longitude: ptr(-17.46)})
	}

	got := Nearest(14.7, -17.46, candidates, 100, 0)

	assert.Len(t, got, DefaultLimit)
}

func TestNearest_EmptyInput(t *testing.T) {
	assert.Empty(t, Nearest(14.7, -17.46, nil, 10, 3))
}
