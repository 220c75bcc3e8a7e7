// Package geo ranks directory entries by great-circle distance. Pure helper
// reused by event detail views.
package geo

import (
	"math"
	"sort"
)

const (
	earthRadiusKM = 6371.0

	// DefaultLimit caps how many matches a detail view shows.
	DefaultLimit = 3
)

type Candidate struct {
	ID        string
	Name      string
	Category  string
	Latitude  *float64
	Longitude *float64
}

type Match struct {
	Candidate  Candidate
	DistanceKM float64
}

// Nearest returns the candidates within radiusKM of the origin, closest
// first, capped to limit (DefaultLimit when limit <= 0). Candidates without
// coordinates are excluded, never treated as distance zero.
func Nearest(lat, lon float64, candidates []Candidate, radiusKM float64, limit int) []Match {
	if limit <= 0 {
		limit = DefaultLimit
	}

	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		if c.Latitude == nil || c.Longitude == nil {
			continue
		}
		d := DistanceKM(lat, lon, *c.Latitude, *c.Longitude)
		if d > radiusKM {
			continue
		}
		matches = append(matches, Match{Candidate: c, DistanceKM: d})
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].DistanceKM < matches[j].DistanceKM
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// DistanceKM computes the haversine great-circle distance between two
// coordinates in kilometres.
func DistanceKM(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := radians(lat1)
	phi2 := radians(lat2)
	dPhi := radians(lat2 - lat1)
	dLambda := radians(lon2 - lon1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKM * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
