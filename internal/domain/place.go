package domain

// Place is a directory entry (attraction, vendor, stay) used for nearby
// recommendations on event detail views. Coordinates are optional.
type Place struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// NearbyPlace is a place ranked by great-circle distance from an event.
type NearbyPlace struct {
	Place      Place   `json:"place"`
	DistanceKM float64 `json:"distance_km"`
}
