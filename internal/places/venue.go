package places

import "math"

// Venue is a place offering an activity near the family.
type Venue struct {
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Distance     *float64 `json:"distance,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
	TotalRatings *int     `json:"totalRatings,omitempty"`
	PlaceID      string   `json:"placeId"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Types        []string `json:"types"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

const earthRadiusMeters = 6371000.0

// DistanceMeters is the great-circle distance between two points.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLng := (lng2 - lng1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
