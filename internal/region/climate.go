package region

import (
	"math"

	"github.com/alexanderramin/sprout/internal/domain"
)

// ClimateDetector answers the climate questions the feasibility scorer needs.
type ClimateDetector interface {
	DetectClimateZone(lat, lng float64) domain.ClimateZone
	IsCoastalRegion(lat, lng float64) bool
}

// AridRegions override the latitude bands.
var AridRegions = []BoundingBox{
	{Name: "sahara", MinLat: 15, MaxLat: 32, MinLng: -15, MaxLng: 32},
	{Name: "arabia", MinLat: 12, MaxLat: 32, MinLng: 34, MaxLng: 60},
	{Name: "central-australia", MinLat: -32, MaxLat: -20, MinLng: 120, MaxLng: 145},
	{Name: "us-southwest", MinLat: 31, MaxLat: 37, MinLng: -117, MaxLng: -104},
}

// CoastalRegions is a short list of coastal metro areas.
var CoastalRegions = []BoundingBox{
	{Name: "singapore", MinLat: 1.15, MaxLat: 1.48, MinLng: 103.6, MaxLng: 104.1},
	{Name: "penang", MinLat: 5.2, MaxLat: 5.6, MinLng: 100.1, MaxLng: 100.6},
	{Name: "kota-kinabalu", MinLat: 5.8, MaxLat: 6.2, MinLng: 115.9, MaxLng: 116.3},
	{Name: "hong-kong", MinLat: 22.15, MaxLat: 22.6, MinLng: 113.8, MaxLng: 114.45},
	{Name: "sydney", MinLat: -34.2, MaxLat: -33.5, MinLng: 150.9, MaxLng: 151.4},
	{Name: "perth", MinLat: -32.3, MaxLat: -31.6, MinLng: 115.6, MaxLng: 116.1},
	{Name: "brisbane-gold-coast", MinLat: -28.3, MaxLat: -27.0, MinLng: 152.9, MaxLng: 153.6},
	{Name: "brighton", MinLat: 50.8, MaxLat: 50.9, MinLng: -0.25, MaxLng: -0.0},
	{Name: "dubai", MinLat: 24.9, MaxLat: 25.4, MinLng: 55.0, MaxLng: 55.5},
	{Name: "miami", MinLat: 25.6, MaxLat: 26.0, MinLng: -80.4, MaxLng: -80.0},
	{Name: "los-angeles", MinLat: 33.6, MaxLat: 34.1, MinLng: -118.6, MaxLng: -118.2},
	{Name: "san-francisco", MinLat: 37.6, MaxLat: 37.85, MinLng: -122.55, MaxLng: -122.35},
}

// CoarseClimate implements ClimateDetector with latitude bands and box lists.
type CoarseClimate struct {
	Arid    []BoundingBox
	Coastal []BoundingBox
}

// NewCoarseClimate creates a detector over AridRegions and CoastalRegions.
func NewCoarseClimate() *CoarseClimate {
	return &CoarseClimate{Arid: AridRegions, Coastal: CoastalRegions}
}

func (c *CoarseClimate) DetectClimateZone(lat, lng float64) domain.ClimateZone {
	for _, b := range c.Arid {
		if b.Contains(lat, lng) {
			return domain.ClimateArid
		}
	}
	abs := math.Abs(lat)
	switch {
	case abs <= 23.5:
		return domain.ClimateTropical
	case abs <= 35:
		return domain.ClimateSubtropical
	case abs <= 55:
		return domain.ClimateTemperate
	default:
		return domain.ClimateCold
	}
}

func (c *CoarseClimate) IsCoastalRegion(lat, lng float64) bool {
	for _, b := range c.Coastal {
		if b.Contains(lat, lng) {
			return true
		}
	}
	return false
}
