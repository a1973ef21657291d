// Package region resolves coordinates to coarse countries, currencies and
// climates. Everything here is a hard-coded approximation: four countries,
// latitude climate bands and a short coastal list. Swap RegionLookup or
// ClimateDetector for a real service without touching scoring code.
package region

// BoundingBox is a lat/lng rectangle with a label (country code or place).
type BoundingBox struct {
	Name   string
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// Contains reports whether the point lies inside the box, edges included.
func (b BoundingBox) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

// DefaultCountry is used for any point outside the known regions.
const DefaultCountry = "US"

// RegionLookup maps coordinates to a country code. known is false when the
// lookup fell back to DefaultCountry.
type RegionLookup interface {
	CountryFor(lat, lng float64) (country string, known bool)
}

// DefaultRegions are checked in order; Singapore sits inside the Malaysia
// box and must come first.
var DefaultRegions = []BoundingBox{
	{Name: "SG", MinLat: 1.15, MaxLat: 1.48, MinLng: 103.6, MaxLng: 104.1},
	{Name: "MY", MinLat: 0.85, MaxLat: 7.4, MinLng: 99.6, MaxLng: 119.3},
	{Name: "GB", MinLat: 49.8, MaxLat: 60.9, MinLng: -8.7, MaxLng: 1.8},
	{Name: "AU", MinLat: -43.7, MaxLat: -10.6, MinLng: 113.0, MaxLng: 153.7},
}

// BoundingBoxLookup implements RegionLookup over an ordered box list.
type BoundingBoxLookup struct {
	Regions []BoundingBox
}

// NewBoundingBoxLookup creates a lookup over DefaultRegions.
func NewBoundingBoxLookup() *BoundingBoxLookup {
	return &BoundingBoxLookup{Regions: DefaultRegions}
}

func (l *BoundingBoxLookup) CountryFor(lat, lng float64) (string, bool) {
	for _, r := range l.Regions {
		if r.Contains(lat, lng) {
			return r.Name, true
		}
	}
	return DefaultCountry, false
}
