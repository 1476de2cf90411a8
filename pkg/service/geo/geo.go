// Package geo resolves country names to map coordinates and computes
// marker geometry for the incident map.
package geo

import "strings"

// Coordinates is a longitude/latitude pair
type Coordinates struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// Lookup resolves a country name to its center coordinates. Matching is
// case-insensitive and ignores surrounding whitespace. The second return
// value is false when the country is unknown.
func Lookup(country string) (Coordinates, bool) {
	c, ok := countryCoordinates[strings.ToLower(strings.TrimSpace(country))]
	return c, ok
}
