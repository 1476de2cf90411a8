package geo

import (
	"fmt"

	"github.com/aiwatch-dev/aiwatch/pkg/domain/model"
)

const (
	minMarkerSize = 12.0
	maxMarkerSize = 30.0
)

// Marker is one renderable map marker for a country with at least one
// matching incident.
type Marker struct {
	Country     string      `json:"country"`
	Count       int         `json:"count"`
	Coordinates Coordinates `json:"coordinates"`
	Size        float64     `json:"size"`
	Color       string      `json:"color"`
}

// MarkerSize scales a marker by incident count, clamped to [12, 30] pixels.
func MarkerSize(count int) float64 {
	size := float64(count) * 1.5
	if size < minMarkerSize {
		return minMarkerSize
	}
	if size > maxMarkerSize {
		return maxMarkerSize
	}
	return size
}

// MarkerColor returns an HSL color that shifts from pale to saturated red
// as the incident count approaches 20.
func MarkerColor(count int) string {
	intensity := float64(count) / 20.0
	if intensity > 1 {
		intensity = 1
	}
	hue := 4 - intensity*4
	lightness := 76 - intensity*20
	return fmt.Sprintf("hsl(%g, 86%%, %g%%)", hue, lightness)
}

// Markers builds map markers from per-country incident counts. Countries
// without a known coordinate are skipped.
func Markers(counts []model.CountryCount) []Marker {
	markers := make([]Marker, 0, len(counts))
	for _, c := range counts {
		coords, ok := Lookup(c.Country)
		if !ok {
			continue
		}
		markers = append(markers, Marker{
			Country:     c.Country,
			Count:       c.Count,
			Coordinates: coords,
			Size:        MarkerSize(c.Count),
			Color:       MarkerColor(c.Count),
		})
	}
	return markers
}
