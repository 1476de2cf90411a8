// Package chart prepares aggregated count data for pie and bar charts.
package chart

import (
	"sort"
	"strings"
)

const (
	maxSlices     = 20
	maxLabelRunes = 12
)

// Slice is one labeled segment of a chart
type Slice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Aggregate sorts slices by value descending and keeps the top entries,
// folding the remainder into a trailing "Others" slice when its sum is
// positive. Ties preserve the caller's ordering. The total value is
// conserved and labels are display-formatted.
func Aggregate(slices []Slice) []Slice {
	out := make([]Slice, len(slices))
	for i, s := range slices {
		out[i] = Slice{Label: FormatLabel(s.Label), Value: s.Value}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})

	if len(out) < maxSlices {
		return out
	}

	others := 0
	for _, s := range out[maxSlices-1:] {
		others += s.Value
	}
	out = out[:maxSlices-1]
	if others > 0 {
		out = append(out, Slice{Label: "Others", Value: others})
	}
	return out
}

// FormatLabel title-cases each word and truncates long labels to 12 runes
// with a "..." suffix.
func FormatLabel(label string) string {
	formatted := TitleCase(label)

	runes := []rune(formatted)
	if len(runes) > maxLabelRunes {
		return string(runes[:maxLabelRunes]) + "..."
	}
	return formatted
}

// TitleCase capitalizes the first letter of each whitespace-separated word
// and lowercases the rest.
func TitleCase(label string) string {
	words := strings.Fields(label)
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

func titleWord(w string) string {
	runes := []rune(strings.ToLower(w))
	if len(runes) == 0 {
		return w
	}
	runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
	return string(runes)
}
