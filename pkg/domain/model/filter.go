package model

import (
	"time"

	"github.com/aiwatch-dev/aiwatch/pkg/domain/types"
)

// DateRange bounds the publication dates of matched articles. Start and End
// are "YYYY-MM-DD" strings; either may be empty for an open bound. Preset
// records the shortcut the range was derived from, and must stay consistent
// with Start/End: picking a custom date clears it to "custom".
type DateRange struct {
	Start  string           `json:"start"`
	End    string           `json:"end"`
	Preset types.DatePreset `json:"preset,omitempty"`
}

// FilterState is the full dashboard filter selection. It is replaced
// wholesale on every user interaction; the With* helpers return a modified
// copy and never mutate the receiver.
type FilterState struct {
	Categories []string         `json:"categories"`
	Severities []types.Severity `json:"severities"`
	Countries  []string         `json:"countries"`
	DateRange  DateRange        `json:"dateRange"`
}

// NewFilterState creates an empty filter selection
func NewFilterState() *FilterState {
	return &FilterState{
		Categories: []string{},
		Severities: []types.Severity{},
		Countries:  []string{},
	}
}

const dateLayout = "2006-01-02"

// DateRangeForPreset derives the concrete start/end dates of a preset
// relative to now. Custom (and unknown) presets yield empty bounds.
func DateRangeForPreset(preset types.DatePreset, now time.Time) DateRange {
	switch preset {
	case types.DatePresetMTD:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return DateRange{Start: start.Format(dateLayout), End: now.Format(dateLayout), Preset: preset}
	case types.DatePresetYTD:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return DateRange{Start: start.Format(dateLayout), End: now.Format(dateLayout), Preset: preset}
	case types.DatePreset2024:
		return DateRange{Start: "2024-01-01", End: "2024-12-31", Preset: preset}
	case types.DatePreset2023:
		return DateRange{Start: "2023-01-01", End: "2023-12-31", Preset: preset}
	default:
		return DateRange{Preset: types.DatePresetCustom}
	}
}

// WithPreset returns a copy with the date range derived from the preset
func (f FilterState) WithPreset(preset types.DatePreset, now time.Time) *FilterState {
	f.DateRange = DateRangeForPreset(preset, now)
	return &f
}

// WithStart returns a copy with a custom start date. Any active preset is
// cleared to "custom" because the range no longer derives from it.
func (f FilterState) WithStart(start string) *FilterState {
	f.DateRange = DateRange{Start: start, End: f.DateRange.End, Preset: types.DatePresetCustom}
	return &f
}

// WithEnd returns a copy with a custom end date, clearing the preset
func (f FilterState) WithEnd(end string) *FilterState {
	f.DateRange = DateRange{Start: f.DateRange.Start, End: end, Preset: types.DatePresetCustom}
	return &f
}

// WithCategories returns a copy with the category selection replaced
func (f FilterState) WithCategories(categories []string) *FilterState {
	f.Categories = append([]string{}, categories...)
	return &f
}

// WithSeverities returns a copy with the severity selection replaced
func (f FilterState) WithSeverities(severities []types.Severity) *FilterState {
	f.Severities = append([]types.Severity{}, severities...)
	return &f
}

// WithCountries returns a copy with the country selection replaced
func (f FilterState) WithCountries(countries []string) *FilterState {
	f.Countries = append([]string{}, countries...)
	return &f
}

// Contains reports whether t falls inside the range. Bounds are inclusive
// whole days; unparseable bounds are ignored rather than rejecting matches.
func (r DateRange) Contains(t time.Time) bool {
	if r.Start != "" {
		if start, err := time.Parse(dateLayout, r.Start); err == nil {
			if t.Before(start) {
				return false
			}
		}
	}
	if r.End != "" {
		if end, err := time.Parse(dateLayout, r.End); err == nil {
			if !t.Before(end.AddDate(0, 0, 1)) {
				return false
			}
		}
	}
	return true
}

// IsZero reports whether no date bound or preset is active
func (r DateRange) IsZero() bool {
	return r.Start == "" && r.End == "" && (r.Preset == "" || r.Preset == types.DatePresetCustom)
}
