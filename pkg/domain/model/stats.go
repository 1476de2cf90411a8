package model

import "time"

// Stats holds the dashboard's aggregate counters. They are computed over the
// whole corpus regardless of the active filters, matching the headline cards.
type Stats struct {
	TotalIncidents int `json:"total_incidents"`
	TotalDeaths    int `json:"total_deaths"`
	TotalAccidents int `json:"total_accidents"`
	TodayIncidents int `json:"today_incidents"`
}

// CountryCount is a per-country incident tally. Produced fresh on every
// statistics fetch; never mutated after receipt.
type CountryCount struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

// CategoryCount is a per-category incident tally
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// SeverityCount is a per-severity incident tally
type SeverityCount struct {
	Severity string `json:"severity"`
	Count    int    `json:"count"`
}

// Statistics is the full response of a statistics fetch. Optional fields are
// pointers/nil-able so "absent" stays distinguishable from zero values.
type Statistics struct {
	Stats          Stats           `json:"stats"`
	Counts         []CountryCount  `json:"counts"`
	Articles       []*Article      `json:"articles"`
	CategoryCounts []CategoryCount `json:"category_counts"`
	SeverityCounts []SeverityCount `json:"severity_counts"`
	LastUpdateTime *time.Time      `json:"last_update_time"`
}

// TotalCount sums the per-country counts
func TotalCount(counts []CountryCount) int {
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	return total
}
