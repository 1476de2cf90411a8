package model

import (
	"strings"
	"time"

	"github.com/aiwatch-dev/aiwatch/pkg/domain/types"
)

// Article represents an ingested incident article. Articles are server-owned
// read models: clients never mutate them.
type Article struct {
	ID            types.ArticleID `json:"id" firestore:"id"`
	Title         string          `json:"title" firestore:"title"`
	Link          string          `json:"link" firestore:"link"`
	Description   string          `json:"description" firestore:"description"`
	Content       string          `json:"content,omitempty" firestore:"content"`
	PubDate       time.Time       `json:"pubDate" firestore:"pubDate"`
	Country       []string        `json:"country" firestore:"country"`
	Category      string          `json:"category" firestore:"category"`
	FinancialLoss *float64        `json:"financialLoss,omitempty" firestore:"financialLoss,omitempty"`
	Casualties    *int            `json:"casualties,omitempty" firestore:"casualties,omitempty"`
	ImageURL      *string         `json:"image_url,omitempty" firestore:"imageURL,omitempty"`
}

// HasCategory reports whether the article carries a usable category.
// Upstream feeds mark unclassifiable articles with "N/A" or an empty string;
// those are excluded from every statistic.
func (a *Article) HasCategory() bool {
	return a.Category != "" && a.Category != "N/A"
}

// Severity derives the severity from the category suffix
func (a *Article) Severity() (types.Severity, bool) {
	return types.SeverityFromCategory(a.Category)
}

// CategoryBase returns the category without its severity suffix
func (a *Article) CategoryBase() string {
	if idx := strings.Index(a.Category, "/"); idx >= 0 {
		return a.Category[:idx]
	}
	return a.Category
}

// Matches reports whether the article satisfies every active filter
// dimension. Empty filter dimensions match everything. Country matching is
// satisfied when any of the article's countries matches; per-country
// statistics use MatchesCountry for the individual pairs instead.
func (a *Article) Matches(f *FilterState) bool {
	if !a.HasCategory() {
		return false
	}
	if !a.matchesSeverity(f) || !a.matchesCategory(f) || !f.DateRange.Contains(a.PubDate) {
		return false
	}
	if len(f.Countries) == 0 {
		return true
	}
	for _, country := range a.Country {
		if matchesAnyCountry(country, f.Countries) {
			return true
		}
	}
	return false
}

// MatchesCountry reports whether the (article, country) pair survives the
// filters. Statistics count each of an article's countries separately.
func (a *Article) MatchesCountry(f *FilterState, country string) bool {
	if country == "" || !a.HasCategory() {
		return false
	}
	if !a.matchesSeverity(f) || !a.matchesCategory(f) || !f.DateRange.Contains(a.PubDate) {
		return false
	}
	if len(f.Countries) == 0 {
		return true
	}
	return matchesAnyCountry(country, f.Countries)
}

func (a *Article) matchesSeverity(f *FilterState) bool {
	if len(f.Severities) == 0 {
		return true
	}
	sev, ok := a.Severity()
	if !ok {
		return false
	}
	for _, want := range f.Severities {
		if sev == want {
			return true
		}
	}
	return false
}

func (a *Article) matchesCategory(f *FilterState) bool {
	if len(f.Categories) == 0 {
		return true
	}
	for _, prefix := range f.Categories {
		if strings.HasPrefix(a.Category, prefix) {
			return true
		}
	}
	return false
}

func matchesAnyCountry(country string, wanted []string) bool {
	lowered := strings.ToLower(country)
	for _, want := range wanted {
		if strings.HasPrefix(lowered, strings.ToLower(want)) {
			return true
		}
	}
	return false
}
