package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/aiwatch-dev/aiwatch/pkg/domain/interfaces"
	"github.com/aiwatch-dev/aiwatch/pkg/domain/model"
	"github.com/aiwatch-dev/aiwatch/pkg/domain/types"
)

const maxArticleResults = 50

// Statistics computes the dashboard statistics response from the article
// corpus.
type Statistics struct {
	repo  interfaces.Repository
	clock func() time.Time
}

// StatisticsOption is a functional option for configuring Statistics
type StatisticsOption func(*Statistics)

// WithStatisticsClock overrides the time source, mainly for tests
func WithStatisticsClock(clock func() time.Time) StatisticsOption {
	return func(u *Statistics) {
		u.clock = clock
	}
}

// NewStatistics creates a Statistics use case
func NewStatistics(repo interfaces.Repository, opts ...StatisticsOption) *Statistics {
	u := &Statistics{
		repo:  repo,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Fetch computes the statistics response for a filter selection. The
// headline counters always cover the whole corpus; the per-country counts
// and article list honor the filters. A nil filter means no filtering.
func (u *Statistics) Fetch(ctx context.Context, filter *model.FilterState) (*model.Statistics, error) {
	if filter == nil {
		filter = model.NewFilterState()
	}

	articles, err := u.repo.ListArticles(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list articles")
	}

	result := &model.Statistics{
		Stats:          u.headlineStats(articles),
		Counts:         countryCounts(articles, filter),
		Articles:       filteredArticles(articles, filter),
		CategoryCounts: categoryCounts(articles, filter),
		SeverityCounts: severityCounts(articles, filter),
	}

	lastUpdate, err := u.repo.GetLastUpdateTime(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get last update time")
	}
	result.LastUpdateTime = lastUpdate

	return result, nil
}

// headlineStats counts the whole corpus regardless of filters. Articles
// without a usable category never count.
func (u *Statistics) headlineStats(articles []*model.Article) model.Stats {
	now := u.clock()
	today := now.Format("2006-01-02")

	var stats model.Stats
	for _, article := range articles {
		if !article.HasCategory() {
			continue
		}
		stats.TotalIncidents++
		if sev, ok := article.Severity(); ok {
			switch sev {
			case types.SeverityFatality:
				stats.TotalDeaths++
			case types.SeverityAccident:
				stats.TotalAccidents++
			}
		}
		if article.PubDate.Format("2006-01-02") == today {
			stats.TodayIncidents++
		}
	}
	return stats
}

// countryCounts tallies each (article, country) pair that survives the
// filters, so a multi-country article counts once per country. Output is
// sorted by country name for a deterministic response.
func countryCounts(articles []*model.Article, filter *model.FilterState) []model.CountryCount {
	tally := map[string]int{}
	for _, article := range articles {
		for _, country := range article.Country {
			if article.MatchesCountry(filter, country) {
				tally[country]++
			}
		}
	}

	counts := make([]model.CountryCount, 0, len(tally))
	for country, count := range tally {
		counts = append(counts, model.CountryCount{Country: country, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Country < counts[j].Country
	})
	return counts
}

// filteredArticles returns matching articles newest first, capped at 50
func filteredArticles(articles []*model.Article, filter *model.FilterState) []*model.Article {
	matched := make([]*model.Article, 0, len(articles))
	for _, article := range articles {
		if article.Matches(filter) {
			matched = append(matched, article)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ID > matched[j].ID
	})
	if len(matched) > maxArticleResults {
		matched = matched[:maxArticleResults]
	}
	return matched
}

func categoryCounts(articles []*model.Article, filter *model.FilterState) []model.CategoryCount {
	tally := map[string]int{}
	for _, article := range articles {
		if article.Matches(filter) {
			tally[article.CategoryBase()]++
		}
	}

	counts := make([]model.CategoryCount, 0, len(tally))
	for category, count := range tally {
		counts = append(counts, model.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Category < counts[j].Category
	})
	return counts
}

func severityCounts(articles []*model.Article, filter *model.FilterState) []model.SeverityCount {
	tally := map[string]int{}
	for _, article := range articles {
		if !article.Matches(filter) {
			continue
		}
		if sev, ok := article.Severity(); ok {
			tally[string(sev)]++
		}
	}

	counts := make([]model.SeverityCount, 0, len(tally))
	for severity, count := range tally {
		counts = append(counts, model.SeverityCount{Severity: severity, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Severity < counts[j].Severity
	})
	return counts
}
