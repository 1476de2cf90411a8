package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/aiwatch-dev/aiwatch/pkg/domain/model"
	"github.com/aiwatch-dev/aiwatch/pkg/domain/types"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestDateRangeForPreset(t *testing.T) {
	t.Run("MTD", func(t *testing.T) {
		r := model.DateRangeForPreset(types.DatePresetMTD, now)
		gt.Equal(t, r.Start, "2025-06-01")
		gt.Equal(t, r.End, "2025-06-15")
		gt.Equal(t, r.Preset, types.DatePresetMTD)
	})

	t.Run("YTD", func(t *testing.T) {
		r := model.DateRangeForPreset(types.DatePresetYTD, now)
		gt.Equal(t, r.Start, "2025-01-01")
		gt.Equal(t, r.End, "2025-06-15")
	})

	t.Run("fixed years", func(t *testing.T) {
		r := model.DateRangeForPreset(types.DatePreset2024, now)
		gt.Equal(t, r.Start, "2024-01-01")
		gt.Equal(t, r.End, "2024-12-31")

		r = model.DateRangeForPreset(types.DatePreset2023, now)
		gt.Equal(t, r.Start, "2023-01-01")
		gt.Equal(t, r.End, "2023-12-31")
	})

	t.Run("custom yields open bounds", func(t *testing.T) {
		r := model.DateRangeForPreset(types.DatePresetCustom, now)
		gt.Equal(t, r.Start, "")
		gt.Equal(t, r.End, "")
		gt.Equal(t, r.Preset, types.DatePresetCustom)
	})
}

func TestFilterStateTransitions(t *testing.T) {
	t.Run("custom date clears preset", func(t *testing.T) {
		f := model.NewFilterState().WithPreset(types.DatePreset2024, now)
		gt.Equal(t, f.DateRange.Preset, types.DatePreset2024)

		f = f.WithStart("2024-03-01")
		gt.Equal(t, f.DateRange.Preset, types.DatePresetCustom)
		gt.Equal(t, f.DateRange.Start, "2024-03-01")
		gt.Equal(t, f.DateRange.End, "2024-12-31")

		f = f.WithEnd("2024-06-30")
		gt.Equal(t, f.DateRange.Preset, types.DatePresetCustom)
		gt.Equal(t, f.DateRange.End, "2024-06-30")
	})

	t.Run("with helpers do not mutate receiver", func(t *testing.T) {
		base := model.NewFilterState()
		derived := base.WithCategories([]string{"Robotics"}).WithCountries([]string{"japan"})

		gt.A(t, base.Categories).Length(0)
		gt.A(t, base.Countries).Length(0)
		gt.A(t, derived.Categories).Length(1)
		gt.A(t, derived.Countries).Length(1)
	})
}

func TestDateRangeContains(t *testing.T) {
	r := model.DateRange{Start: "2025-06-01", End: "2025-06-15"}

	t.Run("inclusive bounds", func(t *testing.T) {
		gt.True(t, r.Contains(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
		gt.True(t, r.Contains(time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC)))
		gt.False(t, r.Contains(time.Date(2025, 5, 31, 23, 59, 59, 0, time.UTC)))
		gt.False(t, r.Contains(time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("open bounds match everything", func(t *testing.T) {
		open := model.DateRange{}
		gt.True(t, open.Contains(time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("unparseable bound is ignored", func(t *testing.T) {
		broken := model.DateRange{Start: "junk", End: "2025-06-15"}
		gt.True(t, broken.Contains(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	})
}

func TestArticleMatches(t *testing.T) {
	article := &model.Article{
		ID:       1,
		Category: "Autonomous Vehicles/Fatality",
		Country:  []string{"united states", "canada"},
		PubDate:  time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	}

	t.Run("empty filter matches", func(t *testing.T) {
		gt.True(t, article.Matches(model.NewFilterState()))
	})

	t.Run("category prefix", func(t *testing.T) {
		gt.True(t, article.Matches(model.NewFilterState().WithCategories([]string{"Autonomous"})))
		gt.False(t, article.Matches(model.NewFilterState().WithCategories([]string{"Robotics"})))
	})

	t.Run("severity from category suffix", func(t *testing.T) {
		gt.True(t, article.Matches(model.NewFilterState().WithSeverities([]types.Severity{types.SeverityFatality})))
		gt.False(t, article.Matches(model.NewFilterState().WithSeverities([]types.Severity{types.SeverityAccident})))
	})

	t.Run("country prefix case-insensitive any-of", func(t *testing.T) {
		gt.True(t, article.Matches(model.NewFilterState().WithCountries([]string{"CANADA"})))
		gt.True(t, article.Matches(model.NewFilterState().WithCountries([]string{"united"})))
		gt.False(t, article.Matches(model.NewFilterState().WithCountries([]string{"japan"})))
	})

	t.Run("uncategorized never matches", func(t *testing.T) {
		na := &model.Article{ID: 2, Category: "N/A", Country: []string{"france"}}
		gt.False(t, na.Matches(model.NewFilterState()))
	})

	t.Run("per-country pair matching", func(t *testing.T) {
		f := model.NewFilterState().WithCountries([]string{"canada"})
		gt.True(t, article.MatchesCountry(f, "canada"))
		gt.False(t, article.MatchesCountry(f, "united states"))
	})
}
