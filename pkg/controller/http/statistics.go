package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/aiwatch-dev/aiwatch/pkg/domain/model"
	"github.com/aiwatch-dev/aiwatch/pkg/domain/types"
	"github.com/aiwatch-dev/aiwatch/pkg/service/chart"
	"github.com/aiwatch-dev/aiwatch/pkg/service/geo"
	"github.com/aiwatch-dev/aiwatch/pkg/utils/apperr"
)

// statisticsRequest is the wire shape of a statistics fetch. Severities
// accept the legacy "Death" spelling alongside "Fatality".
type statisticsRequest struct {
	Filters struct {
		Categories []string `json:"categories"`
		Severities []string `json:"severities"`
		Countries  []string `json:"countries"`
		DateRange  struct {
			Start  string `json:"start"`
			End    string `json:"end"`
			Preset string `json:"preset"`
		} `json:"dateRange"`
	} `json:"filters"`
}

func (req *statisticsRequest) filterState() *model.FilterState {
	f := model.NewFilterState()
	f.Categories = append(f.Categories, req.Filters.Categories...)
	f.Countries = append(f.Countries, req.Filters.Countries...)
	for _, raw := range req.Filters.Severities {
		if sev, ok := types.ParseSeverity(raw); ok {
			f.Severities = append(f.Severities, sev)
		}
	}
	f.DateRange = model.DateRange{
		Start:  req.Filters.DateRange.Start,
		End:    req.Filters.DateRange.End,
		Preset: types.DatePreset(req.Filters.DateRange.Preset),
	}
	return f
}

// statisticsResponse extends the raw statistics with precomputed map markers
// and chart slices so clients render without re-aggregating.
type statisticsResponse struct {
	*model.Statistics
	Markers       []geo.Marker  `json:"markers"`
	CountryChart  []chart.Slice `json:"country_chart"`
	CategoryChart []chart.Slice `json:"category_chart"`
}

func countryChart(counts []model.CountryCount) []chart.Slice {
	slices := make([]chart.Slice, 0, len(counts))
	for _, c := range counts {
		if c.Count > 0 {
			slices = append(slices, chart.Slice{Label: c.Country, Value: c.Count})
		}
	}
	return chart.Aggregate(slices)
}

func categoryChart(counts []model.CategoryCount) []chart.Slice {
	slices := make([]chart.Slice, 0, len(counts))
	for _, c := range counts {
		if c.Count > 0 {
			slices = append(slices, chart.Slice{Label: c.Category, Value: c.Count})
		}
	}
	return chart.Aggregate(slices)
}

func (h *handlers) handleStatistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// An empty body means an unfiltered fetch
	var req statisticsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, goerr.Wrap(err, "invalid statistics request"), http.StatusBadRequest)
		return
	}

	result, err := h.uc.Statistics.Fetch(ctx, req.filterState())
	if err != nil {
		apperr.Handle(ctx, err)
		writeError(w, err, http.StatusInternalServerError)
		return
	}

	statisticsFetches.Inc()
	writeJSON(ctx, w, http.StatusOK, &statisticsResponse{
		Statistics:    result,
		Markers:       geo.Markers(result.Counts),
		CountryChart:  countryChart(result.Counts),
		CategoryChart: categoryChart(result.CategoryCounts),
	})
}

func (h *handlers) handleArticleDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw := chi.URLParam(r, "articleID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, goerr.New("invalid article ID", goerr.V("id", raw)), http.StatusBadRequest)
		return
	}

	detail, err := h.uc.Articles.Detail(ctx, types.ArticleID(id))
	if err != nil {
		if errors.Is(err, model.ErrArticleNotFound) {
			writeError(w, err, http.StatusNotFound)
			return
		}
		apperr.Handle(ctx, err)
		writeError(w, err, http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, detail)
}
