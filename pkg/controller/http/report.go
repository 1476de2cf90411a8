package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/aiwatch-dev/aiwatch/pkg/domain/model"
	"github.com/aiwatch-dev/aiwatch/pkg/domain/types"
	"github.com/aiwatch-dev/aiwatch/pkg/usecase"
	"github.com/aiwatch-dev/aiwatch/pkg/utils/apperr"
)

// reportRequest is the wire shape of a self-report. "url" is canonical;
// "link" is an accepted legacy alias, as is severity "Death" for "Fatality".
type reportRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Link        string   `json:"link"`
	Severity    string   `json:"severity"`
	Date        string   `json:"date"`
	Country     []string `json:"country"`
	Category    string   `json:"category"`
}

func (req *reportRequest) sourceURL() string {
	if req.URL != "" {
		return req.URL
	}
	return req.Link
}

// severity resolves the severity field, accepting legacy aliases. An empty
// field is allowed; an unrecognized one is a validation error.
func (req *reportRequest) severity() (types.Severity, error) {
	if req.Severity == "" {
		return "", nil
	}
	sev, ok := types.ParseSeverity(req.Severity)
	if !ok {
		return "", goerr.New("unknown severity", goerr.V("severity", req.Severity))
	}
	return sev, nil
}

func (h *handlers) handleSubmitReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, goerr.Wrap(err, "invalid report request"), http.StatusBadRequest)
		return
	}

	severity, err := req.severity()
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}

	report, err := h.uc.Reports.Submit(ctx, usecase.SubmitReportInput{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.sourceURL(),
		Severity:    severity,
		Date:        req.Date,
		Country:     req.Country,
		Category:    req.Category,
	})
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}

	reportsSubmitted.WithLabelValues(report.Status.String()).Inc()
	writeJSON(ctx, w, http.StatusOK, map[string]string{
		"message": "Report submitted successfully",
	})
}

func (h *handlers) handleListReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reports, err := h.uc.Reports.List(ctx)
	if err != nil {
		apperr.Handle(ctx, err)
		writeError(w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(ctx, w, http.StatusOK, reports)
}

func (h *handlers) handleUpdateReportStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := types.ReportID(chi.URLParam(r, "reportID"))

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, goerr.Wrap(err, "invalid status request"), http.StatusBadRequest)
		return
	}

	report, err := h.uc.Reports.UpdateStatus(ctx, id, types.ReportStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, model.ErrReportNotFound):
			writeError(w, err, http.StatusNotFound)
		case errors.Is(err, model.ErrInvalidTransition):
			writeError(w, err, http.StatusConflict)
		default:
			writeError(w, err, http.StatusBadRequest)
		}
		return
	}
	writeJSON(ctx, w, http.StatusOK, report)
}

func (h *handlers) handleUpdateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := types.ReportID(chi.URLParam(r, "reportID"))

	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, goerr.Wrap(err, "invalid report request"), http.StatusBadRequest)
		return
	}

	severity, err := req.severity()
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}

	report, err := h.uc.Reports.Update(ctx, id, usecase.UpdateReportInput{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.sourceURL(),
		Severity:    severity,
		Date:        req.Date,
		Country:     req.Country,
		Category:    req.Category,
	})
	if err != nil {
		if errors.Is(err, model.ErrReportNotFound) {
			writeError(w, err, http.StatusNotFound)
			return
		}
		writeError(w, err, http.StatusBadRequest)
		return
	}
	writeJSON(ctx, w, http.StatusOK, report)
}

func (h *handlers) handleDeleteReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := types.ReportID(chi.URLParam(r, "reportID"))

	if err := h.uc.Reports.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrReportNotFound) {
			writeError(w, err, http.StatusNotFound)
			return
		}
		apperr.Handle(ctx, err)
		writeError(w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(ctx, w, http.StatusOK, map[string]string{
		"message": "Report deleted successfully",
	})
}

func (h *handlers) handleReportStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.uc.Reports.Stats(ctx)
	if err != nil {
		apperr.Handle(ctx, err)
		writeError(w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(ctx, w, http.StatusOK, stats)
}
