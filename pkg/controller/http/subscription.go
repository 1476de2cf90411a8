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

type subscriptionRequest struct {
	Email           string   `json:"email"`
	Frequency       string   `json:"frequency"`
	Categories      []string `json:"categories"`
	Countries       []string `json:"countries"`
	Severities      []string `json:"severities"`
	Format          string   `json:"format"`
	IncludeMetadata bool     `json:"includeMetadata"`
	Notes           string   `json:"notes"`
}

func (h *handlers) handleCreateSubscription(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req subscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, goerr.Wrap(err, "invalid subscription request"), http.StatusBadRequest)
		return
	}

	severities := make([]types.Severity, 0, len(req.Severities))
	for _, raw := range req.Severities {
		if sev, ok := types.ParseSeverity(raw); ok {
			severities = append(severities, sev)
		}
	}

	sub, err := h.uc.Subscriptions.Create(ctx, usecase.CreateSubscriptionInput{
		Email:           req.Email,
		Frequency:       model.ExportFrequency(req.Frequency),
		Categories:      req.Categories,
		Countries:       req.Countries,
		Severities:      severities,
		Format:          model.ExportFormat(req.Format),
		IncludeMetadata: req.IncludeMetadata,
		Notes:           req.Notes,
	})
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}
	writeJSON(ctx, w, http.StatusCreated, sub)
}

func (h *handlers) handleListSubscriptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	subs, err := h.uc.Subscriptions.ListByEmail(ctx, r.URL.Query().Get("email"))
	if err != nil {
		apperr.Handle(ctx, err)
		writeError(w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(ctx, w, http.StatusOK, subs)
}

func (h *handlers) handleUpdateSubscriptionStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := types.SubscriptionID(chi.URLParam(r, "subscriptionID"))

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, goerr.Wrap(err, "invalid status request"), http.StatusBadRequest)
		return
	}

	sub, err := h.uc.Subscriptions.UpdateStatus(ctx, id, model.SubscriptionStatus(req.Status))
	if err != nil {
		if errors.Is(err, model.ErrSubscriptionNotFound) {
			writeError(w, err, http.StatusNotFound)
			return
		}
		writeError(w, err, http.StatusBadRequest)
		return
	}
	writeJSON(ctx, w, http.StatusOK, sub)
}

func (h *handlers) handleDeleteSubscription(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := types.SubscriptionID(chi.URLParam(r, "subscriptionID"))

	if err := h.uc.Subscriptions.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrSubscriptionNotFound) {
			writeError(w, err, http.StatusNotFound)
			return
		}
		apperr.Handle(ctx, err)
		writeError(w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(ctx, w, http.StatusOK, map[string]string{
		"message": "Subscription deleted successfully",
	})
}

func (h *handlers) handleTriggerExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := types.SubscriptionID(chi.URLParam(r, "subscriptionID"))

	record, err := h.uc.Subscriptions.TriggerExport(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrSubscriptionNotFound) {
			writeError(w, err, http.StatusNotFound)
			return
		}
		writeError(w, err, http.StatusBadRequest)
		return
	}
	writeJSON(ctx, w, http.StatusAccepted, record)
}

func (h *handlers) handleExportHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := types.SubscriptionID(chi.URLParam(r, "subscriptionID"))

	records, err := h.uc.Subscriptions.History(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrSubscriptionNotFound) {
			writeError(w, err, http.StatusNotFound)
			return
		}
		apperr.Handle(ctx, err)
		writeError(w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(ctx, w, http.StatusOK, records)
}

func (h *handlers) handleSubscriptionStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.uc.Subscriptions.Stats(ctx)
	if err != nil {
		apperr.Handle(ctx, err)
		writeError(w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(ctx, w, http.StatusOK, stats)
}
