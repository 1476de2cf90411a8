package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/aiwatch-dev/aiwatch/pkg/domain/model"
	"github.com/aiwatch-dev/aiwatch/pkg/domain/types"
	"github.com/aiwatch-dev/aiwatch/pkg/utils/apperr"
)

func (h *handlers) handleCreateAPIKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, goerr.Wrap(err, "invalid API key request"), http.StatusBadRequest)
		return
	}

	key, err := h.uc.APIKeys.Create(ctx, req.Name)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}
	writeJSON(ctx, w, http.StatusCreated, key)
}

func (h *handlers) handleListAPIKeys(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	keys, err := h.uc.APIKeys.List(ctx)
	if err != nil {
		apperr.Handle(ctx, err)
		writeError(w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(ctx, w, http.StatusOK, keys)
}

func (h *handlers) handleDeleteAPIKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := types.APIKeyID(chi.URLParam(r, "keyID"))

	if err := h.uc.APIKeys.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrAPIKeyNotFound) {
			writeError(w, err, http.StatusNotFound)
			return
		}
		apperr.Handle(ctx, err)
		writeError(w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(ctx, w, http.StatusOK, map[string]string{
		"message": "API key deleted successfully",
	})
}
