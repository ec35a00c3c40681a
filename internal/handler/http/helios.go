// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/helios-keeper/internal/app"
	"github.com/MKhiriev/helios-keeper/internal/logger"
	"github.com/MKhiriev/helios-keeper/internal/utils"
	"github.com/MKhiriev/helios-keeper/models"
)

func (h *Handler) start(w http.ResponseWriter, r *http.Request) {
	var req models.StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %s: %w", ErrInvalidJSON, app.MsgInvalidDataProvided, err))
		return
	}

	info, err := h.services.HeliosService.Start(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("session_id", info.ID).Msg("light client session started")
	_, _ = utils.WriteJSON(w, info, http.StatusOK)
}

func (h *Handler) latestBlock(w http.ResponseWriter, r *http.Request) {
	block, err := h.services.HeliosService.GetLatestBlock(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, block, http.StatusOK)
}

func (h *Handler) blockByTag(w http.ResponseWriter, r *http.Request) {
	tag, err := models.ParseBlockTag(chi.URLParam(r, "tag"))
	if err != nil {
		writeError(w, r, fmt.Errorf("%s: %w", app.MsgInvalidBlockTag, err))
		return
	}

	block, err := h.services.HeliosService.GetBlock(r.Context(), tag)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, block, http.StatusOK)
}

func (h *Handler) stop(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HeliosService.Stop(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.HeliosService.Status(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) sessions(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, r, fmt.Errorf("%w: %q", ErrInvalidLimit, raw))
			return
		}
		limit = n
	}

	records, err := h.services.HeliosService.History(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.SessionsResponse{Sessions: records, Length: len(records)}, http.StatusOK)
}
