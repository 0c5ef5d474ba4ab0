// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/site-sync/internal/service"
	"github.com/MKhiriev/site-sync/internal/utils"
	"github.com/MKhiriev/site-sync/models"
)

// pushResponse carries the push report even when the push failed.
type pushResponse struct {
	Report models.PushReport `json:"report"`
	Error  string            `json:"error,omitempty"`
}

func (h *Handler) getStatus(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, h.services.Orchestrator.Status(), http.StatusOK)
}

func (h *Handler) pull(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Orchestrator.PullStored(r.Context()); err != nil {
		writeServiceError(w, r, "*Handler.pull", err)
		return
	}

	utils.WriteJSON(w, h.services.Orchestrator.Status(), http.StatusOK)
}

func (h *Handler) push(w http.ResponseWriter, r *http.Request) {
	force := false
	if raw := r.URL.Query().Get("force"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			utils.WriteError(w, "force must be true or false", http.StatusBadRequest)
			return
		}
		force = parsed
	}

	report, err := h.services.Orchestrator.Push(r.Context(), force)
	if err != nil {
		status := statusFromError(err)
		h.logger.Warn().
			Err(err).
			Str("func", "*Handler.push").
			Str("outcome", string(report.Outcome)).
			Msg("push did not complete")
		utils.WriteJSON(w, pushResponse{Report: report, Error: service.Reason(err)}, status)
		return
	}

	utils.WriteJSON(w, pushResponse{Report: report}, http.StatusOK)
}
