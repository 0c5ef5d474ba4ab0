// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/utils"
	"github.com/MKhiriev/site-sync/models"
)

type resetRequest struct {
	Confirm bool `json:"confirm"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	profile, err := h.services.Settings.Load(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.getSettings", err)
		return
	}

	utils.WriteJSON(w, profile.Masked(), http.StatusOK)
}

func (h *Handler) putSettings(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.decodeProfile(w, r)
	if !ok {
		return
	}

	if err := h.services.Orchestrator.Configure(r.Context(), profile); err != nil {
		writeServiceError(w, r, "*Handler.putSettings", err)
		return
	}

	utils.WriteJSON(w, profile.Masked(), http.StatusOK)
}

func (h *Handler) testSettings(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.decodeProfile(w, r)
	if !ok {
		return
	}

	if err := h.services.Orchestrator.TestConnection(r.Context(), profile); err != nil {
		writeServiceError(w, r, "*Handler.testSettings", err)
		return
	}

	utils.WriteJSON(w, okResponse{OK: true}, http.StatusOK)
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.reset").Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.Orchestrator.FactoryReset(r.Context(), req.Confirm); err != nil {
		writeServiceError(w, r, "*Handler.reset", err)
		return
	}

	utils.WriteJSON(w, okResponse{OK: true}, http.StatusOK)
}

// decodeProfile reads a profile from the body. A masked password is replaced
// by the stored one, so clients can round-trip the GET response.
func (h *Handler) decodeProfile(w http.ResponseWriter, r *http.Request) (models.ConnectionProfile, bool) {
	var profile models.ConnectionProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.decodeProfile").Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return profile, false
	}

	if profile.Password == models.MaskedPassword {
		stored, err := h.services.Settings.Load(context.WithoutCancel(r.Context()))
		if err != nil {
			writeServiceError(w, r, "*Handler.decodeProfile", err)
			return profile, false
		}
		profile.Password = stored.Password
	}

	return profile, true
}
