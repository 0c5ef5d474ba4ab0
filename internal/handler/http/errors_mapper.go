// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/site-sync/internal/adapter"
	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/service"
	"github.com/MKhiriev/site-sync/internal/store"
	"github.com/MKhiriev/site-sync/internal/utils"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatusMap is checked in order; an error wrapping several sentinels
// gets the status of the first match.
var errorStatusMap = []errorStatus{
	{service.ErrSyncInFlight, http.StatusConflict},
	{service.ErrNotConfigured, http.StatusPreconditionFailed},
	{service.ErrResetNotConfirmed, http.StatusBadRequest},
	{service.ErrInvalidProfile, http.StatusBadRequest},
	{adapter.ErrProfileIncomplete, http.StatusBadRequest},
	{adapter.ErrInvalidTableName, http.StatusBadRequest},

	{store.ErrUnknownTable, http.StatusNotFound},
	{store.ErrRowNotFound, http.StatusNotFound},
	{store.ErrInvalidRow, http.StatusBadRequest},

	{adapter.ErrConnection, http.StatusGatewayTimeout},
	{adapter.ErrTransport, http.StatusBadGateway},
	{adapter.ErrProtocol, http.StatusBadGateway},
	{adapter.ErrRemoteRejection, http.StatusBadGateway},
	{service.ErrPushFailed, http.StatusBadGateway},

	{store.ErrLocalStore, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err with the request logger and answers with the
// mapped status and a short reason.
func writeServiceError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	utils.WriteError(w, service.Reason(err), status)
}
