// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/site-sync/internal/adapter"
	"github.com/MKhiriev/site-sync/internal/store"
)

// Reason maps err to a short human-readable reason suitable for UI feedback.
// It returns an empty string for a nil error.
func Reason(err error) string {
	if err == nil {
		return ""
	}

	var transportErr *adapter.TransportError
	var rejectionErr *adapter.RemoteRejectionError

	switch {
	case errors.Is(err, ErrSyncInFlight):
		return "another sync is already running"
	case errors.Is(err, ErrNotConfigured):
		return "remote connection is not configured"
	case errors.Is(err, ErrResetNotConfirmed):
		return "factory reset requires confirmation"
	case errors.Is(err, ErrInvalidProfile), errors.Is(err, adapter.ErrProfileIncomplete):
		return "connection settings are incomplete"
	case errors.Is(err, adapter.ErrInvalidTableName):
		return "invalid table name"
	case errors.As(err, &rejectionErr):
		if rejectionErr.Message != "" {
			return fmt.Sprintf("remote database rejected the request: %s", rejectionErr.Message)
		}
		return "remote database rejected the request"
	case errors.As(err, &transportErr):
		return fmt.Sprintf("bridge answered with HTTP %d", transportErr.StatusCode)
	case errors.Is(err, adapter.ErrProtocol):
		return "bridge returned an unexpected response"
	case errors.Is(err, adapter.ErrConnection):
		return "bridge is unreachable"
	case errors.Is(err, store.ErrUnknownTable):
		return "unknown table"
	case errors.Is(err, store.ErrRowNotFound):
		return "row not found"
	case errors.Is(err, store.ErrInvalidRow):
		return "invalid row data"
	case errors.Is(err, store.ErrLocalStore):
		return "local database error"
	case errors.Is(err, ErrPushFailed):
		return "push failed"
	}

	return "unexpected error"
}
