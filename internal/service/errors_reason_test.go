// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/site-sync/internal/adapter"
	"github.com/MKhiriev/site-sync/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestReason(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "in flight", err: ErrSyncInFlight, want: "another sync is already running"},
		{name: "not configured", err: ErrNotConfigured, want: "remote connection is not configured"},
		{name: "reset", err: ErrResetNotConfirmed, want: "factory reset requires confirmation"},
		{name: "invalid profile", err: fmt.Errorf("%w: no host", ErrInvalidProfile), want: "connection settings are incomplete"},
		{name: "incomplete profile", err: fmt.Errorf("probe: %w", adapter.ErrProfileIncomplete), want: "connection settings are incomplete"},
		{name: "connection", err: fmt.Errorf("pull: %w", adapter.ErrConnection), want: "bridge is unreachable"},
		{
			name: "transport",
			err:  fmt.Errorf("pull: %w", &adapter.TransportError{StatusCode: 503, Status: "503 Service Unavailable"}),
			want: "bridge answered with HTTP 503",
		},
		{name: "protocol", err: adapter.ErrProtocol, want: "bridge returned an unexpected response"},
		{
			name: "rejection with message",
			err:  &adapter.RemoteRejectionError{Message: "Table 'site.projects' doesn't exist"},
			want: "remote database rejected the request: Table 'site.projects' doesn't exist",
		},
		{name: "rejection without message", err: &adapter.RemoteRejectionError{}, want: "remote database rejected the request"},
		{name: "unknown table", err: fmt.Errorf("%w: invoices", store.ErrUnknownTable), want: "unknown table"},
		{name: "row not found", err: store.ErrRowNotFound, want: "row not found"},
		{name: "invalid row wins over local store", err: fmt.Errorf("%w: %w", store.ErrLocalStore, store.ErrInvalidRow), want: "invalid row data"},
		{name: "local store", err: fmt.Errorf("pull: %w", store.ErrLocalStore), want: "local database error"},
		{name: "push failed", err: errors.Join(ErrPushFailed, errors.New("boom")), want: "push failed"},
		{name: "unknown", err: errors.New("boom"), want: "unexpected error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reason(tt.err))
		})
	}
}
