// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// SyncState is the state of the sync orchestrator.
type SyncState int32

const (
	// SyncIdle means no sync operation is running.
	SyncIdle SyncState = iota
	// SyncPulling means a remote-to-local snapshot is in flight.
	SyncPulling
	// SyncPushing means a local-to-remote snapshot is in flight.
	SyncPushing
	// SyncResetting means a factory reset holds the sync slot.
	SyncResetting
)

// String implements fmt.Stringer.
func (s SyncState) String() string {
	switch s {
	case SyncIdle:
		return "idle"
	case SyncPulling:
		return "pulling"
	case SyncPushing:
		return "pushing"
	case SyncResetting:
		return "resetting"
	default:
		return "unknown"
	}
}

// MarshalText lets the state appear as a string in JSON.
func (s SyncState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a state written by MarshalText.
func (s *SyncState) UnmarshalText(text []byte) error {
	for state := SyncIdle; state <= SyncResetting; state++ {
		if state.String() == string(text) {
			*s = state
			return nil
		}
	}
	return fmt.Errorf("unknown sync state %q", text)
}

// PushOutcome summarises a push attempt for UI feedback.
type PushOutcome string

const (
	// PushCompleted means every table in the unit was replaced remotely.
	PushCompleted PushOutcome = "completed"
	// PushPartial means some tables were pushed and some failed.
	PushPartial PushOutcome = "partial"
	// PushFailed means no table could be pushed.
	PushFailed PushOutcome = "failed"
	// PushSkipped means another sync was in flight and force was not set.
	PushSkipped PushOutcome = "skipped"
	// PushNotConfigured means no complete remote profile is stored yet.
	PushNotConfigured PushOutcome = "not_configured"
)

// TablePushResult is the per-table result of a push.
type TablePushResult struct {
	Table Table  `json:"table"`
	Rows  int    `json:"rows"`
	Error string `json:"error,omitempty"`
}

// PushReport describes what a push did. It is always populated, even when
// Push also returns an error.
type PushReport struct {
	SyncID     string            `json:"sync_id,omitempty"`
	Outcome    PushOutcome       `json:"outcome"`
	Tables     []TablePushResult `json:"tables,omitempty"`
	StartedAt  time.Time         `json:"started_at"`
	FinishedAt time.Time         `json:"finished_at"`
}

// Failed returns the tables whose push failed.
func (r PushReport) Failed() []Table {
	var failed []Table
	for _, t := range r.Tables {
		if t.Error != "" {
			failed = append(failed, t.Table)
		}
	}
	return failed
}

// SyncStatus is a read-only snapshot of the orchestrator for UI feedback.
type SyncStatus struct {
	State SyncState `json:"state"`

	LastPullAt    *time.Time `json:"last_pull_at,omitempty"`
	LastPullError string     `json:"last_pull_error,omitempty"`

	LastPushAt      *time.Time  `json:"last_push_at,omitempty"`
	LastPushOutcome PushOutcome `json:"last_push_outcome,omitempty"`
	LastPushError   string      `json:"last_push_error,omitempty"`
}
