// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/site-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SettingsStore persists the remote connection profile in the local
// settings table.
type SettingsStore interface {
	// Load returns the stored profile. Missing keys get their defaults.
	Load(ctx context.Context) (models.ConnectionProfile, error)
	// Save writes every profile key in one local transaction.
	Save(ctx context.Context, profile models.ConnectionProfile) error
	// IsConfigured reports whether the stored profile is complete.
	IsConfigured(ctx context.Context) (bool, error)
}

// SyncOrchestrator makes the local store and the remote database consistent
// by whole-unit snapshots. At most one operation runs at a time across every
// orchestrator that shares the database file.
type SyncOrchestrator interface {
	// Pull replaces every local table of the sync unit with the remote rows.
	// The local store is untouched unless every table was fetched.
	Pull(ctx context.Context, profile models.ConnectionProfile) error

	// Push replaces every remote table of the sync unit with the local rows
	// using the stored profile. The rows of all tables are read in one local
	// transaction. The report is always populated. A non-forced push that
	// finds another push running is skipped and makes the running one do one
	// more pass.
	Push(ctx context.Context, force bool) (models.PushReport, error)

	// Configure pulls with profile and stores it only if the pull succeeded.
	Configure(ctx context.Context, profile models.ConnectionProfile) error

	// TestConnection probes the bridge with profile without touching data.
	TestConnection(ctx context.Context, profile models.ConnectionProfile) error

	// PullStored pulls with the stored profile.
	PullStored(ctx context.Context) error

	// FactoryReset clears every local table, settings included, in one
	// transaction.
	FactoryReset(ctx context.Context, confirmed bool) error

	Status() models.SyncStatus
	Unit() models.SyncUnit
}

// Pusher is the part of [SyncOrchestrator] used by background triggers.
type Pusher interface {
	Push(ctx context.Context, force bool) (models.PushReport, error)
}
