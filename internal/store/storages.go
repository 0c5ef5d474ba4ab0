// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/site-sync/internal/config"
	"github.com/MKhiriev/site-sync/internal/logger"
)

// Storages groups the local storage components into a single value that can
// be passed to the service layer. Both share one [DB] and therefore one
// write lock.
type Storages struct {
	// LocalStore is the entity table store used by domain code and the
	// sync orchestrator.
	LocalStore LocalStore

	// Settings is the key/value repository behind the settings store.
	Settings SettingsRepository

	// SyncLock is the cross-process sync lock of the database file.
	SyncLock SyncLock
}

// NewStorages initialises the local storage layer:
//  1. Opens the SQLite file at cfg.DB.DSN, creating it if it does not yet
//     exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Reads the local schema and constructs the repositories.
//  4. Points the sync lock at a file next to the database.
func NewStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	localStore, err := NewLocalStore(ctx, db, log)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error reading local schema: %w", err)
	}

	return &Storages{
		LocalStore: localStore,
		Settings:   NewSettingsRepository(db, log),
		SyncLock:   NewFileSyncLock(syncLockPath(cfg.DB.DSN)),
	}, nil
}

// Close releases the underlying database.
func (s *Storages) Close() error {
	return s.LocalStore.Close()
}
