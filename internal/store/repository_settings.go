// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/site-sync/internal/logger"
)

// settingsRepository is the SQLite-backed implementation of
// [SettingsRepository]. It shares the write lock of the [DB] with the local
// store, so a settings save never interleaves with a snapshot.
type settingsRepository struct {
	*DB
	logger *logger.Logger
}

// NewSettingsRepository constructs a [SettingsRepository] backed by db.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

// GetAll returns every stored key. An empty table yields an empty, non-nil map.
func (r *settingsRepository) GetAll(ctx context.Context) (map[string]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, selectAllSettings)
	if err != nil {
		log.Err(err).
			Str("func", "settingsRepository.GetAll").
			Msg("failed to execute query for getting settings")
		return nil, localStoreError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			log.Err(err).
				Str("func", "settingsRepository.GetAll").
				Msg("failed to scan settings row")
			return nil, localStoreError(ErrScanningRows, err)
		}
		result[key] = value
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.GetAll").
			Msg("error occurred during rows iteration")
		return nil, localStoreError(ErrScanningRows, err)
	}

	return result, nil
}

// Upsert writes every pair with a single INSERT ... ON CONFLICT statement in
// one transaction. Existing keys are updated in place, so there is never a
// moment where a key is missing.
func (r *settingsRepository) Upsert(ctx context.Context, kv map[string]string) error {
	if len(kv) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSettingsQuery(kv)
	if err != nil {
		return localStoreError(ErrBuildingSQLQuery, err)
	}

	return r.withWriteTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "settingsRepository.Upsert").
				Int("keys", len(kv)).
				Msg("failed to upsert settings")
			return localStoreError(ErrExecutingStatement, err)
		}
		return nil
	})
}
