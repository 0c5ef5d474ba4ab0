// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/migrations"
)

const (
	maxTxAttempts = 3
	retryBackoff  = 50 * time.Millisecond
)

// DB wraps the SQLite connection pool. Write transactions go through
// [DB.withWriteTx], which serializes them in-process and retries on
// lock contention.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	writeMu sync.Mutex
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// withWriteTx runs fn inside a write transaction. The transaction is rolled
// back when fn fails. Begin and commit failures classified as retryable are
// retried up to maxTxAttempts times; errors returned by fn are never retried
// unless they are driver lock errors.
func (db *DB) withWriteTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	db.writeMu.Lock()
	defer db.writeMu.Unlock()

	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = db.runTx(ctx, fn)
		if err == nil {
			return nil
		}
		if db.errorClassificator.Classify(err) != Retryable || attempt == maxTxAttempts {
			return err
		}

		db.logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Msg("database is busy, retrying transaction")

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}

	return err
}

func (db *DB) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return localStoreError(ErrBeginningTransaction, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return localStoreError(ErrCommitingTransaction, err)
	}

	return nil
}
