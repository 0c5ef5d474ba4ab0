// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/site-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CommitCallback is run after a domain transaction has committed. The context
// is the one passed to [LocalStore.Mutate].
type CommitCallback func(ctx context.Context)

// LocalStore is the contract over the embedded transactional database shared
// by domain code and the sync orchestrator.
//
// Whole-table operations are only reachable through [LocalStore.Snapshot];
// domain code gets scoped single-row writes through [LocalStore.Mutate]. Both
// kinds of write transaction are serialized, so a snapshot replace can never
// interleave with an open domain transaction.
type LocalStore interface {
	// ReadAll returns every row of table ordered by id.
	ReadAll(ctx context.Context, table models.Table) ([]models.Row, error)

	// Snapshot runs fn inside one write transaction. The transaction commits
	// when fn returns nil and rolls back otherwise. Commit callbacks are not
	// fired.
	Snapshot(ctx context.Context, fn func(tx SnapshotTx) error) error

	// Mutate runs fn inside one write transaction and, after a successful
	// commit, runs every registered [CommitCallback].
	Mutate(ctx context.Context, fn func(tx MutationTx) error) error

	// AfterCommit registers cb to be run after every committed Mutate.
	AfterCommit(cb CommitCallback)

	// Tables returns every table of the local schema, settings included.
	Tables() []models.Table

	// HasTable reports whether table exists in the local schema.
	HasTable(table models.Table) bool

	Close() error
}

// SnapshotTx exposes whole-table operations inside a [LocalStore.Snapshot].
type SnapshotTx interface {
	ReadAll(ctx context.Context, table models.Table) ([]models.Row, error)
	// Clear deletes every row of table.
	Clear(ctx context.Context, table models.Table) error
	// BulkWrite inserts rows keeping their ids. Columns unknown to the table
	// are dropped.
	BulkWrite(ctx context.Context, table models.Table, rows []models.Row) error
	// ReplaceAll is Clear followed by BulkWrite.
	ReplaceAll(ctx context.Context, table models.Table, rows []models.Row) error
}

// MutationTx exposes scoped single-row writes inside a [LocalStore.Mutate].
// The settings table is not reachable from it.
type MutationTx interface {
	ReadAll(ctx context.Context, table models.Table) ([]models.Row, error)
	// Insert adds row and returns its id. A missing id is assigned by the
	// database.
	Insert(ctx context.Context, table models.Table, row models.Row) (int64, error)
	// Update sets the given columns of the row with id.
	Update(ctx context.Context, table models.Table, id int64, row models.Row) error
	// Delete removes the row with id.
	Delete(ctx context.Context, table models.Table, id int64) error
}

// SettingsRepository persists key/value pairs in the settings table.
type SettingsRepository interface {
	// GetAll returns every stored key.
	GetAll(ctx context.Context) (map[string]string, error)
	// Upsert writes all pairs in one transaction, updating existing keys in
	// place.
	Upsert(ctx context.Context, kv map[string]string) error
}

// SyncLock guards the sync slot across every process that opens the same
// database file.
type SyncLock interface {
	// TryLock takes the lock without waiting and reports whether it did.
	TryLock() (bool, error)
	// Unlock releases a lock taken by TryLock. It is a no-op otherwise.
	Unlock() error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
