// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
)

// ErrLocalStore is wrapped by every error that originates in the embedded
// database (transaction, read or write failure). Callers match it with
// [errors.Is].
var ErrLocalStore = errors.New("local store error")

// Sentinel errors returned by store methods to signal well-known failure
// conditions.
var (
	// ErrUnknownTable is returned when a table is not part of the local schema
	// or is not writable through the requested transaction kind.
	ErrUnknownTable = errors.New("unknown table")

	// ErrRowNotFound is returned when an update or delete targets an id that
	// does not exist.
	ErrRowNotFound = errors.New("row was not found")

	// ErrInvalidRow is returned when a row carries no column known to the
	// target table, or an id that is not an integer.
	ErrInvalidRow = errors.New("invalid row")
)

// Low-level database operation errors. They are always wrapped together with
// [ErrLocalStore].
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL statement fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a new
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrSyncLock is returned when the sync lock file cannot be opened,
	// locked or released.
	ErrSyncLock = errors.New("failed to use sync lock file")
)

func localStoreError(kind, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %w", ErrLocalStore, kind)
	}
	return fmt.Errorf("%w: %w: %w", ErrLocalStore, kind, err)
}
