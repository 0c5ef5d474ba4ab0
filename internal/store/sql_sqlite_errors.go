// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It indicates whether a failed database operation should be retried or
// abandoned.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors, constraint
	// violations and schema errors.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again, i.e. another connection held the database lock.
	Retryable
)

// SQLiteErrorClassifier implements [ErrorClassificator] for the go-sqlite3
// driver.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It unwraps err as a
// sqlite3.Error and delegates to [ClassifySQLiteError]. If err is nil or is
// not a driver error, [NonRetryable] is returned.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return ClassifySQLiteError(sqliteErr)
	}

	return NonRetryable
}

// ClassifySQLiteError maps a sqlite3.Error to an [ErrorClassification] based
// on its primary result code.
//
// Retryable codes:
//   - SQLITE_BUSY   another connection holds a conflicting lock
//   - SQLITE_LOCKED a table in the same connection is locked
//
// Everything else (SQLITE_CONSTRAINT, SQLITE_ERROR, SQLITE_READONLY,
// SQLITE_FULL, SQLITE_CORRUPT, ...) is [NonRetryable].
func ClassifySQLiteError(sqliteErr sqlite3.Error) ErrorClassification {
	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}

	return NonRetryable
}
