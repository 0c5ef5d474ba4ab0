// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil error", nil, NonRetryable},
		{"plain error", errors.New("boom"), NonRetryable},
		{"busy", sqlite3.Error{Code: sqlite3.ErrBusy}, Retryable},
		{"locked", sqlite3.Error{Code: sqlite3.ErrLocked}, Retryable},
		{"wrapped busy", fmt.Errorf("begin: %w", sqlite3.Error{Code: sqlite3.ErrBusy}), Retryable},
		{"double wrapped locked", localStoreError(ErrBeginningTransaction, sqlite3.Error{Code: sqlite3.ErrLocked}), Retryable},
		{"constraint", sqlite3.Error{Code: sqlite3.ErrConstraint}, NonRetryable},
		{"readonly", sqlite3.Error{Code: sqlite3.ErrReadonly}, NonRetryable},
		{"generic sql error", sqlite3.Error{Code: sqlite3.ErrError}, NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}
