// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/site-sync/internal/config"
	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/models"
)

func newTestStorages(t *testing.T) *Storages {
	t.Helper()
	return openStorages(t, filepath.Join(t.TempDir(), "sitesync.db"))
}

func openStorages(t *testing.T, dsn string) *Storages {
	t.Helper()

	cfg := config.ClientStorage{DB: config.ClientDB{DSN: dsn}}
	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func seedProjects(t *testing.T, s LocalStore, names ...string) {
	t.Helper()
	err := s.Mutate(testContext(), func(tx MutationTx) error {
		for _, n := range names {
			if _, err := tx.Insert(testContext(), models.TableProjects, models.Row{"name": n}); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestLocalStore_Tables(t *testing.T) {
	s := newTestStorages(t).LocalStore

	tables := s.Tables()
	for _, table := range append(models.DefaultSyncUnit(), models.TableSettings) {
		assert.Contains(t, tables, table)
		assert.True(t, s.HasTable(table))
	}
	assert.NotContains(t, tables, models.Table("goose_db_version"))
	assert.False(t, s.HasTable("nope"))
}

func TestLocalStore_ReadAll_UnknownTable(t *testing.T) {
	s := newTestStorages(t).LocalStore

	_, err := s.ReadAll(testContext(), "nope")
	assert.ErrorIs(t, err, ErrUnknownTable)
}

func TestLocalStore_Mutate_InsertUpdateDelete(t *testing.T) {
	s := newTestStorages(t).LocalStore
	ctx := testContext()

	var id int64
	err := s.Mutate(ctx, func(tx MutationTx) error {
		var err error
		id, err = tx.Insert(ctx, models.TableWorkers, models.Row{"name": "Ana", "daily_rate": 120.5})
		return err
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	require.NoError(t, s.Mutate(ctx, func(tx MutationTx) error {
		return tx.Update(ctx, models.TableWorkers, id, models.Row{"id": 999, "role": "foreman"})
	}))

	rows, err := s.ReadAll(ctx, models.TableWorkers)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, id, rows[0]["id"])
	assert.Equal(t, "Ana", rows[0]["name"])
	assert.Equal(t, "foreman", rows[0]["role"])
	assert.Equal(t, 120.5, rows[0]["daily_rate"])

	require.NoError(t, s.Mutate(ctx, func(tx MutationTx) error {
		return tx.Delete(ctx, models.TableWorkers, id)
	}))

	rows, err = s.ReadAll(ctx, models.TableWorkers)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestLocalStore_ReadAll_KeepsBinaryValues(t *testing.T) {
	s := newTestStorages(t).LocalStore
	ctx := testContext()
	blob := []byte{0x00, 0xff, 'a', '\''}

	require.NoError(t, s.Mutate(ctx, func(tx MutationTx) error {
		_, err := tx.Insert(ctx, models.TableProjects, models.Row{"name": "Depot", "client": blob})
		return err
	}))

	rows, err := s.ReadAll(ctx, models.TableProjects)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Depot", rows[0]["name"], "text columns stay strings")
	assert.Equal(t, blob, rows[0]["client"], "blob values stay bytes")
}

func TestLocalStore_Mutate_Errors(t *testing.T) {
	s := newTestStorages(t).LocalStore
	ctx := testContext()

	tests := []struct {
		name    string
		fn      func(tx MutationTx) error
		wantErr error
	}{
		{
			name: "settings table is not writable",
			fn: func(tx MutationTx) error {
				_, err := tx.Insert(ctx, models.TableSettings, models.Row{"key": "k", "value": "v"})
				return err
			},
			wantErr: ErrUnknownTable,
		},
		{
			name: "unknown table",
			fn: func(tx MutationTx) error {
				return tx.Delete(ctx, "nope", 1)
			},
			wantErr: ErrUnknownTable,
		},
		{
			name: "update missing row",
			fn: func(tx MutationTx) error {
				return tx.Update(ctx, models.TableProjects, 404, models.Row{"name": "x"})
			},
			wantErr: ErrRowNotFound,
		},
		{
			name: "delete missing row",
			fn: func(tx MutationTx) error {
				return tx.Delete(ctx, models.TableProjects, 404)
			},
			wantErr: ErrRowNotFound,
		},
		{
			name: "insert without known columns",
			fn: func(tx MutationTx) error {
				_, err := tx.Insert(ctx, models.TableProjects, models.Row{"bogus": 1})
				return err
			},
			wantErr: ErrInvalidRow,
		},
		{
			name: "insert with non-integer id",
			fn: func(tx MutationTx) error {
				_, err := tx.Insert(ctx, models.TableProjects, models.Row{"id": "abc", "name": "x"})
				return err
			},
			wantErr: ErrInvalidRow,
		},
		{
			name: "constraint violation",
			fn: func(tx MutationTx) error {
				_, err := tx.Insert(ctx, models.TableProjects, models.Row{"name": nil})
				return err
			},
			wantErr: ErrLocalStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Mutate(ctx, tt.fn)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLocalStore_Mutate_RollsBackOnError(t *testing.T) {
	s := newTestStorages(t).LocalStore
	ctx := testContext()
	abort := errors.New("abort")

	err := s.Mutate(ctx, func(tx MutationTx) error {
		if _, err := tx.Insert(ctx, models.TableProjects, models.Row{"name": "a"}); err != nil {
			return err
		}
		if _, err := tx.Insert(ctx, models.TableInventory, models.Row{"name": "nails"}); err != nil {
			return err
		}
		return abort
	})
	assert.ErrorIs(t, err, abort)

	for _, table := range []models.Table{models.TableProjects, models.TableInventory} {
		rows, err := s.ReadAll(ctx, table)
		require.NoError(t, err)
		assert.Empty(t, rows, table)
	}
}

func TestLocalStore_AfterCommit(t *testing.T) {
	s := newTestStorages(t).LocalStore
	ctx := testContext()

	var fired atomic.Int32
	s.AfterCommit(func(context.Context) { fired.Add(1) })
	s.AfterCommit(func(context.Context) { fired.Add(10) })

	seedProjects(t, s, "a")
	assert.Equal(t, int32(11), fired.Load())

	// failed mutations do not fire
	_ = s.Mutate(ctx, func(tx MutationTx) error { return errors.New("nope") })
	assert.Equal(t, int32(11), fired.Load())

	// snapshots never fire
	require.NoError(t, s.Snapshot(ctx, func(tx SnapshotTx) error {
		return tx.Clear(ctx, models.TableProjects)
	}))
	assert.Equal(t, int32(11), fired.Load())
}

func TestLocalStore_Snapshot_ReplaceAllPreservesIDs(t *testing.T) {
	s := newTestStorages(t).LocalStore
	ctx := testContext()
	seedProjects(t, s, "local-1", "local-2", "local-3")

	remote := []models.Row{
		{"id": json.Number("40"), "name": "remote-a", "budget": json.Number("1000.5"), "unknown_col": "x"},
		{"id": json.Number("7"), "name": "remote-b", "status": "closed"},
	}

	require.NoError(t, s.Snapshot(ctx, func(tx SnapshotTx) error {
		return tx.ReplaceAll(ctx, models.TableProjects, remote)
	}))

	rows, err := s.ReadAll(ctx, models.TableProjects)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// ordered by id
	assert.Equal(t, int64(7), rows[0]["id"])
	assert.Equal(t, "remote-b", rows[0]["name"])
	assert.Equal(t, "closed", rows[0]["status"])

	assert.Equal(t, int64(40), rows[1]["id"])
	assert.Equal(t, "remote-a", rows[1]["name"])
	assert.Equal(t, 1000.5, rows[1]["budget"])
	assert.Equal(t, "active", rows[1]["status"])
	assert.NotContains(t, rows[1], "unknown_col")
}

func TestLocalStore_Snapshot_RollbackLeavesTablesIntact(t *testing.T) {
	s := newTestStorages(t).LocalStore
	ctx := testContext()
	seedProjects(t, s, "keep-1", "keep-2")

	before, err := s.ReadAll(ctx, models.TableProjects)
	require.NoError(t, err)

	abort := errors.New("simulated crash")
	err = s.Snapshot(ctx, func(tx SnapshotTx) error {
		if err := tx.ReplaceAll(ctx, models.TableProjects, []models.Row{{"id": 1, "name": "new"}}); err != nil {
			return err
		}
		if err := tx.Clear(ctx, models.TableSettings); err != nil {
			return err
		}
		return abort
	})
	assert.ErrorIs(t, err, abort)

	after, err := s.ReadAll(ctx, models.TableProjects)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestLocalStore_Snapshot_BulkWriteFailureRollsBack(t *testing.T) {
	s := newTestStorages(t).LocalStore
	ctx := testContext()
	seedProjects(t, s, "keep")

	before, err := s.ReadAll(ctx, models.TableProjects)
	require.NoError(t, err)

	// duplicate ids violate the primary key on the second insert
	err = s.Snapshot(ctx, func(tx SnapshotTx) error {
		return tx.ReplaceAll(ctx, models.TableProjects, []models.Row{
			{"id": 1, "name": "a"},
			{"id": 1, "name": "b"},
		})
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLocalStore)

	after, err := s.ReadAll(ctx, models.TableProjects)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestLocalStore_Snapshot_ReadAllSeesStagedRows(t *testing.T) {
	s := newTestStorages(t).LocalStore
	ctx := testContext()

	require.NoError(t, s.Snapshot(ctx, func(tx SnapshotTx) error {
		if err := tx.BulkWrite(ctx, models.TableUsers, []models.Row{{"id": 1, "username": "admin"}}); err != nil {
			return err
		}
		rows, err := tx.ReadAll(ctx, models.TableUsers)
		if err != nil {
			return err
		}
		assert.Len(t, rows, 1)
		return nil
	}))
}

func TestLocalStore_Snapshot_UnknownTable(t *testing.T) {
	s := newTestStorages(t).LocalStore
	ctx := testContext()

	err := s.Snapshot(ctx, func(tx SnapshotTx) error {
		return tx.ReplaceAll(ctx, "nope", nil)
	})
	assert.ErrorIs(t, err, ErrUnknownTable)
}

// Domain inserts and snapshot replaces race; none of them may fail or lose
// a committed row.
func TestLocalStore_ConcurrentWritersAreSerialized(t *testing.T) {
	s := newTestStorages(t).LocalStore
	ctx := testContext()

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers*2)

	for i := 0; i < writers; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			errs <- s.Mutate(ctx, func(tx MutationTx) error {
				_, err := tx.Insert(ctx, models.TableDailyLogs, models.Row{"date": "2026-01-01"})
				return err
			})
		}()
		go func() {
			defer wg.Done()
			errs <- s.Snapshot(ctx, func(tx SnapshotTx) error {
				rows, err := tx.ReadAll(ctx, models.TableDailyLogs)
				if err != nil {
					return err
				}
				return tx.ReplaceAll(ctx, models.TableDailyLogs, rows)
			})
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	// replaces copy the table onto itself, so every insert survives
	rows, err := s.ReadAll(ctx, models.TableDailyLogs)
	require.NoError(t, err)
	assert.Len(t, rows, writers)
}

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"nil", nil, nil},
		{"string", "x", "x"},
		{"bool", true, true},
		{"integral number", json.Number("12"), int64(12)},
		{"fractional number", json.Number("1.25"), 1.25},
		{"object", map[string]any{"a": 1}, `{"a":1}`},
		{"array", []any{"a", "b"}, `["a","b"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeValue(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildSQLiteDSN(t *testing.T) {
	assert.Equal(t,
		"a.db?_busy_timeout=5000&_txlock=immediate&_journal_mode=WAL",
		buildSQLiteDSN("a.db"))
	assert.Equal(t,
		"a.db?_txlock=deferred&_busy_timeout=5000&_journal_mode=WAL",
		buildSQLiteDSN("a.db?_txlock=deferred"))
}
