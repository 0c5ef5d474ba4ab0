// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/models"
)

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// localStore is the SQLite-backed implementation of [LocalStore]. The
// schema (tables and their columns) is read once at construction; it is
// fixed by the embedded migrations.
type localStore struct {
	db     *DB
	logger *logger.Logger

	tables  []models.Table
	columns map[models.Table]map[string]struct{}

	cbMu      sync.RWMutex
	callbacks []CommitCallback
}

// NewLocalStore constructs a [LocalStore] over a migrated database.
func NewLocalStore(ctx context.Context, db *DB, log *logger.Logger) (LocalStore, error) {
	s := &localStore{
		db:      db,
		logger:  log,
		columns: make(map[models.Table]map[string]struct{}),
	}
	if err := s.loadSchema(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *localStore) loadSchema(ctx context.Context) error {
	rows, err := s.db.QueryContext(ctx, listTables)
	if err != nil {
		return localStoreError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return localStoreError(ErrScanningRows, err)
		}
		s.tables = append(s.tables, models.Table(name))
	}
	if err := rows.Err(); err != nil {
		return localStoreError(ErrScanningRows, err)
	}

	for _, table := range s.tables {
		cols, err := s.tableColumns(ctx, table)
		if err != nil {
			return err
		}
		s.columns[table] = cols
	}

	s.logger.Debug().
		Str("func", "localStore.loadSchema").
		Int("tables", len(s.tables)).
		Msg("local schema loaded")

	return nil
}

func (s *localStore) tableColumns(ctx context.Context, table models.Table) (map[string]struct{}, error) {
	rows, err := s.db.QueryContext(ctx, tableInfo, table.String())
	if err != nil {
		return nil, localStoreError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	cols := make(map[string]struct{})
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, localStoreError(ErrScanningRows, err)
		}
		cols[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, localStoreError(ErrScanningRows, err)
	}

	return cols, nil
}

func (s *localStore) Tables() []models.Table {
	out := make([]models.Table, len(s.tables))
	copy(out, s.tables)
	return out
}

func (s *localStore) HasTable(table models.Table) bool {
	_, ok := s.columns[table]
	return ok
}

func (s *localStore) ReadAll(ctx context.Context, table models.Table) ([]models.Row, error) {
	if !s.HasTable(table) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	return s.readAll(ctx, s.db.DB, table)
}

func (s *localStore) Snapshot(ctx context.Context, fn func(tx SnapshotTx) error) error {
	return s.db.withWriteTx(ctx, func(tx *sql.Tx) error {
		return fn(&snapshotTx{store: s, tx: tx})
	})
}

func (s *localStore) Mutate(ctx context.Context, fn func(tx MutationTx) error) error {
	err := s.db.withWriteTx(ctx, func(tx *sql.Tx) error {
		return fn(&mutationTx{store: s, tx: tx})
	})
	if err != nil {
		return err
	}

	s.cbMu.RLock()
	callbacks := make([]CommitCallback, len(s.callbacks))
	copy(callbacks, s.callbacks)
	s.cbMu.RUnlock()

	for _, cb := range callbacks {
		cb(ctx)
	}

	return nil
}

func (s *localStore) AfterCommit(cb CommitCallback) {
	s.cbMu.Lock()
	defer s.cbMu.Unlock()
	s.callbacks = append(s.callbacks, cb)
}

func (s *localStore) Close() error {
	return s.db.Close()
}

func (s *localStore) readAll(ctx context.Context, q querier, table models.Table) ([]models.Row, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllQuery(table)
	if err != nil {
		return nil, localStoreError(ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localStore.readAll").
			Str("table", table.String()).
			Msg("failed to execute query for reading table")
		return nil, localStoreError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, localStoreError(ErrScanningRows, err)
	}

	result := make([]models.Row, 0, 64)
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}

		if err := rows.Scan(dest...); err != nil {
			log.Err(err).
				Str("func", "localStore.readAll").
				Str("table", table.String()).
				Msg("failed to scan row")
			return nil, localStoreError(ErrScanningRows, err)
		}

		row := make(models.Row, len(columns))
		for i, c := range columns {
			row[c] = values[i]
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "localStore.readAll").
			Str("table", table.String()).
			Msg("error occurred during rows iteration")
		return nil, localStoreError(ErrScanningRows, err)
	}

	return result, nil
}

// splitRow keeps the columns known to table, sorted by name, with values
// converted to driver-friendly types. Unknown column names are returned in
// dropped.
func (s *localStore) splitRow(table models.Table, row models.Row) (columns []string, values []any, dropped []string, err error) {
	known := s.columns[table]

	for c := range row {
		if _, ok := known[c]; !ok {
			dropped = append(dropped, c)
			continue
		}
		columns = append(columns, c)
	}
	sort.Strings(columns)
	sort.Strings(dropped)

	values = make([]any, len(columns))
	for i, c := range columns {
		v, convErr := normalizeValue(row[c])
		if convErr != nil {
			return nil, nil, nil, fmt.Errorf("%w: column %s: %w", ErrInvalidRow, c, convErr)
		}
		values[i] = v
	}

	return columns, values, dropped, nil
}

func (s *localStore) insert(ctx context.Context, tx *sql.Tx, table models.Table, row models.Row) (int64, []string, error) {
	if raw, ok := row[models.IDColumn]; ok && raw != nil {
		if _, ok := row.ID(); !ok {
			return 0, nil, fmt.Errorf("%w: non-integer id %v", ErrInvalidRow, raw)
		}
	}

	columns, values, dropped, err := s.splitRow(table, row)
	if err != nil {
		return 0, nil, err
	}
	if len(columns) == 0 {
		return 0, dropped, fmt.Errorf("%w: no known columns for %s", ErrInvalidRow, table)
	}

	query, args, err := buildInsertQuery(table, columns, values)
	if err != nil {
		return 0, dropped, localStoreError(ErrBuildingSQLQuery, err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, dropped, localStoreError(ErrExecutingStatement, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, dropped, localStoreError(ErrExecutingStatement, err)
	}

	return id, dropped, nil
}

func (s *localStore) clear(ctx context.Context, tx *sql.Tx, table models.Table) error {
	query, args, err := buildClearQuery(table)
	if err != nil {
		return localStoreError(ErrBuildingSQLQuery, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localStore.clear").
			Str("table", table.String()).
			Msg("failed to clear table")
		return localStoreError(ErrExecutingStatement, err)
	}

	return nil
}

// normalizeValue converts values decoded from JSON into types the SQLite
// driver stores without loss.
func normalizeValue(v any) (any, error) {
	switch val := v.(type) {
	case nil, bool, string, []byte, time.Time,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32,
		float32, float64:
		return val, nil
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i, nil
		}
		if f, err := val.Float64(); err == nil {
			return f, nil
		}
		return val.String(), nil
	default:
		encoded, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		return string(encoded), nil
	}
}

type snapshotTx struct {
	store *localStore
	tx    *sql.Tx
}

func (t *snapshotTx) ReadAll(ctx context.Context, table models.Table) ([]models.Row, error) {
	if !t.store.HasTable(table) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	return t.store.readAll(ctx, t.tx, table)
}

func (t *snapshotTx) Clear(ctx context.Context, table models.Table) error {
	if !t.store.HasTable(table) {
		return fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	return t.store.clear(ctx, t.tx, table)
}

func (t *snapshotTx) BulkWrite(ctx context.Context, table models.Table, rows []models.Row) error {
	if !t.store.HasTable(table) {
		return fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}

	dropped := make(map[string]struct{})
	for i, row := range rows {
		_, droppedCols, err := t.store.insert(ctx, t.tx, table, row)
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "snapshotTx.BulkWrite").
				Str("table", table.String()).
				Int("row", i).
				Msg("failed to insert row")
			return err
		}
		for _, c := range droppedCols {
			dropped[c] = struct{}{}
		}
	}

	if len(dropped) > 0 {
		names := make([]string, 0, len(dropped))
		for c := range dropped {
			names = append(names, c)
		}
		sort.Strings(names)
		logger.FromContext(ctx).Debug().
			Str("func", "snapshotTx.BulkWrite").
			Str("table", table.String()).
			Strs("columns", names).
			Msg("dropped columns unknown to the local table")
	}

	return nil
}

func (t *snapshotTx) ReplaceAll(ctx context.Context, table models.Table, rows []models.Row) error {
	if err := t.Clear(ctx, table); err != nil {
		return err
	}
	return t.BulkWrite(ctx, table, rows)
}

type mutationTx struct {
	store *localStore
	tx    *sql.Tx
}

func (t *mutationTx) checkTable(table models.Table) error {
	if table == models.TableSettings || !t.store.HasTable(table) {
		return fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	return nil
}

func (t *mutationTx) ReadAll(ctx context.Context, table models.Table) ([]models.Row, error) {
	if err := t.checkTable(table); err != nil {
		return nil, err
	}
	return t.store.readAll(ctx, t.tx, table)
}

func (t *mutationTx) Insert(ctx context.Context, table models.Table, row models.Row) (int64, error) {
	if err := t.checkTable(table); err != nil {
		return 0, err
	}

	id, _, err := t.store.insert(ctx, t.tx, table, row)
	return id, err
}

func (t *mutationTx) Update(ctx context.Context, table models.Table, id int64, row models.Row) error {
	if err := t.checkTable(table); err != nil {
		return err
	}

	fields := make(models.Row, len(row))
	for k, v := range row {
		if k != models.IDColumn {
			fields[k] = v
		}
	}

	columns, values, _, err := t.store.splitRow(table, fields)
	if err != nil {
		return err
	}
	if len(columns) == 0 {
		return fmt.Errorf("%w: no known columns for %s", ErrInvalidRow, table)
	}

	query, args, err := buildUpdateQuery(table, id, columns, values)
	if err != nil {
		return localStoreError(ErrBuildingSQLQuery, err)
	}

	res, err := t.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return localStoreError(ErrExecutingStatement, err)
	}

	return checkAffected(res, table, id)
}

func (t *mutationTx) Delete(ctx context.Context, table models.Table, id int64) error {
	if err := t.checkTable(table); err != nil {
		return err
	}

	query, args, err := buildDeleteQuery(table, id)
	if err != nil {
		return localStoreError(ErrBuildingSQLQuery, err)
	}

	res, err := t.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return localStoreError(ErrExecutingStatement, err)
	}

	return checkAffected(res, table, id)
}

func checkAffected(res sql.Result, table models.Table, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return localStoreError(ErrExecutingStatement, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s id=%d", ErrRowNotFound, table, id)
	}
	return nil
}
