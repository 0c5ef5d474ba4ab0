// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sort"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/site-sync/models"
)

const (
	listTables = `SELECT name FROM sqlite_master
		WHERE type = 'table'
		  AND name NOT LIKE 'sqlite_%'
		  AND name <> 'goose_db_version'
		ORDER BY name;`

	tableInfo = `SELECT name FROM pragma_table_info(?) ORDER BY cid;`

	selectAllSettings = `SELECT key, value FROM settings;`

	upsertSettingsSuffix = `ON CONFLICT(key) DO UPDATE SET value = excluded.value`
)

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func buildSelectAllQuery(table models.Table) (string, []any, error) {
	return sqlite.Select("*").
		From(quoteIdent(table.String())).
		OrderBy("rowid").
		ToSql()
}

func buildClearQuery(table models.Table) (string, []any, error) {
	return sqlite.Delete(quoteIdent(table.String())).ToSql()
}

// buildInsertQuery builds a single-row INSERT. columns and values are parallel.
func buildInsertQuery(table models.Table, columns []string, values []any) (string, []any, error) {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quoteIdent(c)
	}

	return sqlite.Insert(quoteIdent(table.String())).
		Columns(quoted...).
		Values(values...).
		ToSql()
}

func buildUpdateQuery(table models.Table, id int64, columns []string, values []any) (string, []any, error) {
	builder := sqlite.Update(quoteIdent(table.String()))
	for i, c := range columns {
		builder = builder.Set(quoteIdent(c), values[i])
	}

	return builder.Where(sq.Eq{quoteIdent(models.IDColumn): id}).ToSql()
}

func buildDeleteQuery(table models.Table, id int64) (string, []any, error) {
	return sqlite.Delete(quoteIdent(table.String())).
		Where(sq.Eq{quoteIdent(models.IDColumn): id}).
		ToSql()
}

// buildUpsertSettingsQuery writes every pair in one statement. Keys are
// sorted so the generated SQL is stable.
func buildUpsertSettingsQuery(kv map[string]string) (string, []any, error) {
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	builder := sqlite.Insert(string(models.TableSettings)).Columns("key", "value")
	for _, k := range keys {
		builder = builder.Values(k, kv[k])
	}

	return builder.Suffix(upsertSettingsSuffix).ToSql()
}
