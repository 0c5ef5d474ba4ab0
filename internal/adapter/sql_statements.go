// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/site-sync/models"
)

// The bridge carries one SQL string and no bound parameters, so values are
// rendered as MySQL literals and passed to squirrel as raw expressions.

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\x00", `\0`,
	"\n", `\n`,
	"\r", `\r`,
	"\x1a", `\Z`,
)

func validateIdent(name string) error {
	if !identPattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidTableName, name)
	}
	return nil
}

func quoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func buildSelectAllSQL(table models.Table) (string, error) {
	if err := validateIdent(table.String()); err != nil {
		return "", err
	}

	query, _, err := sq.Select("*").From(quoteIdent(table.String())).ToSql()
	return query, err
}

func buildDeleteAllSQL(table models.Table) (string, error) {
	if err := validateIdent(table.String()); err != nil {
		return "", err
	}

	query, _, err := sq.Delete(quoteIdent(table.String())).ToSql()
	return query, err
}

// buildInsertSQL renders rows as multi-row INSERT statements of at most
// batchSize rows each. Columns are the sorted union of every row's keys;
// a row without a column gets NULL.
func buildInsertSQL(table models.Table, rows []models.Row, batchSize int) ([]string, error) {
	if err := validateIdent(table.String()); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if batchSize <= 0 {
		batchSize = len(rows)
	}

	columns := unionColumns(rows)
	quoted := make([]string, len(columns))
	for i, c := range columns {
		if err := validateIdent(c); err != nil {
			return nil, fmt.Errorf("column of %s: %w", table, err)
		}
		quoted[i] = quoteIdent(c)
	}

	statements := make([]string, 0, (len(rows)+batchSize-1)/batchSize)
	for start := 0; start < len(rows); start += batchSize {
		end := min(start+batchSize, len(rows))

		builder := sq.Insert(quoteIdent(table.String())).Columns(quoted...)
		for _, row := range rows[start:end] {
			values := make([]any, len(columns))
			for i, c := range columns {
				lit, err := sqlLiteral(row[c])
				if err != nil {
					return nil, fmt.Errorf("column %s of %s: %w", c, table, err)
				}
				values[i] = sq.Expr(lit)
			}
			builder = builder.Values(values...)
		}

		query, _, err := builder.ToSql()
		if err != nil {
			return nil, err
		}
		statements = append(statements, query)
	}

	return statements, nil
}

func unionColumns(rows []models.Row) []string {
	seen := make(map[string]struct{})
	for _, row := range rows {
		for c := range row {
			seen[c] = struct{}{}
		}
	}

	columns := make([]string, 0, len(seen))
	for c := range seen {
		columns = append(columns, c)
	}
	sort.Strings(columns)

	return columns
}

// sqlLiteral renders v as a MySQL literal.
func sqlLiteral(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "NULL", nil
	case bool:
		if val {
			return "1", nil
		}
		return "0", nil
	case int:
		return strconv.Itoa(val), nil
	case int32:
		return strconv.FormatInt(int64(val), 10), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case uint64:
		return strconv.FormatUint(val, 10), nil
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case json.Number:
		if _, err := val.Float64(); err != nil {
			return "", fmt.Errorf("invalid number %q", val.String())
		}
		return val.String(), nil
	case string:
		return quoteString(val), nil
	case []byte:
		if len(val) == 0 {
			return "''", nil
		}
		return "X'" + hex.EncodeToString(val) + "'", nil
	case time.Time:
		return quoteString(val.Format(time.DateTime)), nil
	default:
		encoded, err := json.Marshal(val)
		if err != nil {
			return "", err
		}
		return quoteString(string(encoded)), nil
	}
}

func quoteString(s string) string {
	return "'" + literalEscaper.Replace(s) + "'"
}
