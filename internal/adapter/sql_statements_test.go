// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/site-sync/models"
)

func TestSQLLiteral(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "NULL"},
		{"true", true, "1"},
		{"false", false, "0"},
		{"int", 42, "42"},
		{"int64", int64(-7), "-7"},
		{"float", 1500.75, "1500.75"},
		{"large float without exponent", 1e21, "1000000000000000000000"},
		{"json number", json.Number("9007199254740993"), "9007199254740993"},
		{"plain string", "Tower A", "'Tower A'"},
		{"quote", "O'Brien", `'O\'Brien'`},
		{"backslash", `C:\site`, `'C:\\site'`},
		{"newline", "a\nb", `'a\nb'`},
		{"nul byte", "a\x00b", `'a\0b'`},
		{"bytes", []byte{0xde, 0xad}, "X'dead'"},
		{"time", time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC), "'2026-03-04 05:06:07'"},
		{"map", map[string]any{"k": "v"}, `'{"k":"v"}'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sqlLiteral(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSQLLiteral_InvalidNumber(t *testing.T) {
	_, err := sqlLiteral(json.Number("1; DROP TABLE x"))
	assert.Error(t, err)
}

func TestBuildInsertSQL_UnionOfColumns(t *testing.T) {
	rows := []models.Row{
		{"id": 1, "name": "O'Brien"},
		{"id": 2, "budget": json.Number("10.5")},
	}

	stmts, err := buildInsertSQL(models.TableProjects, rows, 100)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"INSERT INTO `projects` (`budget`,`id`,`name`) VALUES (NULL,1,'O\\'Brien'),(10.5,2,NULL)",
	}, stmts)
}

func TestBuildInsertSQL_Batches(t *testing.T) {
	rows := make([]models.Row, 7)
	for i := range rows {
		rows[i] = models.Row{"id": i + 1}
	}

	stmts, err := buildInsertSQL(models.TableUsers, rows, 3)
	require.NoError(t, err)
	assert.Len(t, stmts, 3)
	assert.Equal(t, "INSERT INTO `users` (`id`) VALUES (7)", stmts[2])
}

func TestBuildInsertSQL_NoRows(t *testing.T) {
	stmts, err := buildInsertSQL(models.TableUsers, nil, 3)
	require.NoError(t, err)
	assert.Empty(t, stmts)
}

func TestBuildInsertSQL_InvalidColumn(t *testing.T) {
	_, err := buildInsertSQL(models.TableUsers, []models.Row{{"id`; --": 1}}, 3)
	assert.ErrorIs(t, err, ErrInvalidTableName)
}

func TestBuildSelectAndDeleteSQL(t *testing.T) {
	sel, err := buildSelectAllSQL(models.TableDailyLogs)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM `daily_logs`", sel)

	del, err := buildDeleteAllSQL(models.TableDailyLogs)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM `daily_logs`", del)

	_, err = buildDeleteAllSQL("bad name")
	assert.ErrorIs(t, err, ErrInvalidTableName)
}

func TestErrorsFormatting(t *testing.T) {
	tErr := &TransportError{StatusCode: 502, Status: "502 Bad Gateway"}
	assert.Equal(t, "bridge transport error: HTTP 502 Bad Gateway", tErr.Error())

	assert.Equal(t, "bridge rejected request", (&RemoteRejectionError{}).Error())
	assert.Equal(t, "bridge rejected request: denied", (&RemoteRejectionError{Message: "denied"}).Error())
}
