// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/site-sync/models"
)

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, `"projects"`, quoteIdent("projects"))
	assert.Equal(t, `"we""ird"`, quoteIdent(`we"ird`))
}

func TestBuildSelectAllQuery(t *testing.T) {
	query, args, err := buildSelectAllQuery(models.TableProjects)
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "projects" ORDER BY rowid`, query)
	assert.Empty(t, args)
}

func TestBuildClearQuery(t *testing.T) {
	query, args, err := buildClearQuery(models.TableInventory)
	require.NoError(t, err)
	assert.Equal(t, `DELETE FROM "inventory"`, query)
	assert.Empty(t, args)
}

func TestBuildInsertQuery(t *testing.T) {
	query, args, err := buildInsertQuery(models.TableWorkers,
		[]string{"id", "name"}, []any{int64(3), "Ana"})
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "workers" ("id","name") VALUES (?,?)`, query)
	assert.Equal(t, []any{int64(3), "Ana"}, args)
}

func TestBuildUpdateQuery(t *testing.T) {
	query, args, err := buildUpdateQuery(models.TableWorkers, 9,
		[]string{"name", "role"}, []any{"Ana", "foreman"})
	require.NoError(t, err)
	assert.Equal(t, `UPDATE "workers" SET "name" = ?, "role" = ? WHERE "id" = ?`, query)
	assert.Equal(t, []any{"Ana", "foreman", int64(9)}, args)
}

func TestBuildDeleteQuery(t *testing.T) {
	query, args, err := buildDeleteQuery(models.TableUsers, 4)
	require.NoError(t, err)
	assert.Equal(t, `DELETE FROM "users" WHERE "id" = ?`, query)
	assert.Equal(t, []any{int64(4)}, args)
}

func TestBuildUpsertSettingsQuery(t *testing.T) {
	query, args, err := buildUpsertSettingsQuery(map[string]string{
		"remote_db_user": "site",
		"remote_db_host": "db",
	})
	require.NoError(t, err)
	assert.Equal(t,
		`INSERT INTO settings (key,value) VALUES (?,?),(?,?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		query)
	// keys are sorted
	assert.Equal(t, []any{"remote_db_host", "db", "remote_db_user", "site"}, args)
}
