// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strconv"
)

// Table is the name of an entity table in the local store and on the remote
// database. Both sides use the same names.
type Table string

// Entity tables known to the local schema.
const (
	TableProjects           Table = "projects"
	TableInventory          Table = "inventory"
	TableTransactions       Table = "transactions"
	TableWorkers            Table = "workers"
	TableUsers              Table = "users"
	TableDailyLogs          Table = "daily_logs"
	TableAttendance         Table = "attendance"
	TableWarehouseMovements Table = "warehouse_movements"

	// TableSettings holds the remote connection profile. It is local-only
	// and never part of a sync unit.
	TableSettings Table = "settings"
)

// String implements fmt.Stringer.
func (t Table) String() string {
	return string(t)
}

// Row is a single record of an entity table keyed by column name. The "id"
// column carries the integer surrogate identifier.
type Row map[string]any

// IDColumn is the name of the surrogate identifier column of every entity table.
const IDColumn = "id"

// SyncUnit is the fixed, ordered set of tables synchronised together by one
// pull or one push pass.
type SyncUnit []Table

// DefaultSyncUnit returns the tables synchronised when no override is
// configured, in the order pull fetches and push replaces them. Push deletes
// and refills one table before moving to the next, so the remote must not
// enforce foreign keys between these tables.
func DefaultSyncUnit() SyncUnit {
	return SyncUnit{
		TableProjects,
		TableInventory,
		TableTransactions,
		TableWorkers,
		TableUsers,
		TableDailyLogs,
		TableAttendance,
		TableWarehouseMovements,
	}
}

// Contains reports whether t belongs to the unit.
func (u SyncUnit) Contains(t Table) bool {
	for _, table := range u {
		if table == t {
			return true
		}
	}
	return false
}

// Strings returns the table names as plain strings.
func (u SyncUnit) Strings() []string {
	out := make([]string, 0, len(u))
	for _, t := range u {
		out = append(out, string(t))
	}
	return out
}

// ID returns the integer value of the row's id column. Values decoded from
// JSON (json.Number, float64) and from SQLite (int64) are accepted.
func (r Row) ID() (int64, bool) {
	switch v := r[IDColumn].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case float64:
		if v != float64(int64(v)) {
			return 0, false
		}
		return int64(v), true
	case json.Number:
		id, err := v.Int64()
		return id, err == nil
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		return id, err == nil
	default:
		return 0, false
	}
}
