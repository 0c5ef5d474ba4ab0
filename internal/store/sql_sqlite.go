// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/site-sync/internal/config"
	"github.com/MKhiriev/site-sync/internal/logger"
)

// driver options appended to the configured path unless already present.
// _txlock=immediate makes every transaction take the write lock at BEGIN, so
// two writers never hold overlapping read snapshots of the same table.
var sqliteDSNOptions = []struct {
	key   string
	value string
}{
	{"_busy_timeout", "5000"},
	{"_txlock", "immediate"},
	{"_journal_mode", "WAL"},
}

// NewConnectSQLite opens the SQLite database file at cfg.DSN, creating it
// when it does not exist, and pings it.
func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	path, _, _ := strings.Cut(cfg.DSN, "?")
	if err := createLocalDBFileIfNotExists(path); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", buildSQLiteDSN(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewSQLiteErrorClassifier(),
	}, nil
}

func buildSQLiteDSN(dsn string) string {
	var b strings.Builder
	b.WriteString(dsn)

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	for _, opt := range sqliteDSNOptions {
		if strings.Contains(dsn, opt.key+"=") {
			continue
		}
		b.WriteString(sep)
		b.WriteString(opt.key)
		b.WriteString("=")
		b.WriteString(opt.value)
		sep = "&"
	}

	return b.String()
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("error creating DB dir: %w", err)
			}
		}
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
