// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for site-sync.
// It is populated by merging values from environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage holds the local embedded database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Bridge holds the settings of the outbound HTTP bridge client. The
	// remote connection profile itself lives in the local settings table,
	// not here.
	Bridge Bridge `envPrefix:"BRIDGE_"`

	// Sync holds the sync unit override.
	Sync Sync `envPrefix:"SYNC_"`

	// Server holds the local control API settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the local store.
type Storage struct {
	// DB holds the local SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (e.g. "./sitesync.db"). Driver options
	// such as _busy_timeout are appended by the store.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Bridge holds outbound HTTP bridge client settings.
type Bridge struct {
	// RequestTimeout bounds every bridge request (e.g. "15s").
	// Env: BRIDGE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// BatchSize is the number of rows per INSERT statement when a table is
	// replaced remotely.
	// Env: BRIDGE_BATCH_SIZE
	BatchSize int `env:"BATCH_SIZE"`
}

// Sync holds sync unit settings.
type Sync struct {
	// Tables overrides the default sync unit. Every table must exist in the
	// local schema.
	// Env: SYNC_TABLES (comma separated)
	Tables []string `env:"TABLES" envSeparator:","`
}

// Server holds the local control API settings.
type Server struct {
	// HTTPAddress is the TCP address of the local control API in
	// "host:port" format (e.g. "127.0.0.1:8765").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ShutdownTimeout bounds graceful shutdown of the API server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// PushInterval is how often the periodic push worker retries a push.
	// Env: WORKERS_PUSH_INTERVAL
	PushInterval time.Duration `env:"PUSH_INTERVAL"`
}

// Log holds logging settings.
type Log struct {
	// File is the rotating log file path used by the CLI. Empty means
	// "logs/sitesync.log" next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}
