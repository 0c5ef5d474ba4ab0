// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] to fields no source has set.
const (
	DefaultDSN             = "sitesync.db"
	DefaultRequestTimeout  = 15 * time.Second
	DefaultBatchSize       = 100
	DefaultPushInterval    = 5 * time.Minute
	DefaultHTTPAddress     = "127.0.0.1:8765"
	DefaultShutdownTimeout = 10 * time.Second
)

// ClientBridge holds settings used by the bridge client.
type ClientBridge struct {
	// RequestTimeout bounds every bridge call.
	RequestTimeout time.Duration
	// BatchSize is the number of rows per remote INSERT statement.
	BatchSize int
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups local storage settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSync holds sync unit settings.
type ClientSync struct {
	// Tables is the sync unit override; empty means the default unit.
	Tables []string
}

// ClientServer holds local control API settings.
type ClientServer struct {
	HTTPAddress     string
	ShutdownTimeout time.Duration
}

// ClientWorkers contains background worker settings.
type ClientWorkers struct {
	// PushInterval defines how often the periodic push worker runs.
	PushInterval time.Duration
}

// ClientLog contains logging settings.
type ClientLog struct {
	File string
}

// ClientConfig is the runtime configuration of site-sync assembled from
// [StructuredConfig] with defaults applied.
type ClientConfig struct {
	Bridge  ClientBridge
	Storage ClientStorage
	Sync    ClientSync
	Server  ClientServer
	Workers ClientWorkers
	Log     ClientLog
}

// GetClientConfig builds and validates the runtime config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], fills defaults for
// unset fields and validates the resulting [ClientConfig].
func GetClientConfig(flags *Flags) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps a [StructuredConfig] to a [ClientConfig] and applies
// defaults. It does not validate.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		Bridge: ClientBridge{
			RequestTimeout: cfg.Bridge.RequestTimeout,
			BatchSize:      cfg.Bridge.BatchSize,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Sync: ClientSync{Tables: cfg.Sync.Tables},
		Server: ClientServer{
			HTTPAddress:     cfg.Server.HTTPAddress,
			ShutdownTimeout: cfg.Server.ShutdownTimeout,
		},
		Workers: ClientWorkers{PushInterval: cfg.Workers.PushInterval},
		Log:     ClientLog{File: cfg.Log.File},
	}

	if clientCfg.Storage.DB.DSN == "" {
		clientCfg.Storage.DB.DSN = DefaultDSN
	}
	if clientCfg.Bridge.RequestTimeout == 0 {
		clientCfg.Bridge.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Bridge.BatchSize == 0 {
		clientCfg.Bridge.BatchSize = DefaultBatchSize
	}
	if clientCfg.Server.HTTPAddress == "" {
		clientCfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if clientCfg.Server.ShutdownTimeout == 0 {
		clientCfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if clientCfg.Workers.PushInterval == 0 {
		clientCfg.Workers.PushInterval = DefaultPushInterval
	}

	return clientCfg
}
