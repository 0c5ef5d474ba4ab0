// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the merged [StructuredConfig] for values that no default
// can repair.
func (cfg *StructuredConfig) validate() error {
	if cfg.Bridge.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidBridgeConfigs)
	}
	if cfg.Bridge.BatchSize < 0 {
		return fmt.Errorf("%w: negative batch size", ErrInvalidBridgeConfigs)
	}
	if cfg.Workers.PushInterval < 0 {
		return fmt.Errorf("%w: negative push interval", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Bridge.RequestTimeout <= 0 || cfg.Bridge.BatchSize <= 0 {
		return ErrInvalidBridgeConfigs
	}

	for _, table := range cfg.Sync.Tables {
		if strings.TrimSpace(table) == "" {
			return ErrInvalidSyncConfigs
		}
	}

	if cfg.Workers.PushInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
