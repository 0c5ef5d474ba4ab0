// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidBridgeConfigs indicates invalid bridge client settings
	// (for example, a non-positive request timeout or batch size).
	ErrInvalidBridgeConfigs = errors.New("invalid bridge configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSyncConfigs indicates an invalid sync unit override.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidServerConfigs indicates invalid local API settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero push interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
