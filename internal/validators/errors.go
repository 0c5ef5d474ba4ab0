// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyHost        = errors.New("host is required")
	ErrInvalidPort      = errors.New("port must be between 1 and 65535")
	ErrEmptyUser        = errors.New("user is required")
	ErrEmptyDatabase    = errors.New("database is required")
	ErrInvalidBridgeURL = errors.New("bridge URL must be an absolute http or https URL")
)
