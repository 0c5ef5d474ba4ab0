// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for values that enter the
// sync engine from users: the connection profile typed into the setup form
// or sent to the control API.
//
// Validate accepts optional field names to restrict validation to a subset
// of fields.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
