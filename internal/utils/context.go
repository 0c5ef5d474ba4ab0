// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across
// site-sync: type-safe context keys, JSON response writing, the HTTP client
// used by the bridge adapter and UUID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SyncIDCtxKey is the key used to store the identifier of the sync run
// (pull, push or reset) a context belongs to.
var SyncIDCtxKey = contextKey("syncID")

// TraceIDCtxKey is the key used to store the trace id of a local API request.
var TraceIDCtxKey = contextKey("traceID")

// WithSyncID returns a copy of ctx carrying syncID.
func WithSyncID(ctx context.Context, syncID string) context.Context {
	return context.WithValue(ctx, SyncIDCtxKey, syncID)
}

// GetSyncIDFromContext retrieves the sync run identifier from the context.
//
// Returns the id and an ok flag:
//   - ok == true  - value is found and is a string
//   - ok == false - value is missing or has an unexpected type
func GetSyncIDFromContext(ctx context.Context) (string, bool) {
	syncID, ok := ctx.Value(SyncIDCtxKey).(string)
	return syncID, ok
}

// GetTraceIDFromContext retrieves the request trace id from the context.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
