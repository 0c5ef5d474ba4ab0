// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// BridgeActionQuery is the only action understood by the HTTP bridge.
const BridgeActionQuery = "query"

// ProbeSQL is the statement reserved for connectivity checks.
const ProbeSQL = "SELECT 1"

// BridgeRequest is the JSON body POSTed to the bridge. Connection fields are
// copied from the [ConnectionProfile] on every call.
type BridgeRequest struct {
	Action   string `json:"action"`
	Host     string `json:"host"`
	User     string `json:"user"`
	Password string `json:"password"`
	Database string `json:"database"`
	Port     int    `json:"port"`
	SQL      string `json:"sql"`
}

// BridgeResponse is the JSON envelope returned by the bridge.
//
// Success is a pointer so that a body without the flag can be told apart
// from an explicit false; both are treated as failures, but only the latter
// is a remote rejection.
type BridgeResponse struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}
