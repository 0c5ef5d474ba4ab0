// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// DefaultRemotePort is the standard port of the remote MySQL database. It is
// loaded when the stored profile has no usable remote_db_port key and used on
// the wire when the port is zero.
const DefaultRemotePort = 3306

// MaskedPassword replaces a stored password in logs and API responses.
const MaskedPassword = "********"

// ConnectionProfile holds the parameters needed to reach the remote database
// through the HTTP bridge. It is owned by the settings store and passed by
// value to the sync orchestrator and the bridge client.
type ConnectionProfile struct {
	// Host is the hostname of the remote database server as seen by the bridge.
	Host string `json:"host"`

	// Port is the remote database port. Zero means "use DefaultRemotePort".
	Port int `json:"port"`

	// User is the remote database user.
	User string `json:"user"`

	// Password is the remote database password. It may be empty.
	Password string `json:"password"`

	// Database is the remote database (schema) name.
	Database string `json:"database"`

	// BridgeURL is the absolute URL of the HTTP bridge endpoint.
	BridgeURL string `json:"bridge_url"`
}

// IsComplete reports whether every field required for a bridge call is set.
// Password and Port are optional.
func (p ConnectionProfile) IsComplete() bool {
	return strings.TrimSpace(p.Host) != "" &&
		strings.TrimSpace(p.User) != "" &&
		strings.TrimSpace(p.Database) != "" &&
		strings.TrimSpace(p.BridgeURL) != ""
}

// EffectivePort returns Port or DefaultRemotePort when Port is not set.
func (p ConnectionProfile) EffectivePort() int {
	if p.Port <= 0 {
		return DefaultRemotePort
	}
	return p.Port
}

// Masked returns a copy of the profile with the password replaced by a fixed
// placeholder, suitable for logs and API responses.
func (p ConnectionProfile) Masked() ConnectionProfile {
	if p.Password != "" {
		p.Password = MaskedPassword
	}
	return p
}
