// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client for the remote HTTP bridge, the only
// way site-sync reaches the central relational database.
//
// Every call is one JSON POST carrying the connection profile and a single
// SQL string. Failures are reported with the sentinel values declared in
// errors.go so callers can use [errors.Is] and [errors.As]:
// [ErrConnection] when no response arrived, [TransportError] for a non-2xx
// status, [ErrProtocol] for a body that is not the expected envelope and
// [RemoteRejectionError] for a well-formed success:false answer.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/site-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/bridge_client_mock.go -package=mock

// BridgeClient speaks the bridge protocol. Implementations never touch the
// local store.
type BridgeClient interface {
	// Execute sends sql with the given profile and returns the raw data
	// payload of a successful response.
	Execute(ctx context.Context, profile models.ConnectionProfile, sql string) (json.RawMessage, error)

	// Probe sends the reserved connectivity query.
	Probe(ctx context.Context, profile models.ConnectionProfile) error

	// FetchTable returns every remote row of table. Numbers are decoded as
	// json.Number so integer ids survive unchanged.
	FetchTable(ctx context.Context, profile models.ConnectionProfile, table models.Table) ([]models.Row, error)

	// ReplaceTable deletes every remote row of table and inserts rows in
	// batches. Running it twice with the same rows yields the same remote
	// state.
	ReplaceTable(ctx context.Context, profile models.ConnectionProfile, table models.Table, rows []models.Row) error
}
