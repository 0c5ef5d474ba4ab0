// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the local control API of site-sync.
//
// It exposes sync status and triggers, the remote connection settings,
// factory reset and scoped row writes for the entity tables. Every row
// write goes through the local store's domain transactions, so it triggers
// the background push like any other local edit. Request tracing, access
// logging and panic recovery are handled by middleware before requests reach
// the service layer.
package http
