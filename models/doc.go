// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the data types shared by the store, adapter, service
// and transport layers of site-sync: entity tables and rows, the remote
// connection profile, the bridge wire envelope and sync reports.
package models
