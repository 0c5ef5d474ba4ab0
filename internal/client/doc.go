// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the site-sync runtime.
//
// It opens the local store, builds the bridge client and the service layer,
// and for the serve command runs the control API together with the periodic
// push worker in a single process lifecycle.
package client
