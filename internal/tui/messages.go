// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// configureDoneMsg carries the result of Orchestrator.Configure.
type configureDoneMsg struct {
	err error
}

// testDoneMsg carries the result of Orchestrator.TestConnection.
type testDoneMsg struct {
	err error
}
