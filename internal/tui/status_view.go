// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"time"

	"github.com/MKhiriev/site-sync/models"
)

// RenderStatus formats the orchestrator status and the stored profile for
// the status command. The password is never shown.
func RenderStatus(status models.SyncStatus, profile models.ConnectionProfile, unit models.SyncUnit) string {
	var b strings.Builder

	b.WriteString(field("State", status.State.String()))
	b.WriteString("\n")
	b.WriteString(field("Sync unit", strings.Join(unit.Strings(), ", ")))
	b.WriteString("\n\n")

	if profile.IsComplete() {
		b.WriteString(field("Bridge", profile.BridgeURL))
		b.WriteString("\n")
		b.WriteString(field("Database", profile.User+"@"+profile.Host+"/"+profile.Database))
		b.WriteString("\n\n")
	} else {
		b.WriteString(errorStyle.Render("Remote connection is not configured, run setup"))
		b.WriteString("\n\n")
	}

	b.WriteString(field("Last pull", formatTime(status.LastPullAt)))
	b.WriteString("\n")
	if status.LastPullError != "" {
		b.WriteString(field("", errorStyle.Render(status.LastPullError)))
		b.WriteString("\n")
	}

	b.WriteString(field("Last push", formatTime(status.LastPushAt)))
	b.WriteString("\n")
	b.WriteString(field("Outcome", valueOrDash(string(status.LastPushOutcome))))
	if status.LastPushError != "" {
		b.WriteString("\n")
		b.WriteString(field("", errorStyle.Render(status.LastPushError)))
	}

	return renderPage("SITE-SYNC STATUS", b.String(), "")
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.DateTime)
}
