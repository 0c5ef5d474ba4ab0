// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"
	"time"

	"github.com/MKhiriev/site-sync/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderStatus_Configured(t *testing.T) {
	pulled := time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC)
	status := models.SyncStatus{
		State:           models.SyncIdle,
		LastPullAt:      &pulled,
		LastPushAt:      &pulled,
		LastPushOutcome: models.PushPartial,
		LastPushError:   "bridge is unreachable",
	}

	out := RenderStatus(status, storedProfile(), models.SyncUnit{models.TableProjects, models.TableWorkers})

	assert.Contains(t, out, "idle")
	assert.Contains(t, out, "projects, workers")
	assert.Contains(t, out, "https://example.com/bridge.php")
	assert.Contains(t, out, "site@db.example.com/site_db")
	assert.Contains(t, out, "partial")
	assert.Contains(t, out, "bridge is unreachable")
	assert.NotContains(t, out, "s3cret")
	assert.NotContains(t, out, "ctrl+c")
}

func TestRenderStatus_NotConfigured(t *testing.T) {
	out := RenderStatus(models.SyncStatus{}, models.ConnectionProfile{}, models.DefaultSyncUnit())

	assert.Contains(t, out, "not configured")
	assert.Contains(t, out, "Last pull")
}
