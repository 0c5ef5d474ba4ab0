// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"storage": { "db": { "dsn": "/data/site.db" } },
		"bridge": { "request_timeout": "20s", "batch_size": 50 },
		"sync": { "tables": ["projects", "inventory"] },
		"server": { "http_address": "127.0.0.1:8765", "shutdown_timeout": "5s" },
		"workers": { "push_interval": "10m" },
		"log": { "file": "/tmp/sitesync.log" }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/data/site.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 20*time.Second, cfg.Bridge.RequestTimeout)
	assert.Equal(t, 50, cfg.Bridge.BatchSize)
	assert.Equal(t, []string{"projects", "inventory"}, cfg.Sync.Tables)
	assert.Equal(t, "127.0.0.1:8765", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Workers.PushInterval)
	assert.Equal(t, "/tmp/sitesync.log", cfg.Log.File)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")

	jsonBody := `{
		"bridge": { "request_timeout": "not-a-duration" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_NumericDuration(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "numeric.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"workers": {"push_interval": 1000000000}}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Workers.PushInterval)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseJSON_PartialObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "partial.json")

	jsonBody := `{
		"server": { "http_address": "127.0.0.1:8000" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "127.0.0.1:8000", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.ShutdownTimeout)

	// Others remain zero
	assert.Equal(t, Bridge{}, cfg.Bridge)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Workers{}, cfg.Workers)
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Second))

	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))
}
