// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Bridge: Bridge{BatchSize: 50}},
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:9000"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Bridge.BatchSize)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
}

// TestBuild_LaterSourceOverrides verifies that non-zero fields of later
// configs replace those of earlier ones while zero fields keep the earlier
// value.
func TestBuild_LaterSourceOverrides(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Storage: Storage{DB: DB{DSN: "env.db"}},
			Bridge:  Bridge{BatchSize: 10},
		},
		&StructuredConfig{
			Storage: Storage{DB: DB{DSN: "flag.db"}},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 10, cfg.Bridge.BatchSize)
}

// TestBuild_ValidationError verifies that the merged result is validated.
func TestBuild_ValidationError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Bridge: Bridge{BatchSize: -1},
	})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidBridgeConfigs)
}

// TestBuild_SingleConfig verifies that a single config is returned as-is.
func TestBuild_SingleConfig(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "single.db"}},
		Sync:    Sync{Tables: []string{"projects"}},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "single.db", cfg.Storage.DB.DSN)
	assert.Equal(t, []string{"projects"}, cfg.Sync.Tables)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_AppendsOneConfig verifies that withEnv appends exactly one entry.
func TestWithEnv_AppendsOneConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.Len(t, b.configs, 1)
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_DB_DSN":    "env.db",
		"BRIDGE_BATCH_SIZE": "42",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env.db", b.configs[0].Storage.DB.DSN)
	assert.Equal(t, 42, b.configs[0].Bridge.BatchSize)
}

// TestWithEnv_NoErrorOnEmptyEnv verifies that withEnv does not set b.err
// when no relevant env vars are present.
func TestWithEnv_NoErrorOnEmptyEnv(t *testing.T) {
	clearEnvVars(t)
	b := newConfigBuilder()
	b.withEnv()
	assert.NoError(t, b.err)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	assert.Same(t, b, b.withFlags(BindFlags(fs)))
}

// TestWithFlags_AppendsParsedValues verifies that parsed flag values are
// appended as one config.
func TestWithFlags_AppendsParsedValues(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--dsn", "flag.db", "--push-interval", "30s"}))

	b := newConfigBuilder()
	b.withFlags(flags)

	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag.db", b.configs[0].Storage.DB.DSN)
	assert.Equal(t, 30*time.Second, b.configs[0].Workers.PushInterval)
}

// TestWithFlags_NilFlags verifies that a nil holder contributes an empty config.
func TestWithFlags_NilFlags(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags(nil)

	require.Len(t, b.configs, 1)
	assert.Equal(t, &StructuredConfig{}, b.configs[0])
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_ReturnsBuilder verifies the fluent interface.
func TestWithJSON_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withJSON())
}

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Storage.DB.DSN = "json.db"
	payload.Bridge.BatchSize = 7
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json.db", b.configs[1].Storage.DB.DSN)
	assert.Equal(t, 7, b.configs[1].Bridge.BatchSize)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_SetsError_WhenMalformedJSON verifies that invalid JSON content
// sets b.err.
func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Log.File = "last-wins.log"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins.log", b.configs[2].Log.File)
}

// TestWithJSON_DoesNotAppend_WhenErrorAlreadySet verifies that if b.err is
// already set before withJSON is called, the error is preserved and no new
// config is appended.
func TestWithJSON_DoesNotAppend_WhenErrorAlreadySet(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Log.File = "kept.log"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.err = assert.AnError
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	// withJSON itself succeeds (file is valid), so it still appends; the
	// pre-existing error is preserved alongside.
	assert.ErrorIs(t, b.err, assert.AnError)
}

// TestGetStructuredConfig_JSONOverridesFlags verifies the full pipeline with
// the JSON path taken from the flags.
func TestGetStructuredConfig_JSONOverridesFlags(t *testing.T) {
	clearEnvVars(t)

	payload := StructuredJSONConfig{}
	payload.Storage.DB.DSN = "json.db"
	path := writeTempJSONConfig(t, payload)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"-c", path, "-d", "flag.db", "--batch-size", "5"}))

	cfg, err := GetStructuredConfig(flags)
	require.NoError(t, err)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 5, cfg.Bridge.BatchSize)
	assert.Equal(t, path, cfg.JSONFilePath)
}
