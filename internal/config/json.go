// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files. Durations
// are accepted either as strings ("15s") or as nanosecond numbers.
type StructuredJSONConfig struct {
	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Bridge struct {
		RequestTimeout Duration `json:"request_timeout"`
		BatchSize      int      `json:"batch_size"`
	} `json:"bridge,omitempty"`

	Sync struct {
		Tables []string `json:"tables"`
	} `json:"sync,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		PushInterval Duration `json:"push_interval"`
	} `json:"workers,omitempty"`

	Log struct {
		File string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Bridge: Bridge{
			RequestTimeout: time.Duration(jsonCfg.Bridge.RequestTimeout),
			BatchSize:      jsonCfg.Bridge.BatchSize,
		},
		Sync: Sync{Tables: jsonCfg.Sync.Tables},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Workers:      Workers{PushInterval: time.Duration(jsonCfg.Workers.PushInterval)},
		Log:          Log{File: jsonCfg.Log.File},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
