// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/site-sync/internal/config"
	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/utils"
	"github.com/MKhiriev/site-sync/models"
)

type httpBridgeClient struct {
	client    *utils.HTTPClient
	batchSize int

	logger *logger.Logger
}

// NewHTTPBridgeClient constructs the resty-backed [BridgeClient]. Every
// request is bounded by cfg.RequestTimeout; a timeout resolves to
// [ErrConnection]. The bridge URL is taken from the profile of each call.
func NewHTTPBridgeClient(cfg config.ClientBridge, logger *logger.Logger) BridgeClient {
	client := utils.NewHTTPClient(logger)
	client.
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = config.DefaultBatchSize
	}

	return &httpBridgeClient{client: client, batchSize: batchSize, logger: logger}
}

// Execute implements [BridgeClient].
func (h *httpBridgeClient) Execute(ctx context.Context, profile models.ConnectionProfile, sql string) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	if !profile.IsComplete() {
		return nil, ErrProfileIncomplete
	}
	endpoint, err := normalizeBridgeURL(profile.BridgeURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProfileIncomplete, err)
	}

	body := models.BridgeRequest{
		Action:   models.BridgeActionQuery,
		Host:     profile.Host,
		User:     profile.User,
		Password: profile.Password,
		Database: profile.Database,
		Port:     profile.EffectivePort(),
		SQL:      sql,
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(endpoint)
	if err != nil {
		log.Err(err).
			Str("func", "httpBridgeClient.Execute").
			Str("host", profile.Host).
			Msg("bridge request failed")
		return nil, mapRequestError(err)
	}

	if err = mapHTTPError(resp); err != nil {
		log.Warn().
			Str("func", "httpBridgeClient.Execute").
			Int("status", resp.StatusCode()).
			Msg("bridge answered with non-2xx status")
		return nil, err
	}

	data, err := mapEnvelope(resp.Body())
	if err != nil {
		log.Warn().
			Err(err).
			Str("func", "httpBridgeClient.Execute").
			Msg("bridge response was not accepted")
		return nil, err
	}

	return data, nil
}

// Probe implements [BridgeClient].
func (h *httpBridgeClient) Probe(ctx context.Context, profile models.ConnectionProfile) error {
	_, err := h.Execute(ctx, profile, models.ProbeSQL)
	if err != nil {
		return fmt.Errorf("probe: %w", err)
	}
	return nil
}

// FetchTable implements [BridgeClient].
func (h *httpBridgeClient) FetchTable(ctx context.Context, profile models.ConnectionProfile, table models.Table) ([]models.Row, error) {
	query, err := buildSelectAllSQL(table)
	if err != nil {
		return nil, err
	}

	data, err := h.Execute(ctx, profile, query)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", table, err)
	}

	rows, err := decodeRows(data)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", table, err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "httpBridgeClient.FetchTable").
		Str("table", table.String()).
		Int("rows", len(rows)).
		Msg("fetched remote table")

	return rows, nil
}

// ReplaceTable implements [BridgeClient]. The delete and the insert batches
// are separate bridge requests.
func (h *httpBridgeClient) ReplaceTable(ctx context.Context, profile models.ConnectionProfile, table models.Table, rows []models.Row) error {
	deleteSQL, err := buildDeleteAllSQL(table)
	if err != nil {
		return err
	}
	inserts, err := buildInsertSQL(table, rows, h.batchSize)
	if err != nil {
		return fmt.Errorf("replace %s: %w", table, err)
	}

	if _, err := h.Execute(ctx, profile, deleteSQL); err != nil {
		return fmt.Errorf("replace %s: delete: %w", table, err)
	}

	for i, stmt := range inserts {
		if _, err := h.Execute(ctx, profile, stmt); err != nil {
			return fmt.Errorf("replace %s: insert batch %d/%d: %w", table, i+1, len(inserts), err)
		}
	}

	logger.FromContext(ctx).Debug().
		Str("func", "httpBridgeClient.ReplaceTable").
		Str("table", table.String()).
		Int("rows", len(rows)).
		Int("batches", len(inserts)).
		Msg("replaced remote table")

	return nil
}

// decodeRows expects data to be a JSON array of objects.
func decodeRows(data json.RawMessage) ([]models.Row, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: data is not an array", ErrProtocol)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var rows []models.Row
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProtocol, err)
	}
	for i, row := range rows {
		if row == nil {
			return nil, fmt.Errorf("%w: element %d is not an object", ErrProtocol, i)
		}
	}
	if rows == nil {
		rows = []models.Row{}
	}

	return rows, nil
}

func normalizeBridgeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty bridge url")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("bridge url must include host and scheme")
	}

	return u.String(), nil
}
