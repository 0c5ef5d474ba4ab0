// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/store"
	"github.com/MKhiriev/site-sync/models"
)

// Keys of the settings table holding the remote connection profile.
const (
	SettingRemoteHost     = "remote_db_host"
	SettingRemotePort     = "remote_db_port"
	SettingRemoteUser     = "remote_db_user"
	SettingRemotePassword = "remote_db_password"
	SettingRemoteDatabase = "remote_db_name"
	SettingRemoteAPIURL   = "remote_api_url"
)

type settingsStore struct {
	repo   store.SettingsRepository
	logger *logger.Logger
}

// NewSettingsStore returns a [SettingsStore] backed by repo.
func NewSettingsStore(repo store.SettingsRepository, logger *logger.Logger) SettingsStore {
	return &settingsStore{repo: repo, logger: logger}
}

func (s *settingsStore) Load(ctx context.Context) (models.ConnectionProfile, error) {
	kv, err := s.repo.GetAll(ctx)
	if err != nil {
		return models.ConnectionProfile{}, fmt.Errorf("load settings: %w", err)
	}

	profile := models.ConnectionProfile{
		Host:      kv[SettingRemoteHost],
		Port:      models.DefaultRemotePort,
		User:      kv[SettingRemoteUser],
		Password:  kv[SettingRemotePassword],
		Database:  kv[SettingRemoteDatabase],
		BridgeURL: kv[SettingRemoteAPIURL],
	}

	if raw := strings.TrimSpace(kv[SettingRemotePort]); raw != "" {
		port, convErr := strconv.Atoi(raw)
		if convErr != nil || port < 0 || port > 65535 {
			s.logger.Warn().
				Str("func", "settingsStore.Load").
				Str("value", raw).
				Msg("stored remote port is invalid, using default")
		} else {
			profile.Port = port
		}
	}

	return profile, nil
}

func (s *settingsStore) Save(ctx context.Context, profile models.ConnectionProfile) error {
	kv := map[string]string{
		SettingRemoteHost:     profile.Host,
		SettingRemotePort:     strconv.Itoa(profile.Port),
		SettingRemoteUser:     profile.User,
		SettingRemotePassword: profile.Password,
		SettingRemoteDatabase: profile.Database,
		SettingRemoteAPIURL:   profile.BridgeURL,
	}

	if err := s.repo.Upsert(ctx, kv); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	s.logger.Info().
		Str("func", "settingsStore.Save").
		Str("host", profile.Host).
		Str("database", profile.Database).
		Msg("remote connection profile saved")

	return nil
}

func (s *settingsStore) IsConfigured(ctx context.Context) (bool, error) {
	profile, err := s.Load(ctx)
	if err != nil {
		return false, err
	}
	return profile.IsComplete(), nil
}
