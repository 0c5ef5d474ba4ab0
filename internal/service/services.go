// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/site-sync/internal/adapter"
	"github.com/MKhiriev/site-sync/internal/config"
	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/store"
)

type Services struct {
	Settings     SettingsStore
	Orchestrator SyncOrchestrator
	MutationHook *MutationHook
}

// NewServices builds the service layer and registers the mutation hook on
// the local store. A background push may run for at most one push interval.
func NewServices(storages *store.Storages, bridge adapter.BridgeClient, cfg *config.ClientConfig, logger *logger.Logger) (*Services, error) {
	settings := NewSettingsStore(storages.Settings, logger)

	orchestrator, err := NewSyncOrchestrator(storages.LocalStore, storages.SyncLock, bridge, settings, SyncUnitFromNames(cfg.Sync.Tables), logger)
	if err != nil {
		return nil, fmt.Errorf("error creating sync orchestrator: %w", err)
	}

	hook := NewMutationHook(orchestrator, cfg.Workers.PushInterval, logger)
	hook.Register(storages.LocalStore)

	return &Services{
		Settings:     settings,
		Orchestrator: orchestrator,
		MutationHook: hook,
	}, nil
}
