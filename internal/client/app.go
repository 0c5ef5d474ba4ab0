// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/site-sync/internal/adapter"
	"github.com/MKhiriev/site-sync/internal/config"
	"github.com/MKhiriev/site-sync/internal/handler"
	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/server"
	"github.com/MKhiriev/site-sync/internal/service"
	"github.com/MKhiriev/site-sync/internal/store"
	"github.com/MKhiriev/site-sync/internal/workers"
)

// App owns the storages, the service layer and, when serving, the control
// API and the periodic push worker.
type App struct {
	cfg      *config.ClientConfig
	storages *store.Storages
	services *service.Services

	logger *logger.Logger
}

// NewApp opens the local store and builds the service layer. The mutation
// hook is registered here, so every command that writes through the store
// pushes afterwards.
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	bridge := adapter.NewHTTPBridgeClient(cfg.Bridge, logger)

	services, err := service.NewServices(storages, bridge, cfg, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create services: %w", err)
	}

	return &App{
		cfg:      cfg,
		storages: storages,
		services: services,
		logger:   logger,
	}, nil
}

func (a *App) Services() *service.Services {
	return a.services
}

func (a *App) LocalStore() store.LocalStore {
	return a.storages.LocalStore
}

// Run serves the control API and runs the periodic push worker until ctx is
// cancelled or a termination signal arrives.
func (a *App) Run(ctx context.Context) error {
	handlers, err := handler.NewHandlers(a.services, a.storages.LocalStore, a.cfg.Server, a.logger)
	if err != nil {
		return fmt.Errorf("create handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, a.cfg.Server, a.logger)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	background := workers.NewWorkers(
		workers.NewPushWorker(a.services.Orchestrator, a.cfg.Workers.PushInterval, a.logger),
	)
	background.Start(ctx)
	defer background.Stop()

	a.initialPull(ctx)

	return srv.RunServer(ctx)
}

// initialPull refreshes the local store from the stored profile. A missing
// profile is expected on first start.
func (a *App) initialPull(ctx context.Context) {
	err := a.services.Orchestrator.PullStored(ctx)
	switch {
	case err == nil:
		a.logger.Info().Str("func", "App.initialPull").Msg("local store refreshed from remote")
	case errors.Is(err, service.ErrNotConfigured):
		a.logger.Info().Str("func", "App.initialPull").Msg("remote connection is not configured yet")
	default:
		a.logger.Warn().Err(err).Str("func", "App.initialPull").Msg("initial pull failed, working offline")
	}
}

// Close waits for background pushes started by the mutation hook and closes
// the local store.
func (a *App) Close() error {
	a.services.MutationHook.Wait()
	return a.storages.Close()
}
