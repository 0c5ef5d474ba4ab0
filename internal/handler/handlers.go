// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/site-sync/internal/config"
	"github.com/MKhiriev/site-sync/internal/handler/http"
	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/service"
	"github.com/MKhiriev/site-sync/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, localStore store.LocalStore, cfg config.ClientServer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, localStore, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
