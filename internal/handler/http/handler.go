// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/service"
	"github.com/MKhiriev/site-sync/internal/store"
)

type Handler struct {
	services   *service.Services
	localStore store.LocalStore

	logger *logger.Logger
}

func NewHandler(services *service.Services, localStore store.LocalStore, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		localStore: localStore,
		logger:     logger,
	}
}
