// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/site-sync/internal/config"
	"github.com/MKhiriev/site-sync/internal/handler"
	"github.com/MKhiriev/site-sync/internal/logger"
)

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.ClientServer, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{shutdownTimeout: cfg.ShutdownTimeout, logger: logger}

	if cfg.HTTPAddress != "" && handlers != nil && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}
	if servers.shutdownTimeout <= 0 {
		servers.shutdownTimeout = config.DefaultShutdownTimeout
	}

	return servers, nil
}

func (s *server) RunServer(ctx context.Context) error {
	if s.httpServer == nil {
		return errNoServersToRun
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Msg("Launching HTTP server")
		errCh <- s.httpServer.RunServer()
	}()

	select {
	case err := <-errCh:
		// the listener failed before any shutdown was requested
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
