// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/site-sync/internal/logger"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(log)
//	resp, err := client.R().SetBody(req).Post(url)
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient whose internal resty diagnostics
// are written to log. A nil log discards them.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(log *logger.Logger) *HTTPClient {
	if log == nil {
		log = logger.Nop()
	}

	client := resty.New().SetLogger(&restyLogger{log: log})
	return &HTTPClient{Client: client}
}

// restyLogger routes resty's printf-style logging into zerolog.
type restyLogger struct {
	log *logger.Logger
}

func (l *restyLogger) Errorf(format string, v ...any) {
	l.log.Error().Str("component", "resty").Msgf(format, v...)
}

func (l *restyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Str("component", "resty").Msgf(format, v...)
}

func (l *restyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Str("component", "resty").Msgf(format, v...)
}
