// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/site-sync/internal/service"
)

var errInvalidPort = errors.New("port must be a number between 1 and 65535")

// humanizeError turns a service error into a one-line message for the form.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, errInvalidPort) {
		return err.Error()
	}
	return service.Reason(err)
}
