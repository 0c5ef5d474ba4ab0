// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/site-sync/models"
)

// Field names accepted by [ProfileValidator].
const (
	FieldHost      = "host"
	FieldPort      = "port"
	FieldUser      = "user"
	FieldDatabase  = "database"
	FieldBridgeURL = "bridge_url"
)

// ProfileValidator validates [models.ConnectionProfile] values. The password
// is optional and never checked.
type ProfileValidator struct {
}

func NewProfileValidator() Validator {
	return &ProfileValidator{}
}

// Validate accepts a profile by value or by pointer. Without fields every
// field is validated; a zero port is valid and means the default port.
func (v *ProfileValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ConnectionProfile:
		return v.validateProfile(ctx, value, fields...)
	case *models.ConnectionProfile:
		return v.validateProfile(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ProfileValidator) validateProfile(_ context.Context, profile models.ConnectionProfile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldHost, FieldPort, FieldUser, FieldDatabase, FieldBridgeURL}
	}

	for _, f := range fields {
		switch f {
		case FieldHost:
			if strings.TrimSpace(profile.Host) == "" {
				return ErrEmptyHost
			}
		case FieldPort:
			if profile.Port < 0 || profile.Port > 65535 {
				return ErrInvalidPort
			}
		case FieldUser:
			if strings.TrimSpace(profile.User) == "" {
				return ErrEmptyUser
			}
		case FieldDatabase:
			if strings.TrimSpace(profile.Database) == "" {
				return ErrEmptyDatabase
			}
		case FieldBridgeURL:
			if !isBridgeURL(profile.BridgeURL) {
				return ErrInvalidBridgeURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBridgeURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
