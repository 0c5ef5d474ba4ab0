// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrSyncInFlight      = errors.New("sync already in progress")
	ErrNotConfigured     = errors.New("remote connection is not configured")
	ErrPushFailed        = errors.New("push failed")
	ErrResetNotConfirmed = errors.New("factory reset was not confirmed")
	ErrInvalidProfile    = errors.New("invalid connection profile")
	ErrInvalidSyncUnit   = errors.New("invalid sync unit")
)
