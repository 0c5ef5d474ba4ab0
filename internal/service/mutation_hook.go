// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/store"
)

// MutationHook pushes the sync unit in the background after every committed
// domain transaction. Push errors are logged and never reach the writer.
type MutationHook struct {
	pusher  Pusher
	timeout time.Duration
	logger  *logger.Logger

	wg sync.WaitGroup
}

// NewMutationHook creates a hook that calls pusher.Push(ctx, false). Each
// push runs under timeout; zero means no deadline beyond the bridge's own
// per-request timeout.
func NewMutationHook(pusher Pusher, timeout time.Duration, logger *logger.Logger) *MutationHook {
	return &MutationHook{
		pusher:  pusher,
		timeout: timeout,
		logger:  logger,
	}
}

// Register installs the hook as a commit callback of localStore.
func (h *MutationHook) Register(localStore store.LocalStore) {
	localStore.AfterCommit(h.AfterCommit)
}

// AfterCommit starts a push and returns immediately. The push context is
// detached from ctx, so finishing the caller's request does not cancel it.
func (h *MutationHook) AfterCommit(ctx context.Context) {
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()

		pushCtx := context.WithoutCancel(ctx)
		if h.timeout > 0 {
			var cancel context.CancelFunc
			pushCtx, cancel = context.WithTimeout(pushCtx, h.timeout)
			defer cancel()
		}

		report, err := h.pusher.Push(pushCtx, false)
		switch {
		case err == nil:
			h.logger.Debug().
				Str("func", "MutationHook.AfterCommit").
				Str("sync_id", report.SyncID).
				Msg("background push completed")
		case errors.Is(err, ErrSyncInFlight), errors.Is(err, ErrNotConfigured):
			h.logger.Debug().
				Str("func", "MutationHook.AfterCommit").
				Str("outcome", string(report.Outcome)).
				Msg("background push skipped")
		default:
			h.logger.Err(err).
				Str("func", "MutationHook.AfterCommit").
				Str("sync_id", report.SyncID).
				Str("outcome", string(report.Outcome)).
				Msg("background push failed")
		}
	}()
}

// Wait blocks until every push started by AfterCommit has returned.
func (h *MutationHook) Wait() {
	h.wg.Wait()
}
