// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/site-sync/internal/config"
	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/service"
)

type pushWorker struct {
	pusher   service.Pusher
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPushWorker creates a worker that calls pusher.Push(ctx, false) on a
// ticker. If interval is zero or negative it defaults to
// [config.DefaultPushInterval]. The worker is idle until Start is called.
func NewPushWorker(pusher service.Pusher, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = config.DefaultPushInterval
	}
	return &pushWorker{pusher: pusher, interval: interval, logger: logger}
}

// Start implements Worker. It stops any previously running loop, then
// launches a background goroutine that pushes every interval.
func (w *pushWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	w.logger.Info().
		Str("func", "pushWorker.Start").
		Dur("interval", w.interval).
		Msg("periodic push started")

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.push(jobCtx)
			}
		}
	}()
}

func (w *pushWorker) push(ctx context.Context) {
	report, err := w.pusher.Push(ctx, false)
	switch {
	case err == nil:
		w.logger.Debug().
			Str("func", "pushWorker.push").
			Str("sync_id", report.SyncID).
			Msg("periodic push completed")
	case errors.Is(err, service.ErrSyncInFlight), errors.Is(err, service.ErrNotConfigured):
		w.logger.Debug().
			Str("func", "pushWorker.push").
			Str("outcome", string(report.Outcome)).
			Msg("periodic push skipped")
	default:
		w.logger.Err(err).
			Str("func", "pushWorker.push").
			Str("sync_id", report.SyncID).
			Str("outcome", string(report.Outcome)).
			Msg("periodic push failed")
	}
}

// Stop implements Worker. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited.
func (w *pushWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
