// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/site-sync/internal/adapter"
	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/store"
	"github.com/MKhiriev/site-sync/internal/utils"
	"github.com/MKhiriev/site-sync/internal/validators"
	"github.com/MKhiriev/site-sync/models"
	"golang.org/x/sync/semaphore"
)

// Polling bounds of a forced push waiting for another process's sync.
const (
	lockPollInitial = 20 * time.Millisecond
	lockPollMax     = 500 * time.Millisecond
)

type syncOrchestrator struct {
	localStore store.LocalStore
	lock       store.SyncLock
	bridge     adapter.BridgeClient
	settings   SettingsStore
	unit       models.SyncUnit
	logger     *logger.Logger
	ids        *utils.UUIDGenerator

	// slot is the single sync slot shared by pull, push, connection tests
	// and factory reset. It is held together with lock, which extends it to
	// other processes on the same database file.
	slot  *semaphore.Weighted
	state atomic.Int32

	// pushPending is set by a non-forced push skipped while the slot was
	// taken; the running push then makes one more pass.
	pushPending atomic.Bool

	mu     sync.RWMutex
	status models.SyncStatus

	now func() time.Time
}

// NewSyncOrchestrator creates a [SyncOrchestrator] for unit. An empty unit
// means [models.DefaultSyncUnit]. Every table of the unit must exist in the
// local schema; the settings table is never accepted. lock must be the sync
// lock of the database behind localStore.
func NewSyncOrchestrator(
	localStore store.LocalStore,
	lock store.SyncLock,
	bridge adapter.BridgeClient,
	settings SettingsStore,
	unit models.SyncUnit,
	logger *logger.Logger,
) (SyncOrchestrator, error) {
	if len(unit) == 0 {
		unit = models.DefaultSyncUnit()
	}
	if err := validateUnit(localStore, unit); err != nil {
		return nil, err
	}

	return &syncOrchestrator{
		localStore: localStore,
		lock:       lock,
		bridge:     bridge,
		settings:   settings,
		unit:       append(models.SyncUnit(nil), unit...),
		logger:     logger,
		ids:        utils.NewUUIDGenerator(),
		slot:       semaphore.NewWeighted(1),
		now:        time.Now,
	}, nil
}

// SyncUnitFromNames converts configured table names into a [models.SyncUnit].
func SyncUnitFromNames(names []string) models.SyncUnit {
	unit := make(models.SyncUnit, 0, len(names))
	for _, name := range names {
		unit = append(unit, models.Table(name))
	}
	return unit
}

func validateUnit(localStore store.LocalStore, unit models.SyncUnit) error {
	seen := make(map[models.Table]struct{}, len(unit))
	for _, table := range unit {
		if table == models.TableSettings {
			return fmt.Errorf("%w: %s is local-only", ErrInvalidSyncUnit, table)
		}
		if !localStore.HasTable(table) {
			return fmt.Errorf("%w: %s is not in the local schema", ErrInvalidSyncUnit, table)
		}
		if _, dup := seen[table]; dup {
			return fmt.Errorf("%w: %s listed twice", ErrInvalidSyncUnit, table)
		}
		seen[table] = struct{}{}
	}
	return nil
}

var profileValidator = validators.NewProfileValidator()

func validateProfile(ctx context.Context, profile models.ConnectionProfile) error {
	if err := profileValidator.Validate(ctx, profile); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	return nil
}

// asLocalStoreError makes every failure of a snapshot transaction match
// [store.ErrLocalStore], including row validation errors.
func asLocalStoreError(err error) error {
	if errors.Is(err, store.ErrLocalStore) {
		return err
	}
	return fmt.Errorf("%w: %w", store.ErrLocalStore, err)
}

func (o *syncOrchestrator) Unit() models.SyncUnit {
	return append(models.SyncUnit(nil), o.unit...)
}

func (o *syncOrchestrator) Status() models.SyncStatus {
	o.mu.RLock()
	status := o.status
	o.mu.RUnlock()

	status.State = models.SyncState(o.state.Load())
	return status
}

// beginRun marks the slot holder's state and returns a context detached from
// the caller's cancellation that carries a fresh sync id and a scoped logger.
func (o *syncOrchestrator) beginRun(ctx context.Context, state models.SyncState) (context.Context, *logger.Logger, string) {
	syncID := o.ids.Generate()
	log := o.logger.WithFields(map[string]string{
		"sync_id": syncID,
		"op":      state.String(),
	})

	ctx = utils.WithSyncID(context.WithoutCancel(ctx), syncID)
	ctx = log.WithContext(ctx)

	o.state.Store(int32(state))
	return ctx, log, syncID
}

func (o *syncOrchestrator) endRun() {
	o.state.Store(int32(models.SyncIdle))
}

// tryAcquire takes the slot and the sync lock without waiting. It returns
// [ErrSyncInFlight] when either is held.
func (o *syncOrchestrator) tryAcquire() error {
	if !o.slot.TryAcquire(1) {
		return ErrSyncInFlight
	}

	locked, err := o.lock.TryLock()
	if err != nil {
		o.slot.Release(1)
		return err
	}
	if !locked {
		o.slot.Release(1)
		o.logger.Debug().
			Str("func", "syncOrchestrator.tryAcquire").
			Msg("sync lock is held by another process")
		return ErrSyncInFlight
	}

	return nil
}

// acquire waits for the slot and the sync lock until ctx ends.
func (o *syncOrchestrator) acquire(ctx context.Context) error {
	if err := o.slot.Acquire(ctx, 1); err != nil {
		return err
	}

	backoff := lockPollInitial
	for {
		locked, err := o.lock.TryLock()
		if err != nil {
			o.slot.Release(1)
			return err
		}
		if locked {
			return nil
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			o.slot.Release(1)
			return ctx.Err()
		case <-timer.C:
		}
		backoff = min(backoff*2, lockPollMax)
	}
}

func (o *syncOrchestrator) release() {
	if err := o.lock.Unlock(); err != nil {
		o.logger.Err(err).
			Str("func", "syncOrchestrator.release").
			Msg("failed to release sync lock")
	}
	o.slot.Release(1)
}

func (o *syncOrchestrator) Pull(ctx context.Context, profile models.ConnectionProfile) error {
	if err := o.tryAcquire(); err != nil {
		return err
	}
	defer o.release()

	return o.pull(ctx, profile)
}

// pull must be called with the slot held.
func (o *syncOrchestrator) pull(ctx context.Context, profile models.ConnectionProfile) (err error) {
	ctx, log, _ := o.beginRun(ctx, models.SyncPulling)
	defer o.endRun()
	defer func() { o.recordPull(err) }()

	log.Info().
		Str("func", "syncOrchestrator.pull").
		Str("host", profile.Host).
		Str("database", profile.Database).
		Msg("pull started")

	if err = o.bridge.Probe(ctx, profile); err != nil {
		log.Err(err).Str("func", "syncOrchestrator.pull").Msg("bridge probe failed")
		return fmt.Errorf("pull: %w", err)
	}

	fetched := make(map[models.Table][]models.Row, len(o.unit))
	for _, table := range o.unit {
		rows, fetchErr := o.bridge.FetchTable(ctx, profile, table)
		if fetchErr != nil {
			log.Err(fetchErr).
				Str("func", "syncOrchestrator.pull").
				Str("table", table.String()).
				Msg("failed to fetch remote table, local store left untouched")
			return fmt.Errorf("pull: fetch %s: %w", table, fetchErr)
		}
		fetched[table] = rows
	}

	err = o.localStore.Snapshot(ctx, func(tx store.SnapshotTx) error {
		for _, table := range o.unit {
			if replaceErr := tx.ReplaceAll(ctx, table, fetched[table]); replaceErr != nil {
				return fmt.Errorf("replace %s: %w", table, replaceErr)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "syncOrchestrator.pull").Msg("local snapshot rolled back")
		return fmt.Errorf("pull: %w", asLocalStoreError(err))
	}

	total := 0
	for _, rows := range fetched {
		total += len(rows)
	}
	log.Info().
		Str("func", "syncOrchestrator.pull").
		Int("tables", len(o.unit)).
		Int("rows", total).
		Msg("pull completed")

	return nil
}

func (o *syncOrchestrator) recordPull(err error) {
	at := o.now()

	o.mu.Lock()
	defer o.mu.Unlock()
	o.status.LastPullAt = &at
	o.status.LastPullError = Reason(err)
}

func (o *syncOrchestrator) Push(ctx context.Context, force bool) (models.PushReport, error) {
	report := models.PushReport{StartedAt: o.now()}

	if force {
		if err := o.acquire(ctx); err != nil {
			report.Outcome = models.PushFailed
			if ctx.Err() != nil {
				report.Outcome = models.PushSkipped
			}
			report.FinishedAt = o.now()
			return report, fmt.Errorf("push: wait for running sync: %w", err)
		}
	} else if err := o.tryAcquire(); err != nil {
		report.FinishedAt = o.now()
		if errors.Is(err, ErrSyncInFlight) {
			o.pushPending.Store(true)
			report.Outcome = models.PushSkipped
			return report, ErrSyncInFlight
		}
		report.Outcome = models.PushFailed
		return report, fmt.Errorf("push: %w", err)
	}

	for {
		o.pushPending.Store(false)
		var err error
		report, err = o.push(ctx, report)
		o.recordPush(report, err)
		o.release()

		// Pushes skipped during this pass collapse into one more pass. When
		// the slot is already taken again, the flag stays for its holder.
		if !o.pushPending.Load() || o.tryAcquire() != nil {
			return report, err
		}
		report = models.PushReport{StartedAt: o.now()}
	}
}

// push must be called with the slot held.
func (o *syncOrchestrator) push(ctx context.Context, report models.PushReport) (models.PushReport, error) {
	ctx, log, syncID := o.beginRun(ctx, models.SyncPushing)
	defer o.endRun()
	report.SyncID = syncID

	profile, err := o.settings.Load(ctx)
	if err != nil {
		log.Err(err).Str("func", "syncOrchestrator.push").Msg("failed to load connection profile")
		report.Outcome = models.PushFailed
		report.FinishedAt = o.now()
		return report, fmt.Errorf("push: %w", err)
	}
	if !profile.IsComplete() {
		log.Debug().Str("func", "syncOrchestrator.push").Msg("push skipped, remote not configured")
		report.Outcome = models.PushNotConfigured
		report.FinishedAt = o.now()
		return report, ErrNotConfigured
	}

	// Every table is read in one transaction so a domain transaction spanning
	// several tables is pushed whole or not at all.
	local := make(map[models.Table][]models.Row, len(o.unit))
	err = o.localStore.Snapshot(ctx, func(tx store.SnapshotTx) error {
		for _, table := range o.unit {
			rows, readErr := tx.ReadAll(ctx, table)
			if readErr != nil {
				return fmt.Errorf("read %s: %w", table, readErr)
			}
			local[table] = rows
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "syncOrchestrator.push").Msg("failed to read local tables")
		report.Outcome = models.PushFailed
		report.FinishedAt = o.now()
		return report, errors.Join(ErrPushFailed, fmt.Errorf("push: %w", asLocalStoreError(err)))
	}

	var errs []error
	for _, table := range o.unit {
		rows := local[table]
		result := models.TablePushResult{Table: table, Rows: len(rows)}

		tableErr := o.bridge.ReplaceTable(ctx, profile, table, rows)
		if tableErr != nil {
			tableErr = fmt.Errorf("push %s: %w", table, tableErr)
			errs = append(errs, tableErr)
			result.Error = Reason(tableErr)
			log.Err(tableErr).
				Str("func", "syncOrchestrator.push").
				Str("table", table.String()).
				Msg("failed to push table")
		}

		report.Tables = append(report.Tables, result)
	}
	report.FinishedAt = o.now()

	switch {
	case len(errs) == 0:
		report.Outcome = models.PushCompleted
	case len(errs) == len(o.unit):
		report.Outcome = models.PushFailed
	default:
		report.Outcome = models.PushPartial
	}

	log.Info().
		Str("func", "syncOrchestrator.push").
		Str("outcome", string(report.Outcome)).
		Int("failed", len(errs)).
		Msg("push finished")

	if len(errs) > 0 {
		return report, errors.Join(append([]error{ErrPushFailed}, errs...)...)
	}
	return report, nil
}

func (o *syncOrchestrator) recordPush(report models.PushReport, err error) {
	at := report.FinishedAt

	o.mu.Lock()
	defer o.mu.Unlock()
	o.status.LastPushAt = &at
	o.status.LastPushOutcome = report.Outcome
	o.status.LastPushError = Reason(err)
}

func (o *syncOrchestrator) Configure(ctx context.Context, profile models.ConnectionProfile) error {
	if err := validateProfile(ctx, profile); err != nil {
		return err
	}
	if err := o.tryAcquire(); err != nil {
		return err
	}
	defer o.release()

	if err := o.pull(ctx, profile); err != nil {
		return fmt.Errorf("configure: %w", err)
	}

	if err := o.settings.Save(context.WithoutCancel(ctx), profile); err != nil {
		return fmt.Errorf("configure: %w", err)
	}

	return nil
}

func (o *syncOrchestrator) TestConnection(ctx context.Context, profile models.ConnectionProfile) error {
	if err := validateProfile(ctx, profile); err != nil {
		return err
	}
	if err := o.tryAcquire(); err != nil {
		return err
	}
	defer o.release()

	if err := o.bridge.Probe(ctx, profile); err != nil {
		o.logger.Err(err).
			Str("func", "syncOrchestrator.TestConnection").
			Str("host", profile.Host).
			Msg("connection test failed")
		return fmt.Errorf("test connection: %w", err)
	}

	return nil
}

func (o *syncOrchestrator) PullStored(ctx context.Context) error {
	if err := o.tryAcquire(); err != nil {
		return err
	}
	defer o.release()

	profile, err := o.settings.Load(ctx)
	if err != nil {
		return fmt.Errorf("pull: %w", err)
	}
	if !profile.IsComplete() {
		return ErrNotConfigured
	}

	return o.pull(ctx, profile)
}

func (o *syncOrchestrator) FactoryReset(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrResetNotConfirmed
	}
	if err := o.tryAcquire(); err != nil {
		return err
	}
	defer o.release()

	ctx, log, _ := o.beginRun(ctx, models.SyncResetting)
	defer o.endRun()

	tables := o.localStore.Tables()
	err := o.localStore.Snapshot(ctx, func(tx store.SnapshotTx) error {
		for _, table := range tables {
			if clearErr := tx.Clear(ctx, table); clearErr != nil {
				return fmt.Errorf("clear %s: %w", table, clearErr)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "syncOrchestrator.FactoryReset").Msg("factory reset rolled back")
		return fmt.Errorf("factory reset: %w", asLocalStoreError(err))
	}

	o.mu.Lock()
	o.status = models.SyncStatus{}
	o.mu.Unlock()

	log.Warn().
		Str("func", "syncOrchestrator.FactoryReset").
		Int("tables", len(tables)).
		Msg("local data and settings wiped")

	return nil
}
