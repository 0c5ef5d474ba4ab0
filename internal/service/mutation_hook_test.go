// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/mock"
	"github.com/MKhiriev/site-sync/internal/store"
	"github.com/MKhiriev/site-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func insertProject(ctx context.Context, ls store.LocalStore, name string) error {
	return ls.Mutate(ctx, func(tx store.MutationTx) error {
		_, err := tx.Insert(ctx, models.TableProjects, models.Row{"name": name})
		return err
	})
}

func TestMutationHook_PushesAfterCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	pusher := mock.NewMockPusher(ctrl)
	storages := newTestStorages(t)

	hook := NewMutationHook(pusher, time.Second, logger.Nop())
	hook.Register(storages.LocalStore)

	pusher.EXPECT().Push(gomock.Any(), false).Return(models.PushReport{Outcome: models.PushCompleted}, nil).Times(1)

	require.NoError(t, insertProject(context.Background(), storages.LocalStore, "Depot"))
	hook.Wait()
}

func TestMutationHook_NotFiredBySnapshotOrFailedMutate(t *testing.T) {
	ctrl := gomock.NewController(t)
	pusher := mock.NewMockPusher(ctrl)
	storages := newTestStorages(t)
	ctx := context.Background()

	hook := NewMutationHook(pusher, time.Second, logger.Nop())
	hook.Register(storages.LocalStore)

	require.NoError(t, storages.LocalStore.Snapshot(ctx, func(tx store.SnapshotTx) error {
		return tx.ReplaceAll(ctx, models.TableProjects, []models.Row{{"id": 1, "name": "Pulled"}})
	}))

	err := storages.LocalStore.Mutate(ctx, func(tx store.MutationTx) error {
		_, err := tx.Insert(ctx, models.TableSettings, models.Row{"key": "k", "value": "v"})
		return err
	})
	require.ErrorIs(t, err, store.ErrUnknownTable)

	hook.Wait()
}

func TestMutationHook_PushErrorsDoNotReachWriter(t *testing.T) {
	ctrl := gomock.NewController(t)
	pusher := mock.NewMockPusher(ctrl)
	storages := newTestStorages(t)

	hook := NewMutationHook(pusher, time.Second, logger.Nop())
	hook.Register(storages.LocalStore)

	pusher.EXPECT().Push(gomock.Any(), false).
		Return(models.PushReport{Outcome: models.PushFailed}, ErrPushFailed).Times(1)

	require.NoError(t, insertProject(context.Background(), storages.LocalStore, "Depot"))
	hook.Wait()
}

func TestMutationHook_DetachedContextWithTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	pusher := mock.NewMockPusher(ctrl)

	hook := NewMutationHook(pusher, time.Minute, logger.Nop())

	var hasDeadline, notCancelled atomic.Bool
	pusher.EXPECT().Push(gomock.Any(), false).DoAndReturn(
		func(ctx context.Context, _ bool) (models.PushReport, error) {
			_, ok := ctx.Deadline()
			hasDeadline.Store(ok)
			notCancelled.Store(ctx.Err() == nil)
			return models.PushReport{}, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	hook.AfterCommit(ctx)
	hook.Wait()

	assert.True(t, hasDeadline.Load())
	assert.True(t, notCancelled.Load(), "push context must not inherit the caller's cancellation")
}

func TestMutationHook_ZeroTimeoutHasNoDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	pusher := mock.NewMockPusher(ctrl)

	hook := NewMutationHook(pusher, 0, logger.Nop())

	var hasDeadline atomic.Bool
	pusher.EXPECT().Push(gomock.Any(), false).DoAndReturn(
		func(ctx context.Context, _ bool) (models.PushReport, error) {
			_, ok := ctx.Deadline()
			hasDeadline.Store(ok)
			return models.PushReport{}, ErrSyncInFlight
		})

	hook.AfterCommit(context.Background())
	hook.Wait()

	assert.False(t, hasDeadline.Load())
}

func TestMutationHook_EndToEndPushesCommittedRow(t *testing.T) {
	f := newOrchestratorFixture(t)
	ctx := context.Background()
	profile := testProfile()
	require.NoError(t, f.settings.Save(ctx, profile))

	hook := NewMutationHook(f.orch, time.Minute, logger.Nop())
	hook.Register(f.storages.LocalStore)

	f.bridge.EXPECT().ReplaceTable(gomock.Any(), profile, models.TableProjects, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.ConnectionProfile, _ models.Table, rows []models.Row) error {
			assert.Equal(t, []any{"Depot"}, column(rows, "name"))
			return nil
		})
	f.bridge.EXPECT().ReplaceTable(gomock.Any(), profile, models.TableWorkers, gomock.Any()).Return(nil)

	require.NoError(t, insertProject(ctx, f.storages.LocalStore, "Depot"))
	hook.Wait()

	assert.Equal(t, models.PushCompleted, f.orch.Status().LastPushOutcome)
}
