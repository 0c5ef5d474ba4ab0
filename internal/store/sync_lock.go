// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

const syncLockSuffix = ".sync.lock"

// fileSyncLock is an OS-level exclusive lock on a file next to the database.
// The lock is released by the OS when the holding process exits.
type fileSyncLock struct {
	path string

	mu   sync.Mutex
	file *os.File
}

// NewFileSyncLock returns a [SyncLock] on the file at path. Every instance
// opens its own descriptor, so two instances on one path exclude each other
// even inside one process.
func NewFileSyncLock(path string) SyncLock {
	return &fileSyncLock{path: path}
}

// syncLockPath derives the lock file from the database DSN.
func syncLockPath(dsn string) string {
	path, _, _ := strings.Cut(dsn, "?")
	return path + syncLockSuffix
}

func (l *fileSyncLock) TryLock() (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return false, nil
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return false, localStoreError(ErrSyncLock, err)
	}

	locked, err := tryLockFile(f)
	if err != nil || !locked {
		_ = f.Close()
		if err != nil {
			return false, localStoreError(ErrSyncLock, err)
		}
		return false, nil
	}

	// holder info for operators inspecting a stuck lock
	_ = f.Truncate(0)
	_, _ = fmt.Fprintf(f, "pid:%d\ntime:%s\n", os.Getpid(), time.Now().Format(time.RFC3339))

	l.file = f
	return true, nil
}

func (l *fileSyncLock) Unlock() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}

	_ = l.file.Truncate(0)
	err := errors.Join(unlockFile(l.file), l.file.Close())
	l.file = nil

	if err != nil {
		return localStoreError(ErrSyncLock, err)
	}
	return nil
}
