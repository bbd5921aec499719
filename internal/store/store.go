// Package store persists the single timer state record and serializes the
// read-modify-write cycles of concurrent invocations through an advisory
// file lock.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/pomobar/pomobar/internal/model"
)

// ErrLockTimeout reports that another invocation held the state lock for the
// whole bounded wait. The caller receives the last persisted state unchanged.
var ErrLockTimeout = errors.New("state lock busy")

// lockRetryInterval is how often a waiting invocation re-attempts the lock.
const lockRetryInterval = 10 * time.Millisecond

// Store reads and writes the timer state record at a fixed path. The file is
// the sole source of truth; nothing survives in memory between invocations.
type Store struct {
	path     string
	lockPath string
	lockWait time.Duration
}

// New returns a Store for the record at path. lockWait bounds how long
// WithLock blocks on a contended lock.
func New(path string, lockWait time.Duration) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
		lockWait: lockWait,
	}
}

// Load reads the persisted record. A missing, unreadable, corrupt or invalid
// file degrades to the initial idle state with a logged warning; a broken
// record must yield a fresh timer, never a failed invocation.
func (s *Store) Load() model.TimerState {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("state file unreadable, starting idle", "path", s.path, "error", err)
		}
		return model.NewTimerState()
	}

	var st model.TimerState
	if err := json.Unmarshal(data, &st); err != nil {
		s.quarantine()
		slog.Warn("state file corrupt, starting idle", "path", s.path, "error", err)
		return model.NewTimerState()
	}
	if err := st.Validate(); err != nil {
		s.quarantine()
		slog.Warn("state file invalid, starting idle", "path", s.path, "error", err)
		return model.NewTimerState()
	}
	return st
}

// quarantine moves a broken state file aside so the next save starts clean
// and the evidence stays around for inspection.
func (s *Store) quarantine() {
	_ = os.Rename(s.path, s.path+".corrupt")
}

// WithLock loads the state under the exclusive lock, applies fn and persists
// the result atomically, stamping the record's write timestamp. The lock
// covers the whole load-compute-save span so concurrent invocations can never
// interleave into a lost update.
//
// When the lock stays contended past the bounded wait, nothing is mutated and
// the last persisted state is returned with ErrLockTimeout: one stale status
// beats a poller hanging the whole bar. When persisting fails, the computed
// state is returned with the error so the caller can still render what it
// could not save.
func (s *Store) WithLock(ctx context.Context, fn func(model.TimerState) model.TimerState) (model.TimerState, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return s.Load(), fmt.Errorf("creating state directory: %w", err)
	}

	// The lock lives in a sibling file: the rename in save replaces the
	// state file's inode, which would silently detach a lock held on it.
	lock := flock.New(s.lockPath)
	lockCtx, cancel := context.WithTimeout(ctx, s.lockWait)
	defer cancel()

	locked, err := lock.TryLockContext(lockCtx, lockRetryInterval)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		return s.Load(), fmt.Errorf("acquiring state lock: %w", err)
	}
	if !locked {
		return s.Load(), ErrLockTimeout
	}
	defer func() { _ = lock.Unlock() }()

	st := fn(s.Load())
	st.UpdatedAt = time.Now().Unix()
	if err := s.save(st); err != nil {
		return st, err
	}
	return st, nil
}

// save writes the record atomically: marshal, write a temp file, rename it
// over the target so a concurrent Load never observes a partial record.
func (s *Store) save(st model.TimerState) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling state: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("writing state temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replacing state file: %w", err)
	}
	return nil
}
