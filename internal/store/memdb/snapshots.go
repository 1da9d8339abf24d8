package memdb

import (
	"context"
	"slices"
	"sync"

	"github.com/hedisam/chainpulse/internal/ringbuffer"
	"github.com/hedisam/chainpulse/internal/store"
)

// SnapshotStore holds the latest published chain snapshot and a bounded journal of recent failures.
// Snapshots are replaced wholesale; readers never observe a partially written one.
type SnapshotStore struct {
	current  store.Snapshot
	mu       sync.RWMutex
	failures *ringbuffer.RingBuffer[store.Failure]
	failMu   sync.Mutex
}

func NewSnapshotStore(initial store.Snapshot, opts ...Option) *SnapshotStore {
	cfg := &config{journalSize: DefaultJournalSize}
	for opt := range slices.Values(opts) {
		opt(cfg)
	}

	return &SnapshotStore{
		current:  initial.Clone(),
		failures: ringbuffer.New[store.Failure](cfg.journalSize),
	}
}

// Publish replaces the current snapshot.
func (s *SnapshotStore) Publish(_ context.Context, snapshot store.Snapshot) error {
	snapshot = snapshot.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = snapshot
	return nil
}

// MarkDisconnected flips the connection state off and records the reason, keeping every cached
// block, transaction and statistic untouched.
func (s *SnapshotStore) MarkDisconnected(_ context.Context, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current.Connected = false
	s.current.LastError = reason
	return nil
}

// Snapshot returns a copy of the current snapshot.
func (s *SnapshotStore) Snapshot(_ context.Context) store.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current.Clone()
}

// RecordFailure appends f to the failure journal, evicting the oldest entry when full.
func (s *SnapshotStore) RecordFailure(_ context.Context, f store.Failure) {
	s.failMu.Lock()
	defer s.failMu.Unlock()

	s.failures.Put(f)
}

// Failures returns the journaled failures, newest first.
func (s *SnapshotStore) Failures(_ context.Context) []store.Failure {
	s.failMu.Lock()
	defer s.failMu.Unlock()

	return s.failures.NewestFirst()
}
