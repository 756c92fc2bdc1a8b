// Package memory provides in-memory repository implementations (for
// testing/dev). A single store guards all state with one mutex, so the
// check-for-existing-then-create paths are atomic exactly like their
// PostgreSQL counterparts.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/scholarduty/duty-backend-go/internal/domain/duty"
	"github.com/scholarduty/duty-backend-go/internal/domain/monitoring"
	"github.com/scholarduty/duty-backend-go/internal/domain/schedule"
	"github.com/scholarduty/duty-backend-go/internal/domain/scholar"
)

type Store struct {
	mu       sync.Mutex
	sessions map[string]duty.Session
	entries  map[string]monitoring.Entry
	blocks   map[string]monitoring.Block
	scholars map[string]scholar.Scholar
	slots    map[string]schedule.DutySlot
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]duty.Session),
		entries:  make(map[string]monitoring.Entry),
		blocks:   make(map[string]monitoring.Block),
		scholars: make(map[string]scholar.Scholar),
		slots:    make(map[string]schedule.DutySlot),
	}
}

type txContextKey struct{}

// WithTx implements database.TxManager. The store's single mutex serializes
// transactions; a snapshot restores pre-transaction state when fn fails, so
// partial writes never survive, mirroring a rollback.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.snapshot()
	if err := fn(context.WithValue(ctx, txContextKey{}, true)); err != nil {
		s.restore(snapshot)
		return err
	}
	return nil
}

// lock acquires the store mutex unless the context already runs inside WithTx
func (s *Store) lock(ctx context.Context) func() {
	if inTx, _ := ctx.Value(txContextKey{}).(bool); inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

type storeSnapshot struct {
	sessions map[string]duty.Session
	entries  map[string]monitoring.Entry
	blocks   map[string]monitoring.Block
}

func (s *Store) snapshot() storeSnapshot {
	snap := storeSnapshot{
		sessions: make(map[string]duty.Session, len(s.sessions)),
		entries:  make(map[string]monitoring.Entry, len(s.entries)),
		blocks:   make(map[string]monitoring.Block, len(s.blocks)),
	}
	for k, v := range s.sessions {
		snap.sessions[k] = v
	}
	for k, v := range s.entries {
		snap.entries[k] = v
	}
	for k, v := range s.blocks {
		snap.blocks[k] = v
	}
	return snap
}

func (s *Store) restore(snap storeSnapshot) {
	s.sessions = snap.sessions
	s.entries = snap.entries
	s.blocks = snap.blocks
}

// SeedScholar loads a scholar into the roster (test/dev fixture path)
func (s *Store) SeedScholar(sc scholar.Scholar) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scholars[sc.ID] = sc
}

// SeedSlots loads duty slots into the catalog (test/dev fixture path)
func (s *Store) SeedSlots(slots []schedule.DutySlot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, slot := range slots {
		s.slots[slot.ID] = slot
	}
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
