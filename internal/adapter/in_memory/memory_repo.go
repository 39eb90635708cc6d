package in_memory

import (
	"context"
	"sync"

	"github.com/olyamironova/matching-core/internal/domain"
	"github.com/olyamironova/matching-core/internal/port"
)

var _ port.JournalStore = (*JournalStore)(nil)

// JournalStore keeps the journal and latest snapshot in memory.
// Used in tests and for running without Postgres.
type JournalStore struct {
	mu       sync.Mutex
	entries  []domain.JournalEntry
	snapshot *domain.Snapshot
}

func NewJournalStore() *JournalStore {
	return &JournalStore{}
}

func (s *JournalStore) Append(ctx context.Context, e *domain.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, *e)
	return nil
}

func (s *JournalStore) LoadSince(ctx context.Context, afterOp int64) ([]domain.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []domain.JournalEntry
	for _, e := range s.entries {
		if e.OpID > afterOp {
			res = append(res, e)
		}
	}
	return res, nil
}

func (s *JournalStore) SaveSnapshot(ctx context.Context, snap *domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copySnap := *snap
	s.snapshot = &copySnap
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.OpID > snap.LastOp {
			kept = append(kept, e)
		}
	}
	s.entries = kept
	return nil
}

func (s *JournalStore) LoadLatestSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return nil, nil
	}
	copySnap := *s.snapshot
	return &copySnap, nil
}
