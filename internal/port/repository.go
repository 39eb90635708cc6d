package port

import (
	"context"

	"github.com/olyamironova/matching-core/internal/domain"
)

// JournalStore persists the operation log and snapshots for one book.
// Appends happen on the engine's hot path, so implementations should be
// a single write per call.
type JournalStore interface {
	Append(ctx context.Context, e *domain.JournalEntry) error
	// LoadSince returns journal entries with OpID > afterOp in ascending order.
	LoadSince(ctx context.Context, afterOp int64) ([]domain.JournalEntry, error)
	// SaveSnapshot persists the snapshot and compacts journal entries
	// covered by it (OpID <= snap.LastOp).
	SaveSnapshot(ctx context.Context, snap *domain.Snapshot) error
	// LoadLatestSnapshot returns the most recent snapshot, nil if none.
	LoadLatestSnapshot(ctx context.Context) (*domain.Snapshot, error)
}
