package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/olyamironova/matching-core/internal/domain"
	"github.com/olyamironova/matching-core/internal/port"
)

var _ port.JournalStore = (*Store)(nil)

// Store persists the journal and snapshots for one instrument in Postgres.
type Store struct {
	pool       *pgxpool.Pool
	instrument string
}

// call Close when finish to work with database.
func NewStore(ctx context.Context, dsn, instrument string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pg: create pool: %w", err)
	}
	return &Store{pool: pool, instrument: instrument}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Migrate creates the journal and snapshot tables if absent.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS journal(
  instrument TEXT NOT NULL,
  op_id BIGINT NOT NULL,
  ts BIGINT NOT NULL,
  op TEXT NOT NULL,
  entry_json JSONB NOT NULL,
  PRIMARY KEY (instrument, op_id)
);
CREATE TABLE IF NOT EXISTS snapshots(
  instrument TEXT NOT NULL,
  last_op BIGINT NOT NULL,
  ts BIGINT NOT NULL,
  snapshot_json JSONB NOT NULL,
  PRIMARY KEY (instrument, last_op)
);
`)
	return err
}

func (s *Store) Append(ctx context.Context, e *domain.JournalEntry) error {
	if e == nil {
		return errors.New("nil journal entry")
	}
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
INSERT INTO journal(instrument, op_id, ts, op, entry_json)
VALUES($1,$2,$3,$4,$5)
ON CONFLICT (instrument, op_id) DO NOTHING
`, s.instrument, e.OpID, e.Ts, string(e.Op), string(b))
	return err
}

// LoadSince returns journal entries with op_id > afterOp in ascending order.
func (s *Store) LoadSince(ctx context.Context, afterOp int64) ([]domain.JournalEntry, error) {
	rows, err := s.pool.Query(ctx, `
SELECT entry_json FROM journal
WHERE instrument = $1 AND op_id > $2
ORDER BY op_id ASC
`, s.instrument, afterOp)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.JournalEntry
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var e domain.JournalEntry
		if err := json.Unmarshal([]byte(data), &e); err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}

// SaveSnapshot persists the snapshot and prunes journal entries it
// covers, in one transaction.
func (s *Store) SaveSnapshot(ctx context.Context, snap *domain.Snapshot) error {
	if snap == nil {
		return errors.New("nil snapshot")
	}
	b, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.withTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
INSERT INTO snapshots(instrument, last_op, ts, snapshot_json)
VALUES($1,$2,$3,$4)
ON CONFLICT (instrument, last_op) DO UPDATE SET ts = EXCLUDED.ts, snapshot_json = EXCLUDED.snapshot_json
`, s.instrument, snap.LastOp, snap.Ts, string(b)); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `
DELETE FROM journal WHERE instrument = $1 AND op_id <= $2
`, s.instrument, snap.LastOp)
		return err
	})
}

// LoadLatestSnapshot returns the snapshot with the highest last_op, nil if none.
func (s *Store) LoadLatestSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	var data string
	err := s.pool.QueryRow(ctx, `
SELECT snapshot_json FROM snapshots
WHERE instrument = $1
ORDER BY last_op DESC
LIMIT 1
`, s.instrument).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var snap domain.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *Store) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()
	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}
	committed = true
	return nil
}
