package core

import (
	"fmt"

	"github.com/olyamironova/matching-core/internal/domain"
)

// Snapshot captures the full book: both live sides, the stop book and
// the id of the last applied operation.
func (b *OrderBook) Snapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Asks:     sideLevels(b.asks),
		Bids:     sideLevels(b.bids),
		StopBook: b.stopBook.Snapshot(),
		Ts:       b.now(),
		LastOp:   b.lastOp,
	}
}

func sideLevels(s *OrderSide) []domain.SnapshotLevel {
	levels := []domain.SnapshotLevel{}
	s.Levels(func(q *OrderQueue) bool {
		orders := q.Orders()
		records := make([]domain.OrderRecord, 0, len(orders))
		for _, o := range orders {
			records = append(records, o.Record())
		}
		levels = append(levels, domain.SnapshotLevel{Price: q.Price(), Orders: records})
		return true
	})
	return levels
}

// restore rebuilds book state from a snapshot. Only valid on an empty book.
func (b *OrderBook) restore(snap *domain.Snapshot) error {
	for _, levels := range [][]domain.SnapshotLevel{snap.Asks, snap.Bids} {
		for _, level := range levels {
			for _, rec := range level.Orders {
				order, err := domain.OrderFromRecord(rec)
				if err != nil {
					return fmt.Errorf("restore order %s: %w", rec.ID, err)
				}
				b.sideOf(order.Side).Append(order)
				b.orders[order.ID] = order
			}
		}
	}
	for _, levels := range [][]domain.SnapshotLevel{snap.StopBook.Asks, snap.StopBook.Bids} {
		for _, level := range levels {
			for _, rec := range level.Orders {
				order, err := domain.OrderFromRecord(rec)
				if err != nil {
					return fmt.Errorf("restore stop order %s: %w", rec.ID, err)
				}
				b.stopBook.Add(order)
				b.stopOrders[order.ID] = order
			}
		}
	}
	b.lastOp = snap.LastOp
	return nil
}

// replay folds journal entries into the book in OpID order. Entries at
// or below the restored snapshot's LastOp are skipped; among the rest,
// OpIDs must be strictly increasing. Any processing error is returned
// as-is: a failing entry means the journal does not match the state it
// is replayed against, which the driver should treat as fatal.
func (b *OrderBook) replay(entries []domain.JournalEntry) error {
	base := b.lastOp
	for i := range entries {
		e := entries[i]
		if e.OpID <= base {
			continue
		}
		if e.OpID <= b.lastOp {
			return domain.ErrJournalOutOfOrder
		}
		if err := b.applyEntry(e); err != nil {
			return fmt.Errorf("replay op %d: %w", e.OpID, err)
		}
		b.lastOp = e.OpID
	}
	return nil
}

func (b *OrderBook) applyEntry(e domain.JournalEntry) error {
	journaling := b.journaling
	b.journaling = false
	defer func() { b.journaling = journaling }()

	switch e.Op {
	case domain.OpMarket:
		if e.Market == nil {
			return fmt.Errorf("missing payload for op %q", e.Op)
		}
		return b.Market(*e.Market).Err
	case domain.OpLimit:
		if e.Limit == nil {
			return fmt.Errorf("missing payload for op %q", e.Op)
		}
		return b.Limit(*e.Limit).Err
	case domain.OpStopMarket:
		if e.StopMarket == nil {
			return fmt.Errorf("missing payload for op %q", e.Op)
		}
		return b.StopMarket(*e.StopMarket).Err
	case domain.OpStopLimit:
		if e.StopLimit == nil {
			return fmt.Errorf("missing payload for op %q", e.Op)
		}
		return b.StopLimit(*e.StopLimit).Err
	case domain.OpOCO:
		if e.OCO == nil {
			return fmt.Errorf("missing payload for op %q", e.Op)
		}
		return b.OCO(*e.OCO).Err
	case domain.OpModify:
		if e.Modify == nil {
			return fmt.Errorf("missing payload for op %q", e.Op)
		}
		return b.ModifyOrder(*e.Modify).Err
	case domain.OpCancel:
		if e.Cancel == nil {
			return fmt.Errorf("missing payload for op %q", e.Op)
		}
		_, err := b.CancelOrder(e.Cancel.OrderID)
		return err
	default:
		return fmt.Errorf("unknown journal op %q", e.Op)
	}
}
