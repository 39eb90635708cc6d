package domain

import "github.com/shopspring/decimal"

// SnapshotLevel is one price level with its resting orders in queue order.
type SnapshotLevel struct {
	Price  decimal.Decimal `json:"price"`
	Orders []OrderRecord   `json:"orders"`
}

type StopBookSnapshot struct {
	Asks []SnapshotLevel `json:"asks"`
	Bids []SnapshotLevel `json:"bids"`
}

// Snapshot captures the whole book at a point in time. Restoring a
// snapshot and replaying journal entries with OpID > LastOp yields the
// same state as replaying the full journal.
type Snapshot struct {
	Asks     []SnapshotLevel  `json:"asks"`
	Bids     []SnapshotLevel  `json:"bids"`
	StopBook StopBookSnapshot `json:"stopBook"`
	Ts       int64            `json:"ts"`
	LastOp   int64            `json:"lastOp"`
}

// DepthLevel is the aggregated view of one price level.
type DepthLevel struct {
	Price  decimal.Decimal `json:"price"`
	Volume decimal.Decimal `json:"volume"`
}

// Depth is the market-data ladder, best price first on both sides.
type Depth struct {
	Asks []DepthLevel `json:"asks"`
	Bids []DepthLevel `json:"bids"`
}
