package domain

import "github.com/shopspring/decimal"

// ProcessResult reports everything a single engine operation did.
type ProcessResult struct {
	// Done holds fully processed orders: makers consumed entirely and,
	// when the taker order itself filled completely, the taker too.
	Done []*Order
	// Activated holds stop orders triggered by this operation,
	// including cascades from activated orders moving the price again.
	Activated []*Order
	// Partial is the partially processed order, if any: either the last
	// maker the taker partially consumed, or the taker's own resting
	// remainder.
	Partial *Order
	// PartialQuantityProcessed is the quantity filled on Partial.
	PartialQuantityProcessed decimal.Decimal
	// QuantityLeft is the taker quantity that could not be processed.
	QuantityLeft decimal.Decimal
	// Trades lists the fills produced by this operation, in order.
	Trades []Trade
	// Err is the processing error, if any. A set Err means no state change.
	Err error
	// Log is the journal entry for this operation when journaling is on.
	Log *JournalEntry
}

// CancelResult reports a cancellation. StopOrder is set when the
// cancelled order had a stop sibling (OCO) or was itself a stop order.
type CancelResult struct {
	Order     *Order
	StopOrder *Order
	Log       *JournalEntry
}
