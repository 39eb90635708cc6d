package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Operation is the journal op code.
type Operation string

const (
	OpMarket     Operation = "m"
	OpLimit      Operation = "l"
	OpStopMarket Operation = "sm"
	OpStopLimit  Operation = "sl"
	OpOCO        Operation = "oco"
	OpModify     Operation = "u"
	OpCancel     Operation = "d"
)

type MarketOrderParams struct {
	Side Side            `json:"side"`
	Size decimal.Decimal `json:"size"`
}

type LimitOrderParams struct {
	ID          string          `json:"id"`
	Side        Side            `json:"side"`
	Size        decimal.Decimal `json:"size"`
	Price       decimal.Decimal `json:"price"`
	TimeInForce TimeInForce     `json:"timeInForce,omitempty"`
	PostOnly    bool            `json:"postOnly,omitempty"`
}

type StopMarketOrderParams struct {
	ID        string          `json:"id,omitempty"`
	Side      Side            `json:"side"`
	Size      decimal.Decimal `json:"size"`
	StopPrice decimal.Decimal `json:"stopPrice"`
}

type StopLimitOrderParams struct {
	ID          string          `json:"id"`
	Side        Side            `json:"side"`
	Size        decimal.Decimal `json:"size"`
	Price       decimal.Decimal `json:"price"`
	StopPrice   decimal.Decimal `json:"stopPrice"`
	TimeInForce TimeInForce     `json:"timeInForce,omitempty"`
}

type OCOOrderParams struct {
	ID                   string          `json:"id"`
	Side                 Side            `json:"side"`
	Size                 decimal.Decimal `json:"size"`
	Price                decimal.Decimal `json:"price"`
	StopPrice            decimal.Decimal `json:"stopPrice"`
	StopLimitPrice       decimal.Decimal `json:"stopLimitPrice"`
	TimeInForce          TimeInForce     `json:"timeInForce,omitempty"`
	StopLimitTimeInForce TimeInForce     `json:"stopLimitTimeInForce,omitempty"`
}

// OrderUpdate carries the new price and/or size for a modify operation.
// Nil means "unchanged".
type OrderUpdate struct {
	Price *decimal.Decimal `json:"price,omitempty"`
	Size  *decimal.Decimal `json:"size,omitempty"`
}

type ModifyOrderParams struct {
	OrderID string      `json:"orderID"`
	Update  OrderUpdate `json:"orderUpdate"`
}

type CancelOrderParams struct {
	OrderID string `json:"orderID"`
}

// JournalEntry is one mutating intent applied to the book. Replaying
// entries in OpID order against an empty book rebuilds the same state.
// Exactly one payload field is set, matching Op.
type JournalEntry struct {
	OpID int64     `json:"opId"`
	Ts   int64     `json:"ts"`
	Op   Operation `json:"op"`

	Market     *MarketOrderParams     `json:"-"`
	Limit      *LimitOrderParams      `json:"-"`
	StopMarket *StopMarketOrderParams `json:"-"`
	StopLimit  *StopLimitOrderParams  `json:"-"`
	OCO        *OCOOrderParams        `json:"-"`
	Modify     *ModifyOrderParams     `json:"-"`
	Cancel     *CancelOrderParams     `json:"-"`
}

func (e *JournalEntry) payload() any {
	switch e.Op {
	case OpMarket:
		return e.Market
	case OpLimit:
		return e.Limit
	case OpStopMarket:
		return e.StopMarket
	case OpStopLimit:
		return e.StopLimit
	case OpOCO:
		return e.OCO
	case OpModify:
		return e.Modify
	case OpCancel:
		return e.Cancel
	}
	return nil
}

type journalEnvelope struct {
	OpID int64           `json:"opId"`
	Ts   int64           `json:"ts"`
	Op   Operation       `json:"op"`
	O    json.RawMessage `json:"o"`
}

func (e JournalEntry) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(e.payload())
	if err != nil {
		return nil, err
	}
	return json.Marshal(journalEnvelope{OpID: e.OpID, Ts: e.Ts, Op: e.Op, O: raw})
}

func (e *JournalEntry) UnmarshalJSON(data []byte) error {
	var env journalEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	*e = JournalEntry{OpID: env.OpID, Ts: env.Ts, Op: env.Op}

	var dst any
	switch env.Op {
	case OpMarket:
		e.Market = &MarketOrderParams{}
		dst = e.Market
	case OpLimit:
		e.Limit = &LimitOrderParams{}
		dst = e.Limit
	case OpStopMarket:
		e.StopMarket = &StopMarketOrderParams{}
		dst = e.StopMarket
	case OpStopLimit:
		e.StopLimit = &StopLimitOrderParams{}
		dst = e.StopLimit
	case OpOCO:
		e.OCO = &OCOOrderParams{}
		dst = e.OCO
	case OpModify:
		e.Modify = &ModifyOrderParams{}
		dst = e.Modify
	case OpCancel:
		e.Cancel = &CancelOrderParams{}
		dst = e.Cancel
	default:
		return fmt.Errorf("unknown journal op %q", env.Op)
	}
	return json.Unmarshal(env.O, dst)
}
