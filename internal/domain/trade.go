package domain

import "github.com/shopspring/decimal"

// Trade is one fill between a taker and a resting maker order.
type Trade struct {
	ID           string          `json:"id"`
	Instrument   string          `json:"instrument,omitempty"`
	TakerOrderID string          `json:"takerOrderId"`
	MakerOrderID string          `json:"makerOrderId"`
	TakerSide    Side            `json:"takerSide"`
	Price        decimal.Decimal `json:"price"`
	Quantity     decimal.Decimal `json:"quantity"`
	Ts           int64           `json:"ts"`
}
