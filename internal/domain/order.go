package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Side string
type OrderType string
type TimeInForce string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"

	Limit      OrderType = "LIMIT"
	Market     OrderType = "MARKET"
	StopLimit  OrderType = "STOP_LIMIT"
	StopMarket OrderType = "STOP_MARKET"
	OCO        OrderType = "OCO"

	GTC TimeInForce = "GTC"
	IOC TimeInForce = "IOC"
	FOK TimeInForce = "FOK"
)

// Order is a tagged union over the order kinds: Type selects which of the
// variant fields are meaningful. Limit orders carry Price, TimeInForce,
// PostOnly, MakerQty, TakerQty and optionally OCOStopPrice; stop market
// orders carry StopPrice; stop limit orders carry Price, StopPrice,
// TimeInForce and IsOCO. Market orders never rest and are not built by
// the factory.
type Order struct {
	ID       string
	Type     OrderType
	Side     Side
	Size     decimal.Decimal
	OrigSize decimal.Decimal
	Price    decimal.Decimal
	Time     int64 // unix milliseconds

	TimeInForce TimeInForce
	PostOnly    bool
	MakerQty    decimal.Decimal
	TakerQty    decimal.Decimal

	StopPrice decimal.Decimal
	// OCOStopPrice links a resting limit order to its stop limit sibling
	// (same ID, keyed by that stop price on the stop book).
	OCOStopPrice decimal.Decimal
	// IsOCO marks a stop limit order that has a linked limit sibling.
	IsOCO bool
}

// OrderParams is the factory input. Type decides which fields are read.
type OrderParams struct {
	Type OrderType
	ID   string
	Side Side
	Size decimal.Decimal

	Price       decimal.Decimal
	TimeInForce TimeInForce
	PostOnly    bool

	StopPrice    decimal.Decimal
	IsOCO        bool
	OCOStopPrice decimal.Decimal

	// Internal fields used when rebuilding an existing order
	// (replay, snapshot restore, price updates). Zero values mean
	// "fresh order": OrigSize defaults to Size, Time to the clock.
	OrigSize decimal.Decimal
	MakerQty decimal.Decimal
	TakerQty decimal.Decimal
	Time     int64
}

// NewOrder builds an order of the given type. Only LIMIT, STOP_LIMIT and
// STOP_MARKET are materialized; anything else is ErrInvalidOrderType.
func NewOrder(p OrderParams) (*Order, error) {
	id := p.ID
	if id == "" {
		id = uuid.NewString()
	}
	ts := p.Time
	if ts == 0 {
		ts = time.Now().UnixMilli()
	}
	origSize := p.OrigSize
	if origSize.IsZero() {
		origSize = p.Size
	}
	tif := p.TimeInForce
	if tif == "" {
		tif = GTC
	}

	switch p.Type {
	case Limit:
		return &Order{
			ID:           id,
			Type:         Limit,
			Side:         p.Side,
			Size:         p.Size,
			OrigSize:     origSize,
			Price:        p.Price,
			Time:         ts,
			TimeInForce:  tif,
			PostOnly:     p.PostOnly,
			MakerQty:     p.MakerQty,
			TakerQty:     p.TakerQty,
			OCOStopPrice: p.OCOStopPrice,
		}, nil
	case StopLimit:
		return &Order{
			ID:          id,
			Type:        StopLimit,
			Side:        p.Side,
			Size:        p.Size,
			OrigSize:    origSize,
			Price:       p.Price,
			StopPrice:   p.StopPrice,
			Time:        ts,
			TimeInForce: tif,
			IsOCO:       p.IsOCO,
		}, nil
	case StopMarket:
		return &Order{
			ID:        id,
			Type:      StopMarket,
			Side:      p.Side,
			Size:      p.Size,
			OrigSize:  origSize,
			StopPrice: p.StopPrice,
			Time:      ts,
		}, nil
	default:
		return nil, ErrInvalidOrderType
	}
}

func (o *Order) IsStopOrder() bool {
	return o.Type == StopLimit || o.Type == StopMarket
}

// HasOCOLink reports whether a limit order has a stop limit sibling.
func (o *Order) HasOCOLink() bool {
	return o.Type == Limit && !o.OCOStopPrice.IsZero()
}

// OrderRecord is the loss-less serializable form of an order. Fields not
// meaningful for the order's type stay at their zero value.
type OrderRecord struct {
	ID          string          `json:"id"`
	Type        OrderType       `json:"type"`
	Side        Side            `json:"side"`
	Size        decimal.Decimal `json:"size"`
	OrigSize    decimal.Decimal `json:"origSize"`
	Price       decimal.Decimal `json:"price"`
	StopPrice   decimal.Decimal `json:"stopPrice"`
	Time        int64           `json:"time"`
	TimeInForce TimeInForce     `json:"timeInForce,omitempty"`
	PostOnly    bool            `json:"postOnly,omitempty"`
	MakerQty    decimal.Decimal `json:"makerQty"`
	TakerQty    decimal.Decimal `json:"takerQty"`
	IsOCO       bool            `json:"isOCO,omitempty"`
	OCOStop     decimal.Decimal `json:"ocoStopPrice"`
}

func (o *Order) Record() OrderRecord {
	return OrderRecord{
		ID:          o.ID,
		Type:        o.Type,
		Side:        o.Side,
		Size:        o.Size,
		OrigSize:    o.OrigSize,
		Price:       o.Price,
		StopPrice:   o.StopPrice,
		Time:        o.Time,
		TimeInForce: o.TimeInForce,
		PostOnly:    o.PostOnly,
		MakerQty:    o.MakerQty,
		TakerQty:    o.TakerQty,
		IsOCO:       o.IsOCO,
		OCOStop:     o.OCOStopPrice,
	}
}

// OrderFromRecord rebuilds an order from its record, preserving identity,
// timestamps and fill accounting.
func OrderFromRecord(r OrderRecord) (*Order, error) {
	return NewOrder(OrderParams{
		Type:         r.Type,
		ID:           r.ID,
		Side:         r.Side,
		Size:         r.Size,
		OrigSize:     r.OrigSize,
		Price:        r.Price,
		StopPrice:    r.StopPrice,
		Time:         r.Time,
		TimeInForce:  r.TimeInForce,
		PostOnly:     r.PostOnly,
		MakerQty:     r.MakerQty,
		TakerQty:     r.TakerQty,
		IsOCO:        r.IsOCO,
		OCOStopPrice: r.OCOStop,
	})
}

func (o *Order) String() string {
	switch o.Type {
	case StopMarket:
		return fmt.Sprintf("%s: type=%s side=%s size=%s stopPrice=%s time=%d",
			o.ID, o.Type, o.Side, o.Size, o.StopPrice, o.Time)
	case StopLimit:
		return fmt.Sprintf("%s: type=%s side=%s size=%s price=%s stopPrice=%s isOCO=%t timeInForce=%s time=%d",
			o.ID, o.Type, o.Side, o.Size, o.Price, o.StopPrice, o.IsOCO, o.TimeInForce, o.Time)
	default:
		return fmt.Sprintf("%s: type=%s side=%s size=%s origSize=%s price=%s timeInForce=%s makerQty=%s takerQty=%s time=%d",
			o.ID, o.Type, o.Side, o.Size, o.OrigSize, o.Price, o.TimeInForce, o.MakerQty, o.TakerQty, o.Time)
	}
}
