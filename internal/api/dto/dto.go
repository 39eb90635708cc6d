package dto

import (
	"github.com/shopspring/decimal"
)

type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

type TimeInForce string

const (
	GTC TimeInForce = "GTC"
	IOC TimeInForce = "IOC"
	FOK TimeInForce = "FOK"
)

type MarketOrderRequest struct {
	Side Side            `json:"side" binding:"required"`
	Size decimal.Decimal `json:"size" binding:"required"`
}

type LimitOrderRequest struct {
	OrderID     string          `json:"order_id,omitempty"` // for deduplicate
	Side        Side            `json:"side" binding:"required"`
	Size        decimal.Decimal `json:"size" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	TimeInForce TimeInForce     `json:"time_in_force,omitempty"`
	PostOnly    bool            `json:"post_only,omitempty"`
}

type StopMarketOrderRequest struct {
	OrderID   string          `json:"order_id,omitempty"`
	Side      Side            `json:"side" binding:"required"`
	Size      decimal.Decimal `json:"size" binding:"required"`
	StopPrice decimal.Decimal `json:"stop_price" binding:"required"`
}

type StopLimitOrderRequest struct {
	OrderID     string          `json:"order_id,omitempty"`
	Side        Side            `json:"side" binding:"required"`
	Size        decimal.Decimal `json:"size" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	StopPrice   decimal.Decimal `json:"stop_price" binding:"required"`
	TimeInForce TimeInForce     `json:"time_in_force,omitempty"`
}

type OCOOrderRequest struct {
	OrderID              string          `json:"order_id,omitempty"`
	Side                 Side            `json:"side" binding:"required"`
	Size                 decimal.Decimal `json:"size" binding:"required"`
	Price                decimal.Decimal `json:"price" binding:"required"`
	StopPrice            decimal.Decimal `json:"stop_price" binding:"required"`
	StopLimitPrice       decimal.Decimal `json:"stop_limit_price" binding:"required"`
	TimeInForce          TimeInForce     `json:"time_in_force,omitempty"`
	StopLimitTimeInForce TimeInForce     `json:"stop_limit_time_in_force,omitempty"`
}

type ModifyOrderRequest struct {
	OrderID  string           `json:"order_id" binding:"required"`
	NewPrice *decimal.Decimal `json:"new_price,omitempty"`
	NewSize  *decimal.Decimal `json:"new_size,omitempty"`
}

type CancelOrderRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}

type CancelOrderResponse struct {
	Order     *Order `json:"order,omitempty"`
	StopOrder *Order `json:"stop_order,omitempty"`
}

type ProcessResultResponse struct {
	Done                     []Order         `json:"done"`
	Activated                []Order         `json:"activated,omitempty"`
	Partial                  *Order          `json:"partial,omitempty"`
	PartialQuantityProcessed decimal.Decimal `json:"partial_quantity_processed"`
	QuantityLeft             decimal.Decimal `json:"quantity_left"`
	Trades                   []Trade         `json:"trades"`
}

type GetOrderResponse struct {
	Order Order `json:"order"`
}

type DepthLevel struct {
	Price  decimal.Decimal `json:"price"`
	Volume decimal.Decimal `json:"volume"`
}

type DepthResponse struct {
	Asks []DepthLevel `json:"asks"`
	Bids []DepthLevel `json:"bids"`
}

type MarketPriceResponse struct {
	Price decimal.Decimal `json:"price"`
}

type CalculatePriceResponse struct {
	Side  Side            `json:"side"`
	Size  decimal.Decimal `json:"size"`
	Price decimal.Decimal `json:"price"`
}

type SnapshotResponse struct {
	LastOp  int64  `json:"last_op"`
	Ts      int64  `json:"ts"`
	Message string `json:"message,omitempty"`
}

type Order struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Side        Side            `json:"side"`
	Size        decimal.Decimal `json:"size"`
	OrigSize    decimal.Decimal `json:"orig_size"`
	Price       decimal.Decimal `json:"price"`
	StopPrice   decimal.Decimal `json:"stop_price"`
	TimeInForce TimeInForce     `json:"time_in_force,omitempty"`
	MakerQty    decimal.Decimal `json:"maker_qty"`
	TakerQty    decimal.Decimal `json:"taker_qty"`
	Time        int64           `json:"time"`
}

type Trade struct {
	ID           string          `json:"id"`
	Instrument   string          `json:"instrument"`
	TakerOrderID string          `json:"taker_order_id"`
	MakerOrderID string          `json:"maker_order_id"`
	TakerSide    Side            `json:"taker_side"`
	Price        decimal.Decimal `json:"price"`
	Quantity     decimal.Decimal `json:"quantity"`
	Timestamp    int64           `json:"timestamp"`
}
