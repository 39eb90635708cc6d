package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/olyamironova/matching-core/internal/domain"
)

// OrderSide is one side of the live book: a price-ordered map from price
// to OrderQueue plus side-wide aggregates. A price level exists in the
// tree iff its queue is non-empty.
type OrderSide struct {
	side      domain.Side
	tree      *priceTree[*OrderQueue]
	prices    map[string]*OrderQueue
	volume    decimal.Decimal
	total     decimal.Decimal
	numOrders int
	depth     int
	now       func() int64
}

// NewOrderSide builds an empty side. The clock stamps repriced and
// resized orders; nil falls back to wall time.
func NewOrderSide(side domain.Side, now func() int64) *OrderSide {
	if now == nil {
		now = func() int64 { return time.Now().UnixMilli() }
	}
	return &OrderSide{
		side:   side,
		tree:   newPriceTree[*OrderQueue](side),
		prices: make(map[string]*OrderQueue),
		now:    now,
	}
}

// Len is the number of resting orders on this side.
func (s *OrderSide) Len() int {
	return s.numOrders
}

// Depth is the number of distinct price levels.
func (s *OrderSide) Depth() int {
	return s.depth
}

// Volume is the total resting quantity on this side.
func (s *OrderSide) Volume() decimal.Decimal {
	return s.volume
}

// Total is the resting notional, Σ price×size over all orders.
func (s *OrderSide) Total() decimal.Decimal {
	return s.total
}

// Append adds the order to its price level, creating the level if absent.
func (s *OrderSide) Append(order *domain.Order) *domain.Order {
	strPrice := order.Price.String()
	q, ok := s.prices[strPrice]
	if !ok {
		q = NewOrderQueue(order.Price)
		s.prices[strPrice] = q
		s.tree.Put(order.Price, q)
		s.depth++
	}
	s.numOrders++
	s.volume = s.volume.Add(order.Size)
	s.total = s.total.Add(order.Size.Mul(order.Price))
	return q.Append(order)
}

// Remove detaches the order from its price level, deleting the level
// when it empties. A missing level means the caller holds a stale
// reference and is ErrInvalidPriceLevel.
func (s *OrderSide) Remove(order *domain.Order) (*domain.Order, error) {
	strPrice := order.Price.String()
	q, ok := s.prices[strPrice]
	if !ok {
		return nil, domain.ErrInvalidPriceLevel
	}
	q.Remove(order)
	if q.Len() == 0 {
		delete(s.prices, strPrice)
		s.tree.Remove(order.Price)
		s.depth--
	}
	s.numOrders--
	s.volume = s.volume.Sub(order.Size)
	s.total = s.total.Sub(order.Size.Mul(order.Price))
	return order, nil
}

// UpdateOrderPrice moves the order to a new price level. The order is
// rebuilt with a fresh time, so a repriced order always loses time
// priority. The returned order is the new canonical instance.
func (s *OrderSide) UpdateOrderPrice(oldOrder *domain.Order, update domain.OrderUpdate) (*domain.Order, error) {
	if update.Price == nil {
		return nil, domain.ErrInvalidPrice
	}
	if _, err := s.Remove(oldOrder); err != nil {
		return nil, err
	}
	size := oldOrder.Size
	if update.Size != nil {
		size = *update.Size
	}
	newOrder, err := domain.NewOrder(domain.OrderParams{
		Type:         oldOrder.Type,
		ID:           oldOrder.ID,
		Side:         oldOrder.Side,
		Size:         size,
		OrigSize:     oldOrder.OrigSize,
		Price:        *update.Price,
		TimeInForce:  oldOrder.TimeInForce,
		PostOnly:     oldOrder.PostOnly,
		MakerQty:     oldOrder.MakerQty,
		TakerQty:     oldOrder.TakerQty,
		OCOStopPrice: oldOrder.OCOStopPrice,
		Time:         s.now(),
	})
	if err != nil {
		return nil, err
	}
	s.Append(newOrder)
	return newOrder, nil
}

// UpdateOrderSize resizes the order in place, adjusting the aggregates
// algebraically. The queue is keyed by the old order's price; an
// optional new price only enters the notional delta.
func (s *OrderSide) UpdateOrderSize(oldOrder *domain.Order, update domain.OrderUpdate) (*domain.Order, error) {
	if update.Size == nil {
		return nil, domain.ErrInvalidQuantity
	}
	q, ok := s.prices[oldOrder.Price.String()]
	if !ok {
		return nil, domain.ErrInvalidPriceLevel
	}
	newPrice := oldOrder.Price
	if update.Price != nil {
		newPrice = *update.Price
	}
	s.volume = s.volume.Add(update.Size.Sub(oldOrder.Size))
	s.total = s.total.Add(update.Size.Mul(newPrice).Sub(oldOrder.Size.Mul(oldOrder.Price)))
	q.UpdateOrderSize(oldOrder, *update.Size, s.now())
	return oldOrder, nil
}

// MaxPriceQueue returns the nominally highest price level.
func (s *OrderSide) MaxPriceQueue() *OrderQueue {
	if s.depth == 0 {
		return nil
	}
	q, _ := s.tree.Max()
	return q
}

// MinPriceQueue returns the nominally lowest price level.
func (s *OrderSide) MinPriceQueue() *OrderQueue {
	if s.depth == 0 {
		return nil
	}
	q, _ := s.tree.Min()
	return q
}

// BestQueue returns the level an incoming opposite-side order trades
// against first: the lowest ask on a SELL side, the highest bid on BUY.
func (s *OrderSide) BestQueue() *OrderQueue {
	q, _ := s.tree.Best()
	return q
}

// LowerThan returns the nearest queue with price strictly below the given one.
func (s *OrderSide) LowerThan(price decimal.Decimal) *OrderQueue {
	q, _ := s.tree.LowerThan(price)
	return q
}

// GreaterThan returns the nearest queue with price strictly above the given one.
func (s *OrderSide) GreaterThan(price decimal.Decimal) *OrderQueue {
	q, _ := s.tree.GreaterThan(price)
	return q
}

// Orders returns all resting orders, visited level by level.
func (s *OrderSide) Orders() []*domain.Order {
	var out []*domain.Order
	s.tree.Each(func(_ decimal.Decimal, q *OrderQueue) bool {
		out = append(out, q.Orders()...)
		return true
	})
	return out
}

// Levels walks price levels in comparator order (best first).
func (s *OrderSide) Levels(fn func(q *OrderQueue) bool) {
	s.tree.Each(func(_ decimal.Decimal, q *OrderQueue) bool {
		return fn(q)
	})
}

func (s *OrderSide) String() string {
	var sb strings.Builder
	for level := s.MaxPriceQueue(); level != nil; level = s.LowerThan(level.Price()) {
		fmt.Fprintf(&sb, "\n%s -> %s", level.Price(), level.Volume())
	}
	return sb.String()
}
