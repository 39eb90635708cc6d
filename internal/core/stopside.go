package core

import (
	"github.com/shopspring/decimal"

	"github.com/olyamironova/matching-core/internal/domain"
)

// StopSide is one side of the conditional-order book: stop queues
// indexed by trigger price, same tree ordering as the live side.
type StopSide struct {
	side   domain.Side
	tree   *priceTree[*StopQueue]
	prices map[string]*StopQueue
}

func NewStopSide(side domain.Side) *StopSide {
	return &StopSide{
		side:   side,
		tree:   newPriceTree[*StopQueue](side),
		prices: make(map[string]*StopQueue),
	}
}

// Depth is the number of distinct trigger prices.
func (s *StopSide) Depth() int {
	return s.tree.Len()
}

// Append adds the order to its trigger-price level, creating it if absent.
func (s *StopSide) Append(order *domain.Order) *domain.Order {
	strPrice := order.StopPrice.String()
	q, ok := s.prices[strPrice]
	if !ok {
		q = NewStopQueue(order.StopPrice)
		s.prices[strPrice] = q
		s.tree.Put(order.StopPrice, q)
	}
	return q.Append(order)
}

// Remove detaches the order with the given id at the given trigger
// price. A missing level is ErrInvalidPriceLevel; an unknown id within
// an existing level returns nil without error.
func (s *StopSide) Remove(id string, stopPrice decimal.Decimal) (*domain.Order, error) {
	strPrice := stopPrice.String()
	q, ok := s.prices[strPrice]
	if !ok {
		return nil, domain.ErrInvalidPriceLevel
	}
	deleted := q.Remove(id)
	if q.Len() == 0 {
		delete(s.prices, strPrice)
		s.tree.Remove(stopPrice)
	}
	return deleted, nil
}

// RemovePriceLevel unconditionally drops a trigger-price bucket.
func (s *StopSide) RemovePriceLevel(priceLevel decimal.Decimal) {
	delete(s.prices, priceLevel.String())
	s.tree.Remove(priceLevel)
}

// Between returns every queue whose trigger price lies in the band swept
// by the market price moving from priceBefore to marketPrice, both ends
// inclusive: ties at the exact trigger price must fire. Queues come back
// in activation order (high to low for BUY, low to high for SELL).
func (s *StopSide) Between(priceBefore, marketPrice decimal.Decimal) []*StopQueue {
	lowest, highest := priceBefore, marketPrice
	if lowest.Cmp(highest) > 0 {
		lowest, highest = highest, lowest
	}
	var queues []*StopQueue
	s.tree.Each(func(price decimal.Decimal, q *StopQueue) bool {
		if price.Cmp(lowest) >= 0 && price.Cmp(highest) <= 0 {
			queues = append(queues, q)
		}
		return true
	})
	return queues
}

// Each walks trigger-price levels in comparator order.
func (s *StopSide) Each(fn func(price decimal.Decimal, q *StopQueue) bool) {
	s.tree.Each(fn)
}
