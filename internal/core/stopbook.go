package core

import (
	"github.com/shopspring/decimal"

	"github.com/olyamironova/matching-core/internal/domain"
)

// StopBook composes the bid and ask stop sides. Conditional orders
// activate, they do not match, so the book is keyed only by direction.
type StopBook struct {
	bids *StopSide
	asks *StopSide
}

func NewStopBook() *StopBook {
	return &StopBook{
		bids: NewStopSide(domain.Buy),
		asks: NewStopSide(domain.Sell),
	}
}

func (b *StopBook) Add(order *domain.Order) {
	b.sideOf(order.Side).Append(order)
}

func (b *StopBook) Remove(side domain.Side, id string, stopPrice decimal.Decimal) (*domain.Order, error) {
	return b.sideOf(side).Remove(id, stopPrice)
}

func (b *StopBook) RemovePriceLevel(side domain.Side, priceLevel decimal.Decimal) {
	b.sideOf(side).RemovePriceLevel(priceLevel)
}

// GetConditionalOrders returns the stop queues whose trigger price was
// crossed by the move from priceBefore to marketPrice.
func (b *StopBook) GetConditionalOrders(side domain.Side, priceBefore, marketPrice decimal.Decimal) []*StopQueue {
	return b.sideOf(side).Between(priceBefore, marketPrice)
}

// ValidConditionalOrder reports whether the stop order may rest at the
// current market price, i.e. its trigger has not already been passed:
//
//	stop limit   BUY: marketPrice < stopPrice <= price
//	             SELL: marketPrice > stopPrice >= price
//	stop market  BUY: marketPrice < stopPrice
//	             SELL: marketPrice > stopPrice
func (b *StopBook) ValidConditionalOrder(marketPrice decimal.Decimal, order *domain.Order) bool {
	if order.Type == domain.StopLimit {
		switch order.Side {
		case domain.Buy:
			return marketPrice.Cmp(order.StopPrice) < 0 && order.StopPrice.Cmp(order.Price) <= 0
		case domain.Sell:
			return marketPrice.Cmp(order.StopPrice) > 0 && order.StopPrice.Cmp(order.Price) >= 0
		}
		return false
	}
	switch order.Side {
	case domain.Buy:
		return marketPrice.Cmp(order.StopPrice) < 0
	case domain.Sell:
		return marketPrice.Cmp(order.StopPrice) > 0
	}
	return false
}

func (b *StopBook) Snapshot() domain.StopBookSnapshot {
	return domain.StopBookSnapshot{
		Asks: stopSideLevels(b.asks),
		Bids: stopSideLevels(b.bids),
	}
}

func (b *StopBook) sideOf(side domain.Side) *StopSide {
	if side == domain.Buy {
		return b.bids
	}
	return b.asks
}

func stopSideLevels(s *StopSide) []domain.SnapshotLevel {
	levels := []domain.SnapshotLevel{}
	s.Each(func(price decimal.Decimal, q *StopQueue) bool {
		orders := q.Orders()
		records := make([]domain.OrderRecord, 0, len(orders))
		for _, o := range orders {
			records = append(records, o.Record())
		}
		levels = append(levels, domain.SnapshotLevel{Price: price, Orders: records})
		return true
	})
	return levels
}
