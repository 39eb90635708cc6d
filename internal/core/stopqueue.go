package core

import (
	"github.com/shopspring/decimal"

	"github.com/olyamironova/matching-core/internal/domain"
)

// StopQueue is the FIFO of conditional orders sharing one trigger price.
// Unlike OrderQueue it carries no volume: resting stop orders are not
// live market exposure.
type StopQueue struct {
	price decimal.Decimal
	head  *orderNode
	tail  *orderNode
	byID  map[string]*orderNode
}

func NewStopQueue(price decimal.Decimal) *StopQueue {
	return &StopQueue{
		price: price,
		byID:  make(map[string]*orderNode),
	}
}

func (q *StopQueue) Len() int {
	return len(q.byID)
}

func (q *StopQueue) Price() decimal.Decimal {
	return q.price
}

func (q *StopQueue) Append(order *domain.Order) *domain.Order {
	n := &orderNode{order: order, prev: q.tail}
	if q.tail != nil {
		q.tail.next = n
	} else {
		q.head = n
	}
	q.tail = n
	q.byID[order.ID] = n
	return order
}

// RemoveFromHead pops the front order, nil when the queue is empty.
// Activation drains a triggered queue through here so FIFO priority
// carries over into the live book.
func (q *StopQueue) RemoveFromHead() *domain.Order {
	if q.head == nil {
		return nil
	}
	n := q.head
	q.head = n.next
	if q.head != nil {
		q.head.prev = nil
	} else {
		q.tail = nil
	}
	delete(q.byID, n.order.ID)
	return n.order
}

// Remove detaches the order with the given id, nil when unknown.
func (q *StopQueue) Remove(id string) *domain.Order {
	n, ok := q.byID[id]
	if !ok {
		return nil
	}
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		q.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		q.tail = n.prev
	}
	n.prev, n.next = nil, nil
	delete(q.byID, id)
	return n.order
}

func (q *StopQueue) Orders() []*domain.Order {
	out := make([]*domain.Order, 0, len(q.byID))
	for n := q.head; n != nil; n = n.next {
		out = append(out, n.order)
	}
	return out
}
