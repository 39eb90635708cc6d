package core

import (
	"github.com/shopspring/decimal"

	"github.com/olyamironova/matching-core/internal/domain"
)

type orderNode struct {
	order *domain.Order
	prev  *orderNode
	next  *orderNode
}

// OrderQueue is the FIFO of limit orders resting at one price level.
// A doubly linked list plus an id index makes removal O(1) from any
// position, with no index renumbering.
type OrderQueue struct {
	price  decimal.Decimal
	volume decimal.Decimal
	head   *orderNode
	tail   *orderNode
	byID   map[string]*orderNode
}

func NewOrderQueue(price decimal.Decimal) *OrderQueue {
	return &OrderQueue{
		price: price,
		byID:  make(map[string]*orderNode),
	}
}

func (q *OrderQueue) Len() int {
	return len(q.byID)
}

func (q *OrderQueue) Price() decimal.Decimal {
	return q.price
}

// Volume is the sum of member sizes, maintained on every mutation.
func (q *OrderQueue) Volume() decimal.Decimal {
	return q.volume
}

func (q *OrderQueue) Head() *domain.Order {
	if q.head == nil {
		return nil
	}
	return q.head.order
}

func (q *OrderQueue) Tail() *domain.Order {
	if q.tail == nil {
		return nil
	}
	return q.tail.order
}

// Append adds the order to the back of the queue.
func (q *OrderQueue) Append(order *domain.Order) *domain.Order {
	n := &orderNode{order: order, prev: q.tail}
	if q.tail != nil {
		q.tail.next = n
	} else {
		q.head = n
	}
	q.tail = n
	q.byID[order.ID] = n
	q.volume = q.volume.Add(order.Size)
	return order
}

// Remove detaches the order by identity. Unknown ids are a no-op.
func (q *OrderQueue) Remove(order *domain.Order) {
	n, ok := q.byID[order.ID]
	if !ok {
		return
	}
	q.unlink(n)
	delete(q.byID, order.ID)
	q.volume = q.volume.Sub(order.Size)
}

// Update replaces the head order with a new one, keeping it at the
// front. This models an order cancelled and resubmitted at the same
// price before anything else arrived. The engine's reprice path goes
// through OrderSide.UpdateOrderPrice instead, which always reinserts;
// Update serves callers managing a single level directly.
func (q *OrderQueue) Update(oldOrder, newOrder *domain.Order) {
	n, ok := q.byID[oldOrder.ID]
	if !ok || n != q.head {
		return
	}
	q.volume = q.volume.Sub(oldOrder.Size).Add(newOrder.Size)
	delete(q.byID, oldOrder.ID)
	n.order = newOrder
	q.byID[newOrder.ID] = n
}

// UpdateOrderSize mutates the order size in place, stamping the given
// time and keeping its queue position. Position-preserving edits are
// only legal for size decreases at the engine layer.
func (q *OrderQueue) UpdateOrderSize(order *domain.Order, size decimal.Decimal, ts int64) {
	q.volume = q.volume.Add(size.Sub(order.Size))
	order.Size = size
	order.Time = ts
}

// Orders returns the members in queue order.
func (q *OrderQueue) Orders() []*domain.Order {
	out := make([]*domain.Order, 0, len(q.byID))
	for n := q.head; n != nil; n = n.next {
		out = append(out, n.order)
	}
	return out
}

func (q *OrderQueue) unlink(n *orderNode) {
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
}
