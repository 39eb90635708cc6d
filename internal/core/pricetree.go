package core

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/shopspring/decimal"

	"github.com/olyamironova/matching-core/internal/domain"
)

// priceTree is a price-ordered map over a red-black tree. The comparator
// is derived from the side: ascending for SELL, descending for BUY, so
// comparator order always starts at the best price to trade against.
// LowerThan/GreaterThan work in nominal price terms regardless of side.
type priceTree[V any] struct {
	tree *redblacktree.Tree
	side domain.Side
}

func newPriceTree[V any](side domain.Side) *priceTree[V] {
	cmp := func(a, b interface{}) int {
		da := a.(decimal.Decimal)
		db := b.(decimal.Decimal)
		if side == domain.Buy {
			return db.Cmp(da)
		}
		return da.Cmp(db)
	}
	return &priceTree[V]{tree: redblacktree.NewWith(cmp), side: side}
}

func (t *priceTree[V]) Put(price decimal.Decimal, v V) {
	t.tree.Put(price, v)
}

func (t *priceTree[V]) Remove(price decimal.Decimal) {
	t.tree.Remove(price)
}

func (t *priceTree[V]) Get(price decimal.Decimal) (V, bool) {
	raw, ok := t.tree.Get(price)
	if !ok {
		var zero V
		return zero, false
	}
	return raw.(V), true
}

func (t *priceTree[V]) Len() int {
	return t.tree.Size()
}

// Best returns the first level in comparator order: the lowest ask on a
// SELL tree, the highest bid on a BUY tree.
func (t *priceTree[V]) Best() (V, bool) {
	return t.node(t.tree.Left())
}

// Worst returns the last level in comparator order.
func (t *priceTree[V]) Worst() (V, bool) {
	return t.node(t.tree.Right())
}

// Max returns the nominally highest price level.
func (t *priceTree[V]) Max() (V, bool) {
	if t.side == domain.Buy {
		return t.node(t.tree.Left())
	}
	return t.node(t.tree.Right())
}

// Min returns the nominally lowest price level.
func (t *priceTree[V]) Min() (V, bool) {
	if t.side == domain.Buy {
		return t.node(t.tree.Right())
	}
	return t.node(t.tree.Left())
}

// LowerThan returns the level with the greatest price strictly below the
// given one.
func (t *priceTree[V]) LowerThan(price decimal.Decimal) (V, bool) {
	var found *redblacktree.Node
	node := t.tree.Root
	for node != nil {
		k := node.Key.(decimal.Decimal)
		if k.Cmp(price) < 0 {
			found = node
			if t.side == domain.Buy {
				node = node.Left
			} else {
				node = node.Right
			}
		} else {
			if t.side == domain.Buy {
				node = node.Right
			} else {
				node = node.Left
			}
		}
	}
	return t.node(found)
}

// GreaterThan returns the level with the smallest price strictly above
// the given one.
func (t *priceTree[V]) GreaterThan(price decimal.Decimal) (V, bool) {
	var found *redblacktree.Node
	node := t.tree.Root
	for node != nil {
		k := node.Key.(decimal.Decimal)
		if k.Cmp(price) > 0 {
			found = node
			if t.side == domain.Buy {
				node = node.Right
			} else {
				node = node.Left
			}
		} else {
			if t.side == domain.Buy {
				node = node.Left
			} else {
				node = node.Right
			}
		}
	}
	return t.node(found)
}

// Each walks levels in comparator order (best first) until fn returns false.
func (t *priceTree[V]) Each(fn func(price decimal.Decimal, v V) bool) {
	it := t.tree.Iterator()
	for it.Next() {
		if !fn(it.Key().(decimal.Decimal), it.Value().(V)) {
			return
		}
	}
}

func (t *priceTree[V]) node(n *redblacktree.Node) (V, bool) {
	if n == nil {
		var zero V
		return zero, false
	}
	return n.Value.(V), true
}
