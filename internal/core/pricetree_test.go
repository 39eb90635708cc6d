package core

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olyamironova/matching-core/internal/domain"
)

func collectPrices(t *priceTree[string]) []string {
	var out []string
	t.Each(func(price decimal.Decimal, _ string) bool {
		out = append(out, price.String())
		return true
	})
	return out
}

func TestPriceTreeBuyOrdering(t *testing.T) {
	tree := newPriceTree[string](domain.Buy)
	for _, p := range []string{"10", "30", "20"} {
		tree.Put(d(p), p)
	}

	// comparator order is descending: the highest bid trades first
	assert.Equal(t, []string{"30", "20", "10"}, collectPrices(tree))

	best, ok := tree.Best()
	require.True(t, ok)
	assert.Equal(t, "30", best)

	max, _ := tree.Max()
	min, _ := tree.Min()
	assert.Equal(t, "30", max)
	assert.Equal(t, "10", min)
}

func TestPriceTreeSellOrdering(t *testing.T) {
	tree := newPriceTree[string](domain.Sell)
	for _, p := range []string{"10", "30", "20"} {
		tree.Put(d(p), p)
	}

	assert.Equal(t, []string{"10", "20", "30"}, collectPrices(tree))

	best, ok := tree.Best()
	require.True(t, ok)
	assert.Equal(t, "10", best)

	max, _ := tree.Max()
	min, _ := tree.Min()
	assert.Equal(t, "30", max)
	assert.Equal(t, "10", min)
}

func TestPriceTreeNominalNeighbors(t *testing.T) {
	for _, side := range []domain.Side{domain.Buy, domain.Sell} {
		tree := newPriceTree[string](side)
		for _, p := range []string{"10", "20", "30"} {
			tree.Put(d(p), p)
		}

		lower, ok := tree.LowerThan(d("20"))
		require.True(t, ok, "side %s", side)
		assert.Equal(t, "10", lower)

		higher, ok := tree.GreaterThan(d("20"))
		require.True(t, ok, "side %s", side)
		assert.Equal(t, "30", higher)

		// strict bounds at the extremes
		_, ok = tree.LowerThan(d("10"))
		assert.False(t, ok)
		_, ok = tree.GreaterThan(d("30"))
		assert.False(t, ok)
	}
}

func TestPriceTreeRemove(t *testing.T) {
	tree := newPriceTree[string](domain.Sell)
	tree.Put(d("10"), "10")
	tree.Put(d("20"), "20")
	tree.Remove(d("10"))

	assert.Equal(t, 1, tree.Len())
	_, ok := tree.Get(d("10"))
	assert.False(t, ok)
}
