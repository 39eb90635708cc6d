package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olyamironova/matching-core/internal/domain"
)

func TestOrderSideAggregates(t *testing.T) {
	s := NewOrderSide(domain.Buy, fixedClock)
	o1 := limitOrder("o1", domain.Buy, "5", "10")
	o2 := limitOrder("o2", domain.Buy, "5", "20")
	s.Append(o1)
	s.Append(o2)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 2, s.Depth())
	assert.True(t, s.Volume().Equal(d("10")))
	assert.True(t, s.Total().Equal(d("150")))

	newSize := d("10")
	_, err := s.UpdateOrderSize(o1, domain.OrderUpdate{Size: &newSize})
	require.NoError(t, err)
	assert.True(t, s.Volume().Equal(d("15")))
	assert.True(t, s.Total().Equal(d("200")))
	assert.Equal(t, fixedClock(), o1.Time)

	newPrice := d("25")
	moved, err := s.UpdateOrderPrice(o1, domain.OrderUpdate{Price: &newPrice})
	require.NoError(t, err)
	assert.True(t, moved.Price.Equal(d("25")))
	assert.Equal(t, fixedClock(), moved.Time)
	assert.True(t, s.Volume().Equal(d("15")))
	assert.True(t, s.Total().Equal(d("350")))
	assert.Equal(t, 2, s.Depth())
	assert.True(t, s.MaxPriceQueue().Price().Equal(d("25")))
}

func TestOrderSideRemoveDeletesEmptyLevel(t *testing.T) {
	s := NewOrderSide(domain.Sell, fixedClock)
	o1 := limitOrder("o1", domain.Sell, "1", "10")
	o2 := limitOrder("o2", domain.Sell, "1", "10")
	s.Append(o1)
	s.Append(o2)
	require.Equal(t, 1, s.Depth())

	_, err := s.Remove(o1)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Depth())

	_, err = s.Remove(o2)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Depth())
	assert.Nil(t, s.BestQueue())
}

func TestOrderSideRemoveStaleReference(t *testing.T) {
	s := NewOrderSide(domain.Buy, fixedClock)
	s.Append(limitOrder("o1", domain.Buy, "5", "10"))

	stale := limitOrder("o1", domain.Buy, "5", "11")
	_, err := s.Remove(stale)
	assert.ErrorIs(t, err, domain.ErrInvalidPriceLevel)

	// failed removal must not touch the aggregates
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Volume().Equal(d("5")))
	assert.True(t, s.Total().Equal(d("50")))
}

func TestOrderSideBestQueue(t *testing.T) {
	bids := NewOrderSide(domain.Buy, fixedClock)
	bids.Append(limitOrder("b1", domain.Buy, "1", "10"))
	bids.Append(limitOrder("b2", domain.Buy, "1", "20"))
	assert.True(t, bids.BestQueue().Price().Equal(d("20")))
	assert.True(t, bids.MinPriceQueue().Price().Equal(d("10")))

	asks := NewOrderSide(domain.Sell, fixedClock)
	asks.Append(limitOrder("a1", domain.Sell, "1", "10"))
	asks.Append(limitOrder("a2", domain.Sell, "1", "20"))
	assert.True(t, asks.BestQueue().Price().Equal(d("10")))
	assert.True(t, asks.MaxPriceQueue().Price().Equal(d("20")))
}

func TestOrderSideLevelsBestFirst(t *testing.T) {
	bids := NewOrderSide(domain.Buy, fixedClock)
	for _, p := range []string{"10", "30", "20"} {
		bids.Append(limitOrder("b"+p, domain.Buy, "1", p))
	}
	var prices []string
	bids.Levels(func(q *OrderQueue) bool {
		prices = append(prices, q.Price().String())
		return true
	})
	assert.Equal(t, []string{"30", "20", "10"}, prices)
}
