package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/olyamironova/matching-core/internal/domain"
)

func TestValidConditionalOrderStopMarket(t *testing.T) {
	b := NewStopBook()
	market := d("10")

	cases := []struct {
		name  string
		side  domain.Side
		stop  string
		valid bool
	}{
		{"buy above market", domain.Buy, "10.1", true},
		{"buy at market", domain.Buy, "10", false},
		{"buy below market", domain.Buy, "9", false},
		{"sell below market", domain.Sell, "9.9", true},
		{"sell at market", domain.Sell, "10", false},
		{"sell above market", domain.Sell, "11", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := stopOrder("x", tc.side, "1", tc.stop)
			assert.Equal(t, tc.valid, b.ValidConditionalOrder(market, o))
		})
	}
}

func TestValidConditionalOrderStopLimit(t *testing.T) {
	b := NewStopBook()
	market := d("10")

	cases := []struct {
		name  string
		side  domain.Side
		stop  string
		limit string
		valid bool
	}{
		{"buy stop below limit", domain.Buy, "11", "12", true},
		{"buy stop equals limit", domain.Buy, "11", "11", true},
		{"buy stop above limit", domain.Buy, "11", "10.5", false},
		{"buy stop at market", domain.Buy, "10", "11", false},
		{"sell stop above limit", domain.Sell, "9", "8", true},
		{"sell stop equals limit", domain.Sell, "9", "9", true},
		{"sell stop below limit", domain.Sell, "9", "9.5", false},
		{"sell stop at market", domain.Sell, "10", "9", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := stopLimitOrder("x", tc.side, "1", tc.limit, tc.stop)
			assert.Equal(t, tc.valid, b.ValidConditionalOrder(market, o))
		})
	}
}

func TestStopBookAddRemove(t *testing.T) {
	b := NewStopBook()
	b.Add(stopOrder("a", domain.Buy, "1", "12"))
	b.Add(stopOrder("b", domain.Sell, "1", "8"))

	removed, err := b.Remove(domain.Buy, "a", d("12"))
	assert.NoError(t, err)
	assert.Equal(t, "a", removed.ID)

	queues := b.GetConditionalOrders(domain.Sell, d("10"), d("8"))
	assert.Len(t, queues, 1)
	assert.Equal(t, 1, queues[0].Len())
}

func TestStopBookSnapshot(t *testing.T) {
	b := NewStopBook()
	b.Add(stopOrder("a", domain.Buy, "1", "12"))
	b.Add(stopLimitOrder("b", domain.Sell, "2", "7", "8"))

	snap := b.Snapshot()
	assert.Len(t, snap.Bids, 1)
	assert.Len(t, snap.Asks, 1)
	assert.Equal(t, "a", snap.Bids[0].Orders[0].ID)
	assert.Equal(t, "b", snap.Asks[0].Orders[0].ID)
}
