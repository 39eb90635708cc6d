package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderDefaults(t *testing.T) {
	o, err := NewOrder(OrderParams{
		Type:  Limit,
		Side:  Buy,
		Size:  decimal.NewFromInt(5),
		Price: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, o.ID)
	assert.NotZero(t, o.Time)
	assert.Equal(t, GTC, o.TimeInForce)
	assert.True(t, o.OrigSize.Equal(o.Size))
}

func TestNewOrderRejectsUnknownType(t *testing.T) {
	for _, typ := range []OrderType{Market, OCO, OrderType("TRAILING")} {
		_, err := NewOrder(OrderParams{
			Type:  typ,
			Side:  Buy,
			Size:  decimal.NewFromInt(1),
			Price: decimal.NewFromInt(1),
		})
		assert.ErrorIs(t, err, ErrInvalidOrderType, "type %s", typ)
	}
}

func TestOrderKindPredicates(t *testing.T) {
	stop, err := NewOrder(OrderParams{
		Type:      StopMarket,
		Side:      Sell,
		Size:      decimal.NewFromInt(1),
		StopPrice: decimal.NewFromInt(9),
	})
	require.NoError(t, err)
	assert.True(t, stop.IsStopOrder())
	assert.False(t, stop.HasOCOLink())

	linked, err := NewOrder(OrderParams{
		Type:         Limit,
		Side:         Buy,
		Size:         decimal.NewFromInt(1),
		Price:        decimal.NewFromInt(9),
		OCOStopPrice: decimal.NewFromInt(11),
	})
	require.NoError(t, err)
	assert.False(t, linked.IsStopOrder())
	assert.True(t, linked.HasOCOLink())
}

func TestRecordRoundTrip(t *testing.T) {
	o, err := NewOrder(OrderParams{
		Type:        StopLimit,
		ID:          "ord-1",
		Side:        Sell,
		Size:        decimal.RequireFromString("2.5"),
		OrigSize:    decimal.RequireFromString("4"),
		Price:       decimal.RequireFromString("99.1"),
		StopPrice:   decimal.RequireFromString("100"),
		TimeInForce: IOC,
		IsOCO:       true,
		Time:        1234,
	})
	require.NoError(t, err)

	restored, err := OrderFromRecord(o.Record())
	require.NoError(t, err)
	assert.Equal(t, o, restored)
}
