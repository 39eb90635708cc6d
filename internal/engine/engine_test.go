package engine

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olyamironova/matching-core/internal/adapter/in_memory"
	"github.com/olyamironova/matching-core/internal/domain"
	"github.com/olyamironova/matching-core/internal/port"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func newService(t *testing.T, store port.JournalStore, cache port.DepthCache) *Service {
	t.Helper()
	svc, err := NewService(context.Background(), Config{
		Instrument:        "BTC-USD",
		EnableJournaling:  true,
		ConditionalOrders: true,
		Store:             store,
		Cache:             cache,
	})
	require.NoError(t, err)
	return svc
}

func TestServicePersistsJournal(t *testing.T) {
	ctx := context.Background()
	store := in_memory.NewJournalStore()
	svc := newService(t, store, nil)

	res := svc.SubmitLimit(ctx, domain.LimitOrderParams{ID: "s1", Side: domain.Sell, Size: d("2"), Price: d("10")})
	require.NoError(t, res.Err)
	res = svc.SubmitMarket(ctx, domain.MarketOrderParams{Side: domain.Buy, Size: d("1")})
	require.NoError(t, res.Err)

	entries, err := store.LoadSince(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.OpLimit, entries[0].Op)
	assert.Equal(t, domain.OpMarket, entries[1].Op)
}

func TestServiceStampsTradeInstrument(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, in_memory.NewJournalStore(), nil)

	res := svc.SubmitLimit(ctx, domain.LimitOrderParams{ID: "s1", Side: domain.Sell, Size: d("1"), Price: d("10")})
	require.NoError(t, res.Err)
	res = svc.SubmitMarket(ctx, domain.MarketOrderParams{Side: domain.Buy, Size: d("1")})
	require.NoError(t, res.Err)

	require.Len(t, res.Trades, 1)
	assert.Equal(t, "BTC-USD", res.Trades[0].Instrument)
}

func TestServiceRecoversFromJournal(t *testing.T) {
	ctx := context.Background()
	store := in_memory.NewJournalStore()

	svc1 := newService(t, store, nil)
	res := svc1.SubmitLimit(ctx, domain.LimitOrderParams{ID: "s1", Side: domain.Sell, Size: d("2"), Price: d("10")})
	require.NoError(t, res.Err)
	res = svc1.SubmitMarket(ctx, domain.MarketOrderParams{Side: domain.Buy, Size: d("1")})
	require.NoError(t, res.Err)

	svc2 := newService(t, store, nil)
	o := svc2.Order("s1")
	require.NotNil(t, o)
	assert.True(t, o.Size.Equal(d("1")))
	assert.True(t, svc2.MarketPrice().Equal(d("10")))
}

func TestServiceSnapshotCompactsJournal(t *testing.T) {
	ctx := context.Background()
	store := in_memory.NewJournalStore()

	svc1 := newService(t, store, nil)
	res := svc1.SubmitLimit(ctx, domain.LimitOrderParams{ID: "s1", Side: domain.Sell, Size: d("2"), Price: d("10")})
	require.NoError(t, res.Err)

	snap, err := svc1.Snapshot(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)

	entries, err := store.LoadSince(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, entries, "snapshot must compact the covered journal prefix")

	// recovery now comes from the snapshot alone
	svc2 := newService(t, store, nil)
	require.NotNil(t, svc2.Order("s1"))

	// post-snapshot operations land in the journal suffix
	res = svc2.SubmitLimit(ctx, domain.LimitOrderParams{ID: "b1", Side: domain.Buy, Size: d("1"), Price: d("9")})
	require.NoError(t, res.Err)
	svc3 := newService(t, store, nil)
	require.NotNil(t, svc3.Order("s1"))
	require.NotNil(t, svc3.Order("b1"))
}

func TestServiceDepthCache(t *testing.T) {
	ctx := context.Background()
	cache := in_memory.NewCache()
	svc := newService(t, in_memory.NewJournalStore(), cache)

	res := svc.SubmitLimit(ctx, domain.LimitOrderParams{ID: "s1", Side: domain.Sell, Size: d("2"), Price: d("10")})
	require.NoError(t, res.Err)

	cached, err := cache.GetDepth(ctx, "BTC-USD")
	require.NoError(t, err)
	require.NotNil(t, cached)
	require.Len(t, cached.Asks, 1)
	assert.True(t, cached.Asks[0].Volume.Equal(d("2")))

	depth, err := svc.Depth(ctx)
	require.NoError(t, err)
	assert.Equal(t, cached, depth)
}

func TestServiceCancelJournaled(t *testing.T) {
	ctx := context.Background()
	store := in_memory.NewJournalStore()
	svc := newService(t, store, nil)

	res := svc.SubmitLimit(ctx, domain.LimitOrderParams{ID: "s1", Side: domain.Sell, Size: d("2"), Price: d("10")})
	require.NoError(t, res.Err)
	cr, err := svc.CancelOrder(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, cr.Order)

	svc2 := newService(t, store, nil)
	assert.Nil(t, svc2.Order("s1"))
}
