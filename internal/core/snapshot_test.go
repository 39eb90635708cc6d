package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olyamironova/matching-core/internal/domain"
)

func fixedClock() int64 { return 1700000000000 }

func collectLog(t *testing.T, entries *[]domain.JournalEntry, res *domain.ProcessResult) {
	t.Helper()
	require.NoError(t, res.Err)
	require.NotNil(t, res.Log)
	*entries = append(*entries, *res.Log)
}

func assertBooksEqual(t *testing.T, want, got *OrderBook) {
	t.Helper()
	assert.Equal(t, want.String(), got.String())
	assert.True(t, want.MarketPrice().Equal(got.MarketPrice()),
		"market price %s vs %s", want.MarketPrice(), got.MarketPrice())
	assert.Equal(t, want.LastOp(), got.LastOp())
	assert.Equal(t, want.Depth(), got.Depth())
	// full order records must match too, times included
	assert.Equal(t, want.Snapshot(), got.Snapshot())
}

func TestJournalReplayRebuildsState(t *testing.T) {
	b1 := newBook(t, Options{EnableJournaling: true, ConditionalOrders: true, Clock: fixedClock})
	var entries []domain.JournalEntry

	collectLog(t, &entries, b1.Limit(domain.LimitOrderParams{ID: "s1", Side: domain.Sell, Size: d("2"), Price: d("10")}))
	collectLog(t, &entries, b1.Limit(domain.LimitOrderParams{ID: "s2", Side: domain.Sell, Size: d("3"), Price: d("11")}))
	collectLog(t, &entries, b1.Limit(domain.LimitOrderParams{ID: "s3", Side: domain.Sell, Size: d("1"), Price: d("12")}))
	collectLog(t, &entries, b1.Limit(domain.LimitOrderParams{ID: "b1", Side: domain.Buy, Size: d("1"), Price: d("9")}))
	collectLog(t, &entries, b1.Market(domain.MarketOrderParams{Side: domain.Buy, Size: d("5")}))
	collectLog(t, &entries, b1.StopMarket(domain.StopMarketOrderParams{ID: "st1", Side: domain.Buy, Size: d("1"), StopPrice: d("12")}))
	collectLog(t, &entries, b1.Market(domain.MarketOrderParams{Side: domain.Buy, Size: d("1")}))
	size := d("2")
	collectLog(t, &entries, b1.ModifyOrder(domain.ModifyOrderParams{OrderID: "b1", Update: domain.OrderUpdate{Size: &size}}))

	b2 := newBook(t, Options{Journal: entries, ConditionalOrders: true, Clock: fixedClock})
	assertBooksEqual(t, b1, b2)
}

func TestSnapshotPlusSuffixReplay(t *testing.T) {
	b1 := newBook(t, Options{EnableJournaling: true, ConditionalOrders: true, Clock: fixedClock})
	var entries []domain.JournalEntry

	collectLog(t, &entries, b1.Limit(domain.LimitOrderParams{ID: "s1", Side: domain.Sell, Size: d("2"), Price: d("10")}))
	collectLog(t, &entries, b1.Limit(domain.LimitOrderParams{ID: "b1", Side: domain.Buy, Size: d("4"), Price: d("9")}))

	snap := b1.Snapshot()
	require.Equal(t, int64(2), snap.LastOp)

	collectLog(t, &entries, b1.Market(domain.MarketOrderParams{Side: domain.Buy, Size: d("1")}))
	price := d("9.5")
	collectLog(t, &entries, b1.ModifyOrder(domain.ModifyOrderParams{OrderID: "b1", Update: domain.OrderUpdate{Price: &price}}))

	// entries covered by the snapshot are skipped, the suffix is applied
	b2 := newBook(t, Options{Snapshot: snap, Journal: entries, ConditionalOrders: true, Clock: fixedClock})
	assertBooksEqual(t, b1, b2)
	require.NotNil(t, b2.Order("b1"))
	assert.True(t, b2.Order("b1").Price.Equal(d("9.5")))
}

func TestSnapshotCarriesStopBook(t *testing.T) {
	b1 := newBook(t, Options{EnableJournaling: true, ConditionalOrders: true, Clock: fixedClock})
	seedMarketPrice(t, b1, "10")

	res := b1.StopMarket(domain.StopMarketOrderParams{ID: "st1", Side: domain.Buy, Size: d("1"), StopPrice: d("12")})
	require.NoError(t, res.Err)

	snap := b1.Snapshot()
	require.Len(t, snap.StopBook.Bids, 1)
	assert.Equal(t, "st1", snap.StopBook.Bids[0].Orders[0].ID)

	b2 := newBook(t, Options{Snapshot: snap, ConditionalOrders: true, Clock: fixedClock})
	restored := b2.Order("st1")
	require.NotNil(t, restored)
	assert.Equal(t, domain.StopMarket, restored.Type)
	assert.True(t, restored.StopPrice.Equal(d("12")))
}

func TestReplayRejectsOutOfOrderEntries(t *testing.T) {
	entries := []domain.JournalEntry{
		{OpID: 1, Op: domain.OpLimit, Limit: &domain.LimitOrderParams{ID: "a", Side: domain.Buy, Size: d("1"), Price: d("10")}},
		{OpID: 1, Op: domain.OpLimit, Limit: &domain.LimitOrderParams{ID: "b", Side: domain.Buy, Size: d("1"), Price: d("10")}},
	}
	_, err := NewOrderBook(Options{Journal: entries})
	assert.ErrorIs(t, err, domain.ErrJournalOutOfOrder)
}

func TestReplayFailsOnBrokenEntry(t *testing.T) {
	entries := []domain.JournalEntry{
		{OpID: 1, Op: domain.OpCancel, Cancel: &domain.CancelOrderParams{OrderID: "ghost"}},
	}
	_, err := NewOrderBook(Options{Journal: entries})
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestJournalingDisabledStillCountsOps(t *testing.T) {
	b := newBook(t, Options{Clock: fixedClock})
	res := b.Limit(domain.LimitOrderParams{ID: "a", Side: domain.Buy, Size: d("1"), Price: d("10")})
	require.NoError(t, res.Err)
	assert.Nil(t, res.Log)
	assert.Equal(t, int64(1), b.LastOp())
}
