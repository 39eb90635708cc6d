package engine

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/olyamironova/matching-core/internal/core"
	"github.com/olyamironova/matching-core/internal/domain"
	"github.com/olyamironova/matching-core/internal/port"
)

// Config wires the service. Store, Cache and Publisher are optional;
// a nil Store disables recovery and journal persistence.
type Config struct {
	Instrument        string
	EnableJournaling  bool
	ConditionalOrders bool
	Store             port.JournalStore
	Cache             port.DepthCache
	Publisher         port.TradePublisher
	Logger            *zap.Logger
}

// Service hosts one order book behind a mutex: the book itself is a
// single-writer state machine, so every mutating call is serialized
// here. Around each operation the service persists the journal entry,
// publishes trades and refreshes the depth cache.
type Service struct {
	mu         sync.Mutex
	book       *core.OrderBook
	store      port.JournalStore
	cache      port.DepthCache
	pub        port.TradePublisher
	log        *zap.Logger
	instrument string
}

// NewService recovers the book from the store (latest snapshot plus the
// journal suffix) and starts serving.
func NewService(ctx context.Context, cfg Config) (*Service, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var snap *domain.Snapshot
	var journal []domain.JournalEntry
	if cfg.Store != nil {
		var err error
		snap, err = cfg.Store.LoadLatestSnapshot(ctx)
		if err != nil {
			return nil, err
		}
		var afterOp int64
		if snap != nil {
			afterOp = snap.LastOp
		}
		journal, err = cfg.Store.LoadSince(ctx, afterOp)
		if err != nil {
			return nil, err
		}
	}

	book, err := core.NewOrderBook(core.Options{
		Snapshot:          snap,
		Journal:           journal,
		EnableJournaling:  cfg.EnableJournaling,
		ConditionalOrders: cfg.ConditionalOrders,
	})
	if err != nil {
		return nil, err
	}
	log.Info("order book recovered",
		zap.String("instrument", cfg.Instrument),
		zap.Int64("lastOp", book.LastOp()),
		zap.Int("replayedEntries", len(journal)),
		zap.Bool("fromSnapshot", snap != nil))

	return &Service{
		book:       book,
		store:      cfg.Store,
		cache:      cfg.Cache,
		pub:        cfg.Publisher,
		log:        log,
		instrument: cfg.Instrument,
	}, nil
}

func (s *Service) SubmitMarket(ctx context.Context, p domain.MarketOrderParams) *domain.ProcessResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := s.book.Market(p)
	s.finish(ctx, res)
	return res
}

func (s *Service) SubmitLimit(ctx context.Context, p domain.LimitOrderParams) *domain.ProcessResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := s.book.Limit(p)
	s.finish(ctx, res)
	return res
}

func (s *Service) SubmitStopMarket(ctx context.Context, p domain.StopMarketOrderParams) *domain.ProcessResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := s.book.StopMarket(p)
	s.finish(ctx, res)
	return res
}

func (s *Service) SubmitStopLimit(ctx context.Context, p domain.StopLimitOrderParams) *domain.ProcessResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := s.book.StopLimit(p)
	s.finish(ctx, res)
	return res
}

func (s *Service) SubmitOCO(ctx context.Context, p domain.OCOOrderParams) *domain.ProcessResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := s.book.OCO(p)
	s.finish(ctx, res)
	return res
}

func (s *Service) ModifyOrder(ctx context.Context, p domain.ModifyOrderParams) *domain.ProcessResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := s.book.ModifyOrder(p)
	s.finish(ctx, res)
	return res
}

func (s *Service) CancelOrder(ctx context.Context, orderID string) (*domain.CancelResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cr, err := s.book.CancelOrder(orderID)
	if err != nil {
		return nil, err
	}
	if cr.Log != nil && s.store != nil {
		if err := s.store.Append(ctx, cr.Log); err != nil {
			s.log.Error("append journal entry", zap.Int64("opId", cr.Log.OpID), zap.Error(err))
		}
	}
	s.refreshDepth(ctx)
	return cr, nil
}

func (s *Service) Order(orderID string) *domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.Order(orderID)
}

func (s *Service) MarketPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.MarketPrice()
}

// Depth serves the ladder from the cache when possible, falling back to
// the book.
func (s *Service) Depth(ctx context.Context) (*domain.Depth, error) {
	if s.cache != nil {
		if d, err := s.cache.GetDepth(ctx, s.instrument); err == nil && d != nil {
			return d, nil
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.book.Depth()
	return &d, nil
}

func (s *Service) CalculateMarketPrice(side domain.Side, size decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.CalculateMarketPrice(side, size)
}

// Snapshot captures the book and persists it, compacting the journal.
func (s *Service) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.Lock()
	snap := s.book.Snapshot()
	s.mu.Unlock()
	if s.store != nil {
		if err := s.store.SaveSnapshot(ctx, snap); err != nil {
			return nil, err
		}
		s.log.Info("snapshot persisted", zap.Int64("lastOp", snap.LastOp))
	}
	return snap, nil
}

func (s *Service) finish(ctx context.Context, res *domain.ProcessResult) {
	if res.Err != nil {
		return
	}
	if res.Log != nil && s.store != nil {
		if err := s.store.Append(ctx, res.Log); err != nil {
			s.log.Error("append journal entry", zap.Int64("opId", res.Log.OpID), zap.Error(err))
		}
	}
	if len(res.Trades) > 0 {
		for i := range res.Trades {
			res.Trades[i].Instrument = s.instrument
		}
		if s.pub != nil {
			if err := s.pub.PublishTrades(ctx, res.Trades); err != nil {
				s.log.Error("publish trades", zap.Error(err))
			}
		}
	}
	s.refreshDepth(ctx)
}

func (s *Service) refreshDepth(ctx context.Context) {
	if s.cache == nil {
		return
	}
	d := s.book.Depth()
	if err := s.cache.SetDepth(ctx, s.instrument, &d); err != nil {
		s.log.Warn("refresh depth cache", zap.Error(err))
	}
}
