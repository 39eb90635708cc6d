package core

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/olyamironova/matching-core/internal/domain"
)

// Options configures a new book. Snapshot is applied before Journal;
// journal entries with OpID at or below the snapshot's LastOp are
// skipped. Clock overrides the timestamp source, mainly for tests.
type Options struct {
	Snapshot          *domain.Snapshot
	Journal           []domain.JournalEntry
	EnableJournaling  bool
	ConditionalOrders bool
	Clock             func() int64
}

// OrderBook is the matching engine for a single instrument. It is a
// single-writer state machine: every mutating call applies atomically
// and in full before the next one is accepted. Callers that want
// concurrent access must serialize externally.
type OrderBook struct {
	asks     *OrderSide
	bids     *OrderSide
	stopBook *StopBook

	orders     map[string]*domain.Order // resting limit orders by id
	stopOrders map[string]*domain.Order // resting stop orders by id

	marketPrice decimal.Decimal
	lastOp      int64

	journaling  bool
	conditional bool
	sweeping    bool
	now         func() int64
}

func NewOrderBook(opts Options) (*OrderBook, error) {
	b := &OrderBook{
		stopBook:    NewStopBook(),
		orders:      make(map[string]*domain.Order),
		stopOrders:  make(map[string]*domain.Order),
		journaling:  opts.EnableJournaling,
		conditional: opts.ConditionalOrders,
		now:         opts.Clock,
	}
	if b.now == nil {
		b.now = func() int64 { return time.Now().UnixMilli() }
	}
	b.asks = NewOrderSide(domain.Sell, b.now)
	b.bids = NewOrderSide(domain.Buy, b.now)
	if opts.Snapshot != nil {
		if err := b.restore(opts.Snapshot); err != nil {
			return nil, err
		}
	}
	if len(opts.Journal) > 0 {
		if err := b.replay(opts.Journal); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Market submits a market order: it consumes opposite-side liquidity
// from the best price outward until filled or the book is exhausted.
func (b *OrderBook) Market(p domain.MarketOrderParams) *domain.ProcessResult {
	res := &domain.ProcessResult{QuantityLeft: p.Size}
	if !validSide(p.Side) {
		res.Err = domain.ErrInvalidSide
		return res
	}
	if p.Size.Sign() <= 0 {
		res.Err = domain.ErrInvalidQuantity
		return res
	}
	b.market(p.Side, p.Size, uuid.NewString(), res)
	if res.Err == nil {
		res.Log = b.appendLog(domain.OpMarket, func(e *domain.JournalEntry) { e.Market = &p })
	}
	return res
}

// Limit submits a limit order: any marketable part trades immediately,
// the remainder rests, is discarded (IOC) or the whole order is
// rejected (FOK, postOnly).
func (b *OrderBook) Limit(p domain.LimitOrderParams) *domain.ProcessResult {
	res := &domain.ProcessResult{QuantityLeft: p.Size}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := b.validateLimit(&p); err != nil {
		res.Err = err
		return res
	}
	b.limit(p, decimal.Zero, res)
	if res.Err == nil {
		res.Log = b.appendLog(domain.OpLimit, func(e *domain.JournalEntry) { e.Limit = &p })
	}
	return res
}

// StopMarket rests a market order that activates when the traded price
// crosses the stop price.
func (b *OrderBook) StopMarket(p domain.StopMarketOrderParams) *domain.ProcessResult {
	res := &domain.ProcessResult{QuantityLeft: p.Size}
	if !b.conditional {
		res.Err = domain.ErrInvalidOrderType
		return res
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	switch {
	case !validSide(p.Side):
		res.Err = domain.ErrInvalidSide
	case p.Size.Sign() <= 0:
		res.Err = domain.ErrInvalidQuantity
	case p.StopPrice.Sign() <= 0:
		res.Err = domain.ErrInvalidPrice
	case b.orderExists(p.ID):
		res.Err = domain.ErrOrderExists
	}
	if res.Err != nil {
		return res
	}
	order, err := domain.NewOrder(domain.OrderParams{
		Type:      domain.StopMarket,
		ID:        p.ID,
		Side:      p.Side,
		Size:      p.Size,
		StopPrice: p.StopPrice,
		Time:      b.now(),
	})
	if err != nil {
		res.Err = err
		return res
	}
	if !b.stopBook.ValidConditionalOrder(b.marketPrice, order) {
		res.Err = domain.ErrInvalidConditionalOrder
		return res
	}
	b.stopBook.Add(order)
	b.stopOrders[p.ID] = order
	res.Log = b.appendLog(domain.OpStopMarket, func(e *domain.JournalEntry) { e.StopMarket = &p })
	return res
}

// StopLimit rests a limit order that activates when the traded price
// crosses the stop price.
func (b *OrderBook) StopLimit(p domain.StopLimitOrderParams) *domain.ProcessResult {
	res := &domain.ProcessResult{QuantityLeft: p.Size}
	if !b.conditional {
		res.Err = domain.ErrInvalidOrderType
		return res
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.TimeInForce == "" {
		p.TimeInForce = domain.GTC
	}
	switch {
	case !validSide(p.Side):
		res.Err = domain.ErrInvalidSide
	case p.Size.Sign() <= 0:
		res.Err = domain.ErrInvalidQuantity
	case p.Price.Sign() <= 0 || p.StopPrice.Sign() <= 0:
		res.Err = domain.ErrInvalidPrice
	case !validTimeInForce(p.TimeInForce):
		res.Err = domain.ErrInvalidTimeInForce
	case b.orderExists(p.ID):
		res.Err = domain.ErrOrderExists
	}
	if res.Err != nil {
		return res
	}
	order, err := domain.NewOrder(domain.OrderParams{
		Type:        domain.StopLimit,
		ID:          p.ID,
		Side:        p.Side,
		Size:        p.Size,
		Price:       p.Price,
		StopPrice:   p.StopPrice,
		TimeInForce: p.TimeInForce,
		Time:        b.now(),
	})
	if err != nil {
		res.Err = err
		return res
	}
	if !b.stopBook.ValidConditionalOrder(b.marketPrice, order) {
		res.Err = domain.ErrInvalidConditionalOrder
		return res
	}
	b.stopBook.Add(order)
	b.stopOrders[p.ID] = order
	res.Log = b.appendLog(domain.OpStopLimit, func(e *domain.JournalEntry) { e.StopLimit = &p })
	return res
}

// OCO submits a one-cancels-other pair: a limit order and a stop limit
// order sharing one id. Completion of either leg cancels the other.
// Placement requires price < marketPrice < stopPrice for BUY and the
// mirror for SELL.
func (b *OrderBook) OCO(p domain.OCOOrderParams) *domain.ProcessResult {
	res := &domain.ProcessResult{QuantityLeft: p.Size}
	if !b.conditional {
		res.Err = domain.ErrInvalidOrderType
		return res
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.TimeInForce == "" {
		p.TimeInForce = domain.GTC
	}
	if p.StopLimitTimeInForce == "" {
		p.StopLimitTimeInForce = domain.GTC
	}
	switch {
	case !validSide(p.Side):
		res.Err = domain.ErrInvalidSide
	case p.Size.Sign() <= 0:
		res.Err = domain.ErrInvalidQuantity
	case p.Price.Sign() <= 0 || p.StopPrice.Sign() <= 0 || p.StopLimitPrice.Sign() <= 0:
		res.Err = domain.ErrInvalidPrice
	case !validTimeInForce(p.TimeInForce) || !validTimeInForce(p.StopLimitTimeInForce):
		res.Err = domain.ErrInvalidTimeInForce
	case b.orderExists(p.ID):
		res.Err = domain.ErrOrderExists
	case !b.validOCO(p):
		res.Err = domain.ErrInvalidConditionalOrder
	}
	if res.Err != nil {
		return res
	}
	b.limit(domain.LimitOrderParams{
		ID:          p.ID,
		Side:        p.Side,
		Size:        p.Size,
		Price:       p.Price,
		TimeInForce: p.TimeInForce,
	}, p.StopPrice, res)
	if res.Err != nil {
		return res
	}
	// arm the stop leg only while the limit leg is still live
	if _, resting := b.orders[p.ID]; resting {
		stopLeg, err := domain.NewOrder(domain.OrderParams{
			Type:        domain.StopLimit,
			ID:          p.ID,
			Side:        p.Side,
			Size:        p.Size,
			Price:       p.StopLimitPrice,
			StopPrice:   p.StopPrice,
			TimeInForce: p.StopLimitTimeInForce,
			IsOCO:       true,
			Time:        b.now(),
		})
		if err != nil {
			res.Err = err
			return res
		}
		b.stopBook.Add(stopLeg)
		b.stopOrders[p.ID] = stopLeg
	}
	res.Log = b.appendLog(domain.OpOCO, func(e *domain.JournalEntry) { e.OCO = &p })
	return res
}

// ModifyOrder changes the price or size of a resting limit order.
// A price change always loses time priority; a size increase moves the
// order to the back of its queue; a size decrease keeps its position.
func (b *OrderBook) ModifyOrder(p domain.ModifyOrderParams) *domain.ProcessResult {
	res := &domain.ProcessResult{}
	order, ok := b.orders[p.OrderID]
	if !ok {
		res.Err = domain.ErrOrderNotFound
		return res
	}
	upd := p.Update
	switch {
	case upd.Price != nil && upd.Price.Cmp(order.Price) != 0:
		if upd.Price.Sign() <= 0 {
			res.Err = domain.ErrInvalidPrice
			return res
		}
		if upd.Size != nil && upd.Size.Sign() <= 0 {
			res.Err = domain.ErrInvalidQuantity
			return res
		}
		newOrder, err := b.sideOf(order.Side).UpdateOrderPrice(order, upd)
		if err != nil {
			res.Err = err
			return res
		}
		b.orders[p.OrderID] = newOrder
		res.Done = append(res.Done, newOrder)
	case upd.Size != nil && upd.Size.Cmp(order.Size) != 0:
		if upd.Size.Sign() <= 0 {
			res.Err = domain.ErrInvalidQuantity
			return res
		}
		side := b.sideOf(order.Side)
		if upd.Size.Cmp(order.Size) > 0 {
			if _, err := side.Remove(order); err != nil {
				res.Err = err
				return res
			}
			newOrder, err := domain.NewOrder(domain.OrderParams{
				Type:         order.Type,
				ID:           order.ID,
				Side:         order.Side,
				Size:         *upd.Size,
				OrigSize:     order.OrigSize,
				Price:        order.Price,
				TimeInForce:  order.TimeInForce,
				PostOnly:     order.PostOnly,
				MakerQty:     order.MakerQty,
				TakerQty:     order.TakerQty,
				OCOStopPrice: order.OCOStopPrice,
				Time:         b.now(),
			})
			if err != nil {
				res.Err = err
				return res
			}
			side.Append(newOrder)
			b.orders[p.OrderID] = newOrder
			res.Done = append(res.Done, newOrder)
		} else {
			if _, err := side.UpdateOrderSize(order, upd); err != nil {
				res.Err = err
				return res
			}
			res.Done = append(res.Done, order)
		}
	default:
		res.Err = domain.ErrInvalidQuantity
		return res
	}
	res.Log = b.appendLog(domain.OpModify, func(e *domain.JournalEntry) { e.Modify = &p })
	return res
}

// CancelOrder removes a resting order by id. Cancelling either leg of
// an OCO pair removes both.
func (b *OrderBook) CancelOrder(orderID string) (*domain.CancelResult, error) {
	if order, ok := b.orders[orderID]; ok {
		if _, err := b.sideOf(order.Side).Remove(order); err != nil {
			return nil, err
		}
		delete(b.orders, orderID)
		cr := &domain.CancelResult{Order: order}
		if order.HasOCOLink() {
			if sibling, err := b.stopBook.Remove(order.Side, orderID, order.OCOStopPrice); err == nil && sibling != nil {
				delete(b.stopOrders, orderID)
				cr.StopOrder = sibling
			}
		}
		cr.Log = b.appendLog(domain.OpCancel, func(e *domain.JournalEntry) {
			e.Cancel = &domain.CancelOrderParams{OrderID: orderID}
		})
		return cr, nil
	}
	if stopOrder, ok := b.stopOrders[orderID]; ok {
		if _, err := b.stopBook.Remove(stopOrder.Side, orderID, stopOrder.StopPrice); err != nil {
			return nil, err
		}
		delete(b.stopOrders, orderID)
		cr := &domain.CancelResult{StopOrder: stopOrder}
		cr.Log = b.appendLog(domain.OpCancel, func(e *domain.JournalEntry) {
			e.Cancel = &domain.CancelOrderParams{OrderID: orderID}
		})
		return cr, nil
	}
	return nil, domain.ErrOrderNotFound
}

// Order returns a resting order (live or stop) by id, nil if unknown.
func (b *OrderBook) Order(orderID string) *domain.Order {
	if o, ok := b.orders[orderID]; ok {
		return o
	}
	return b.stopOrders[orderID]
}

// MarketPrice is the price of the last trade.
func (b *OrderBook) MarketPrice() decimal.Decimal {
	return b.marketPrice
}

func (b *OrderBook) LastOp() int64 {
	return b.lastOp
}

// Depth returns the aggregated ladder, best price first on both sides.
func (b *OrderBook) Depth() domain.Depth {
	return domain.Depth{
		Asks: sideDepth(b.asks),
		Bids: sideDepth(b.bids),
	}
}

// CalculateMarketPrice computes the notional cost of sweeping the given
// quantity from the book. ErrInsufficientQuantity is returned, together
// with the cost of the available part, when the book is too thin.
func (b *OrderBook) CalculateMarketPrice(side domain.Side, size decimal.Decimal) (decimal.Decimal, error) {
	price := decimal.Zero
	qty := size

	var level *OrderQueue
	var next func(decimal.Decimal) *OrderQueue
	if side == domain.Buy {
		level = b.asks.MinPriceQueue()
		next = b.asks.GreaterThan
	} else {
		level = b.bids.MaxPriceQueue()
		next = b.bids.LowerThan
	}
	for qty.Sign() > 0 && level != nil {
		if qty.Cmp(level.Volume()) <= 0 {
			price = price.Add(qty.Mul(level.Price()))
			qty = decimal.Zero
		} else {
			price = price.Add(level.Volume().Mul(level.Price()))
			qty = qty.Sub(level.Volume())
			level = next(level.Price())
		}
	}
	if qty.Sign() > 0 {
		return price, domain.ErrInsufficientQuantity
	}
	return price, nil
}

func (b *OrderBook) String() string {
	return b.asks.String() + "\n------------------------------------" + b.bids.String()
}

// internal matching

func (b *OrderBook) market(side domain.Side, size decimal.Decimal, takerID string, res *domain.ProcessResult) {
	priceBefore := b.marketPrice
	opposite := b.sideOf(oppositeOf(side))
	qty := size
	for qty.Sign() > 0 {
		q := opposite.BestQueue()
		if q == nil {
			break
		}
		qty = b.fillQueue(q, side, takerID, qty, res)
	}
	res.QuantityLeft = qty
	if qty.IsZero() {
		res.Done = append(res.Done, &domain.Order{
			ID:       takerID,
			Type:     domain.Market,
			Side:     side,
			Size:     decimal.Zero,
			OrigSize: size,
			TakerQty: size,
			Time:     b.now(),
		})
	}
	b.executeConditionalOrders(priceBefore, res)
}

func (b *OrderBook) limit(p domain.LimitOrderParams, ocoStopPrice decimal.Decimal, res *domain.ProcessResult) {
	priceBefore := b.marketPrice
	opposite := b.sideOf(oppositeOf(p.Side))

	if p.PostOnly {
		if best := opposite.BestQueue(); best != nil && crosses(p.Side, p.Price, best.Price()) {
			res.Err = domain.ErrLimitOrderPostOnly
			return
		}
	}
	if p.TimeInForce == domain.FOK && !b.canFill(p.Side, p.Size, p.Price) {
		res.Err = domain.ErrLimitFOKNotFillable
		return
	}

	qty := p.Size
	for qty.Sign() > 0 {
		q := opposite.BestQueue()
		if q == nil || !crosses(p.Side, p.Price, q.Price()) {
			break
		}
		qty = b.fillQueue(q, p.Side, p.ID, qty, res)
	}
	processed := p.Size.Sub(qty)
	res.QuantityLeft = qty

	switch {
	case qty.IsZero():
		taker, err := domain.NewOrder(domain.OrderParams{
			Type:         domain.Limit,
			ID:           p.ID,
			Side:         p.Side,
			Size:         decimal.Zero,
			OrigSize:     p.Size,
			Price:        p.Price,
			TimeInForce:  p.TimeInForce,
			PostOnly:     p.PostOnly,
			TakerQty:     processed,
			OCOStopPrice: ocoStopPrice,
			Time:         b.now(),
		})
		if err != nil {
			res.Err = err
			return
		}
		res.Done = append(res.Done, taker)
	case p.TimeInForce == domain.IOC:
		// remainder discarded
	default:
		resting, err := domain.NewOrder(domain.OrderParams{
			Type:         domain.Limit,
			ID:           p.ID,
			Side:         p.Side,
			Size:         qty,
			OrigSize:     p.Size,
			Price:        p.Price,
			TimeInForce:  p.TimeInForce,
			PostOnly:     p.PostOnly,
			TakerQty:     processed,
			OCOStopPrice: ocoStopPrice,
			Time:         b.now(),
		})
		if err != nil {
			res.Err = err
			return
		}
		b.sideOf(p.Side).Append(resting)
		b.orders[p.ID] = resting
		if processed.Sign() > 0 {
			res.Partial = resting
			res.PartialQuantityProcessed = processed
		}
	}
	b.executeConditionalOrders(priceBefore, res)
}

// fillQueue consumes FIFO heads of one opposite-side queue until the
// taker quantity runs out or the queue empties. Returns the remaining
// taker quantity.
func (b *OrderBook) fillQueue(q *OrderQueue, takerSide domain.Side, takerID string, qty decimal.Decimal, res *domain.ProcessResult) decimal.Decimal {
	for qty.Sign() > 0 && q.Len() > 0 {
		maker := q.Head()
		var traded decimal.Decimal
		if qty.Cmp(maker.Size) < 0 {
			traded = qty
			newSize := maker.Size.Sub(qty)
			if _, err := b.sideOf(maker.Side).UpdateOrderSize(maker, domain.OrderUpdate{Size: &newSize}); err != nil {
				res.Err = err
				return qty
			}
			maker.MakerQty = maker.MakerQty.Add(traded)
			res.Partial = maker
			res.PartialQuantityProcessed = traded
			qty = decimal.Zero
		} else {
			traded = maker.Size
			qty = qty.Sub(traded)
			b.removeRestingOrder(maker)
			maker.MakerQty = maker.MakerQty.Add(traded)
			res.Done = append(res.Done, maker)
		}
		b.marketPrice = q.Price()
		res.Trades = append(res.Trades, domain.Trade{
			ID:           uuid.NewString(),
			TakerOrderID: takerID,
			MakerOrderID: maker.ID,
			TakerSide:    takerSide,
			Price:        q.Price(),
			Quantity:     traded,
			Ts:           b.now(),
		})
	}
	return qty
}

// removeRestingOrder retires a fully filled maker, cancelling its OCO
// stop sibling if it has one.
func (b *OrderBook) removeRestingOrder(order *domain.Order) {
	b.sideOf(order.Side).Remove(order)
	delete(b.orders, order.ID)
	if order.HasOCOLink() {
		if _, err := b.stopBook.Remove(order.Side, order.ID, order.OCOStopPrice); err == nil {
			delete(b.stopOrders, order.ID)
		}
	}
}

// executeConditionalOrders sweeps the stop book over the price move and
// resubmits every triggered order to the live matching path. The loop
// repeats while resubmissions keep moving the market price.
func (b *OrderBook) executeConditionalOrders(priceBefore decimal.Decimal, res *domain.ProcessResult) {
	if !b.conditional || b.sweeping {
		return
	}
	b.sweeping = true
	defer func() { b.sweeping = false }()

	before := priceBefore
	for before.Cmp(b.marketPrice) != 0 {
		after := b.marketPrice
		side := domain.Sell
		if after.Cmp(before) > 0 {
			side = domain.Buy
		}
		var pending []*domain.Order
		for _, q := range b.stopBook.GetConditionalOrders(side, before, after) {
			for o := q.RemoveFromHead(); o != nil; o = q.RemoveFromHead() {
				pending = append(pending, o)
			}
			b.stopBook.RemovePriceLevel(side, q.Price())
		}
		before = after

		for _, o := range pending {
			delete(b.stopOrders, o.ID)
			if o.Type == domain.StopLimit && o.IsOCO {
				if sibling, ok := b.orders[o.ID]; ok {
					b.sideOf(sibling.Side).Remove(sibling)
					delete(b.orders, o.ID)
				}
			}
			res.Activated = append(res.Activated, o)

			sub := &domain.ProcessResult{}
			switch o.Type {
			case domain.StopMarket:
				b.market(o.Side, o.Size, o.ID, sub)
			case domain.StopLimit:
				b.limit(domain.LimitOrderParams{
					ID:          o.ID,
					Side:        o.Side,
					Size:        o.Size,
					Price:       o.Price,
					TimeInForce: o.TimeInForce,
				}, decimal.Zero, sub)
			}
			res.Done = append(res.Done, sub.Done...)
			res.Trades = append(res.Trades, sub.Trades...)
			if res.Partial == nil && sub.Partial != nil {
				res.Partial = sub.Partial
				res.PartialQuantityProcessed = sub.PartialQuantityProcessed
			}
		}
	}
}

// canFill reports whether the whole size is immediately fillable at
// prices crossing the limit price. Used for the FOK precheck.
func (b *OrderBook) canFill(side domain.Side, size, price decimal.Decimal) bool {
	opposite := b.sideOf(oppositeOf(side))
	cum := decimal.Zero
	for q := opposite.BestQueue(); q != nil; q = nextBest(opposite, q) {
		if !crosses(side, price, q.Price()) {
			break
		}
		cum = cum.Add(q.Volume())
		if cum.Cmp(size) >= 0 {
			return true
		}
	}
	return false
}

func (b *OrderBook) validateLimit(p *domain.LimitOrderParams) error {
	if p.TimeInForce == "" {
		p.TimeInForce = domain.GTC
	}
	switch {
	case !validSide(p.Side):
		return domain.ErrInvalidSide
	case p.Size.Sign() <= 0:
		return domain.ErrInvalidQuantity
	case p.Price.Sign() <= 0:
		return domain.ErrInvalidPrice
	case !validTimeInForce(p.TimeInForce):
		return domain.ErrInvalidTimeInForce
	case b.orderExists(p.ID):
		return domain.ErrOrderExists
	}
	return nil
}

func (b *OrderBook) validOCO(p domain.OCOOrderParams) bool {
	if p.Side == domain.Buy {
		return p.Price.Cmp(b.marketPrice) < 0 && b.marketPrice.Cmp(p.StopPrice) < 0
	}
	return p.Price.Cmp(b.marketPrice) > 0 && b.marketPrice.Cmp(p.StopPrice) > 0
}

func (b *OrderBook) orderExists(id string) bool {
	if _, ok := b.orders[id]; ok {
		return true
	}
	_, ok := b.stopOrders[id]
	return ok
}

func (b *OrderBook) sideOf(side domain.Side) *OrderSide {
	if side == domain.Buy {
		return b.bids
	}
	return b.asks
}

// appendLog advances the operation counter and, when journaling is on,
// builds the entry for the operation just applied. Only successful
// operations reach here.
func (b *OrderBook) appendLog(op domain.Operation, fill func(*domain.JournalEntry)) *domain.JournalEntry {
	b.lastOp++
	if !b.journaling {
		return nil
	}
	e := &domain.JournalEntry{OpID: b.lastOp, Ts: b.now(), Op: op}
	fill(e)
	return e
}

func oppositeOf(side domain.Side) domain.Side {
	if side == domain.Buy {
		return domain.Sell
	}
	return domain.Buy
}

// crosses reports whether a taker at takerPrice is marketable against a
// maker level at makerPrice.
func crosses(takerSide domain.Side, takerPrice, makerPrice decimal.Decimal) bool {
	if takerSide == domain.Buy {
		return takerPrice.Cmp(makerPrice) >= 0
	}
	return takerPrice.Cmp(makerPrice) <= 0
}

func nextBest(s *OrderSide, q *OrderQueue) *OrderQueue {
	if s.side == domain.Buy {
		return s.LowerThan(q.Price())
	}
	return s.GreaterThan(q.Price())
}

func validSide(s domain.Side) bool {
	return s == domain.Buy || s == domain.Sell
}

func validTimeInForce(tif domain.TimeInForce) bool {
	return tif == domain.GTC || tif == domain.IOC || tif == domain.FOK
}

func sideDepth(s *OrderSide) []domain.DepthLevel {
	levels := []domain.DepthLevel{}
	s.Levels(func(q *OrderQueue) bool {
		levels = append(levels, domain.DepthLevel{Price: q.Price(), Volume: q.Volume()})
		return true
	})
	return levels
}
