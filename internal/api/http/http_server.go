package http

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/olyamironova/matching-core/internal/api/dto"
	"github.com/olyamironova/matching-core/internal/domain"
	"github.com/olyamironova/matching-core/internal/engine"
	"github.com/olyamironova/matching-core/internal/middleware"
)

type HTTPServer struct {
	Svc         *engine.Service
	submittedID sync.Map // for deduplication by OrderID
}

func NewHTTPServer(svc *engine.Service) *HTTPServer {
	return &HTTPServer{Svc: svc}
}

func (s *HTTPServer) Run(addr string) error {
	r := gin.Default()

	// Middleware rate-limiting
	rl := middleware.NewRateLimiter(time.Millisecond * 100)
	r.Use(rl.Middleware())

	s.registerRoutes(r)
	return r.Run(addr)
}

func (s *HTTPServer) registerRoutes(r *gin.Engine) {
	r.POST("/orders/market", s.submitMarket)
	r.POST("/orders/limit", s.submitLimit)
	r.POST("/orders/stop-market", s.submitStopMarket)
	r.POST("/orders/stop-limit", s.submitStopLimit)
	r.POST("/orders/oco", s.submitOCO)
	r.POST("/orders/modify", s.modifyOrder)
	r.POST("/orders/cancel", s.cancelOrder)
	r.GET("/orders/:id", s.getOrder)
	r.GET("/orderbook/depth", s.getDepth)
	r.GET("/orderbook/price", s.getMarketPrice)
	r.GET("/orderbook/price/estimate", s.estimatePrice)
	r.POST("/orderbook/snapshot", s.snapshotOrderbook)
}

func (s *HTTPServer) submitMarket(c *gin.Context) {
	var req dto.MarketOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res := s.Svc.SubmitMarket(c.Request.Context(), domain.MarketOrderParams{
		Side: domain.Side(req.Side),
		Size: req.Size,
	})
	writeResult(c, res)
}

func (s *HTTPServer) submitLimit(c *gin.Context) {
	var req dto.LimitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if s.duplicate(c, req.OrderID) {
		return
	}
	res := s.Svc.SubmitLimit(c.Request.Context(), domain.LimitOrderParams{
		ID:          req.OrderID,
		Side:        domain.Side(req.Side),
		Size:        req.Size,
		Price:       req.Price,
		TimeInForce: domain.TimeInForce(req.TimeInForce),
		PostOnly:    req.PostOnly,
	})
	writeResult(c, res)
}

func (s *HTTPServer) submitStopMarket(c *gin.Context) {
	var req dto.StopMarketOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if s.duplicate(c, req.OrderID) {
		return
	}
	res := s.Svc.SubmitStopMarket(c.Request.Context(), domain.StopMarketOrderParams{
		ID:        req.OrderID,
		Side:      domain.Side(req.Side),
		Size:      req.Size,
		StopPrice: req.StopPrice,
	})
	writeResult(c, res)
}

func (s *HTTPServer) submitStopLimit(c *gin.Context) {
	var req dto.StopLimitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if s.duplicate(c, req.OrderID) {
		return
	}
	res := s.Svc.SubmitStopLimit(c.Request.Context(), domain.StopLimitOrderParams{
		ID:          req.OrderID,
		Side:        domain.Side(req.Side),
		Size:        req.Size,
		Price:       req.Price,
		StopPrice:   req.StopPrice,
		TimeInForce: domain.TimeInForce(req.TimeInForce),
	})
	writeResult(c, res)
}

func (s *HTTPServer) submitOCO(c *gin.Context) {
	var req dto.OCOOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if s.duplicate(c, req.OrderID) {
		return
	}
	res := s.Svc.SubmitOCO(c.Request.Context(), domain.OCOOrderParams{
		ID:                   req.OrderID,
		Side:                 domain.Side(req.Side),
		Size:                 req.Size,
		Price:                req.Price,
		StopPrice:            req.StopPrice,
		StopLimitPrice:       req.StopLimitPrice,
		TimeInForce:          domain.TimeInForce(req.TimeInForce),
		StopLimitTimeInForce: domain.TimeInForce(req.StopLimitTimeInForce),
	})
	writeResult(c, res)
}

func (s *HTTPServer) modifyOrder(c *gin.Context) {
	var req dto.ModifyOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res := s.Svc.ModifyOrder(c.Request.Context(), domain.ModifyOrderParams{
		OrderID: req.OrderID,
		Update: domain.OrderUpdate{
			Price: req.NewPrice,
			Size:  req.NewSize,
		},
	})
	writeResult(c, res)
}

func (s *HTTPServer) cancelOrder(c *gin.Context) {
	var req dto.CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cr, err := s.Svc.CancelOrder(c.Request.Context(), req.OrderID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	resp := dto.CancelOrderResponse{}
	if cr.Order != nil {
		o := convertOrder(cr.Order)
		resp.Order = &o
	}
	if cr.StopOrder != nil {
		o := convertOrder(cr.StopOrder)
		resp.StopOrder = &o
	}
	c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) getOrder(c *gin.Context) {
	id := c.Param("id")
	o := s.Svc.Order(id)
	if o == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrOrderNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.GetOrderResponse{Order: convertOrder(o)})
}

func (s *HTTPServer) getDepth(c *gin.Context) {
	d, err := s.Svc.Depth(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.DepthResponse{
		Asks: convertLevels(d.Asks),
		Bids: convertLevels(d.Bids),
	})
}

func (s *HTTPServer) getMarketPrice(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MarketPriceResponse{Price: s.Svc.MarketPrice()})
}

func (s *HTTPServer) estimatePrice(c *gin.Context) {
	side := domain.Side(c.Query("side"))
	size, err := decimalQuery(c, "size")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	price, err := s.Svc.CalculateMarketPrice(side, size)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error(), "price": price})
		return
	}
	c.JSON(http.StatusOK, dto.CalculatePriceResponse{Side: dto.Side(side), Size: size, Price: price})
}

func (s *HTTPServer) snapshotOrderbook(c *gin.Context) {
	snap, err := s.Svc.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.SnapshotResponse{LastOp: snap.LastOp, Ts: snap.Ts})
}

// duplicate rejects a resubmitted client order id. Returns true when the
// request was already answered.
func (s *HTTPServer) duplicate(c *gin.Context, orderID string) bool {
	if orderID == "" {
		return false
	}
	if _, exists := s.submittedID.LoadOrStore(orderID, struct{}{}); exists {
		c.JSON(http.StatusOK, gin.H{"message": "duplicate order", "order_id": orderID})
		return true
	}
	return false
}

func writeResult(c *gin.Context, res *domain.ProcessResult) {
	if res.Err != nil {
		c.JSON(statusFor(res.Err), gin.H{"error": res.Err.Error()})
		return
	}
	resp := dto.ProcessResultResponse{
		Done:                     convertOrders(res.Done),
		Activated:                convertOrders(res.Activated),
		PartialQuantityProcessed: res.PartialQuantityProcessed,
		QuantityLeft:             res.QuantityLeft,
		Trades:                   convertTrades(res.Trades),
	}
	if res.Partial != nil {
		o := convertOrder(res.Partial)
		resp.Partial = &o
	}
	c.JSON(http.StatusOK, resp)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrOrderExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrLimitFOKNotFillable),
		errors.Is(err, domain.ErrLimitOrderPostOnly),
		errors.Is(err, domain.ErrInsufficientQuantity):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidOrderType),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidSide),
		errors.Is(err, domain.ErrInvalidTimeInForce),
		errors.Is(err, domain.ErrInvalidConditionalOrder):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decimalQuery(c *gin.Context, name string) (decimal.Decimal, error) {
	raw := c.Query(name)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("query parameter %q required", name)
	}
	return decimal.NewFromString(raw)
}

func convertOrder(o *domain.Order) dto.Order {
	return dto.Order{
		ID:          o.ID,
		Type:        string(o.Type),
		Side:        dto.Side(o.Side),
		Size:        o.Size,
		OrigSize:    o.OrigSize,
		Price:       o.Price,
		StopPrice:   o.StopPrice,
		TimeInForce: dto.TimeInForce(o.TimeInForce),
		MakerQty:    o.MakerQty,
		TakerQty:    o.TakerQty,
		Time:        o.Time,
	}
}

func convertOrders(orders []*domain.Order) []dto.Order {
	res := make([]dto.Order, len(orders))
	for i, o := range orders {
		res[i] = convertOrder(o)
	}
	return res
}

func convertLevels(levels []domain.DepthLevel) []dto.DepthLevel {
	res := make([]dto.DepthLevel, len(levels))
	for i, l := range levels {
		res[i] = dto.DepthLevel{Price: l.Price, Volume: l.Volume}
	}
	return res
}

func convertTrades(trades []domain.Trade) []dto.Trade {
	res := make([]dto.Trade, len(trades))
	for i, t := range trades {
		res[i] = dto.Trade{
			ID:           t.ID,
			Instrument:   t.Instrument,
			TakerOrderID: t.TakerOrderID,
			MakerOrderID: t.MakerOrderID,
			TakerSide:    dto.Side(t.TakerSide),
			Price:        t.Price,
			Quantity:     t.Quantity,
			Timestamp:    t.Ts,
		}
	}
	return res
}
