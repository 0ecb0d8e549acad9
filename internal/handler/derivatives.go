package handler

import (
	"net/http"
	"strconv"
	"strings"

	"crypto-market-hub/internal/derivatives"
	"crypto-market-hub/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// Health godoc
// @Summary      Health check
// @Description  Returns the health status of the service
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// GetCoins godoc
// @Summary      List supported coins
// @Tags         derivatives
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/coins [get]
func (h *Handler) GetCoins(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"coins": domain.SupportedCoins})
}

// GetFundingRates godoc
// @Summary      Current funding rates
// @Description  Funding rate percentage per coin, with venue fallback
// @Tags         derivatives
// @Produce      json
// @Param        coins  query  string  false  "Comma-separated coin list (e.g. BTC,ETH)"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/funding [get]
func (h *Handler) GetFundingRates(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-funding-rates")
	defer span.End()

	coins := h.requestedCoins(c)
	span.SetAttributes(attribute.String("coins", strings.Join(coins, ",")))

	rates, err := h.derivatives.FundingRates(ctx, coins)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"funding_rates": map[string]float64{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"funding_rates": rates})
}

// GetOpenInterest godoc
// @Summary      Open interest
// @Description  USD open interest per coin, with venue fallback
// @Tags         derivatives
// @Produce      json
// @Param        coins  query  string  false  "Comma-separated coin list"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/open-interest [get]
func (h *Handler) GetOpenInterest(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-open-interest")
	defer span.End()

	oi, err := h.derivatives.OpenInterest(ctx, h.requestedCoins(c))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"open_interest": map[string]float64{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"open_interest": oi})
}

// GetPerpetuals godoc
// @Summary      Perpetual futures bundle
// @Description  Funding, open interest, volume, mark prices, and next funding times
// @Tags         derivatives
// @Produce      json
// @Param        coins  query  string  false  "Comma-separated coin list"
// @Success      200  {object}  domain.PerpetualData
// @Router       /api/perpetuals [get]
func (h *Handler) GetPerpetuals(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-perpetuals")
	defer span.End()

	data, err := h.derivatives.PerpetualData(ctx, h.requestedCoins(c))
	if err != nil {
		c.JSON(http.StatusOK, domain.NewPerpetualData())
		return
	}
	c.JSON(http.StatusOK, data)
}

// GetBasis godoc
// @Summary      Futures-spot basis
// @Description  Futures premium over spot, percentage per coin
// @Tags         derivatives
// @Produce      json
// @Param        coins  query  string  false  "Comma-separated coin list"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/basis [get]
func (h *Handler) GetBasis(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-basis")
	defer span.End()

	basis, err := h.derivatives.BasisData(ctx, h.requestedCoins(c))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"basis_data": map[string]float64{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"basis_data": basis})
}

// GetSummary godoc
// @Summary      Full market summary
// @Description  All dashboard metrics in one response; failed metrics come back empty
// @Tags         derivatives
// @Produce      json
// @Param        coins  query  string  false  "Comma-separated coin list"
// @Success      200  {object}  domain.MarketSummary
// @Router       /api/summary [get]
func (h *Handler) GetSummary(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-summary")
	defer span.End()

	c.JSON(http.StatusOK, h.derivatives.MarketSummary(ctx, h.requestedCoins(c)))
}

// GetAnomalies godoc
// @Summary      Funding rate anomalies
// @Description  Coins whose absolute funding rate exceeds the threshold
// @Tags         derivatives
// @Produce      json
// @Param        coins      query  string  false  "Comma-separated coin list"
// @Param        threshold  query  number  false  "Absolute funding rate threshold (percent)"  default(0.5)
// @Success      200  {object}  map[string]interface{}
// @Router       /api/anomalies [get]
func (h *Handler) GetAnomalies(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-anomalies")
	defer span.End()

	threshold := derivatives.DefaultAnomalyThreshold
	if v := c.Query("threshold"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n > 0 {
			threshold = n
		}
	}

	rates, err := h.derivatives.FundingRates(ctx, h.requestedCoins(c))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"anomalies": []domain.Anomaly{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"anomalies": derivatives.DetectAnomalies(rates, threshold)})
}

// GetFundingHistory godoc
// @Summary      Funding rate history
// @Tags         derivatives
// @Produce      json
// @Param        coin  path   string  true   "Coin symbol (e.g. BTC)"
// @Param        days  query  int     false  "Lookback in days"  default(7)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/funding-history/{coin} [get]
func (h *Handler) GetFundingHistory(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-funding-history")
	defer span.End()

	coin := strings.ToUpper(c.Param("coin"))
	if !domain.IsSupported(coin) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported coin: " + coin})
		return
	}

	days := 7
	if v := c.Query("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 90 {
			days = n
		}
	}

	history, err := h.derivatives.FundingHistory(ctx, coin, days)
	if err != nil || history == nil {
		history = []domain.FundingPoint{}
	}
	c.JSON(http.StatusOK, gin.H{"coin": coin, "history": history})
}

// GetOrderBook godoc
// @Summary      Spot order book
// @Tags         derivatives
// @Produce      json
// @Param        coin  path  string  true  "Coin symbol (e.g. BTC)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/orderbook/{coin} [get]
func (h *Handler) GetOrderBook(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-order-book")
	defer span.End()

	coin := strings.ToUpper(c.Param("coin"))
	if !domain.IsSupported(coin) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported coin: " + coin})
		return
	}

	book, err := h.derivatives.OrderBook(ctx, coin)
	if err != nil || book == nil {
		c.JSON(http.StatusOK, gin.H{"coin": coin, "bids": []interface{}{}, "asks": []interface{}{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"coin": coin, "bids": book.Bids, "asks": book.Asks})
}

// GetVenueHealth godoc
// @Summary      Venue connectivity
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/venues/health [get]
func (h *Handler) GetVenueHealth(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-venue-health")
	defer span.End()

	c.JSON(http.StatusOK, gin.H{"venues": h.derivatives.HealthCheck(ctx)})
}

// ClearCache godoc
// @Summary      Drop all cached aggregates
// @Tags         derivatives
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/cache/clear [post]
func (h *Handler) ClearCache(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.clear-cache")
	defer span.End()

	if err := h.derivatives.ClearCache(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
