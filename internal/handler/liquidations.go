package handler

import (
	"net/http"
	"strconv"
	"strings"

	"crypto-market-hub/internal/domain"

	"github.com/gin-gonic/gin"
)

// GetLiquidations godoc
// @Summary      Liquidation totals per coin
// @Tags         liquidations
// @Produce      json
// @Param        coins  query  string  false  "Comma-separated coin list"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/liquidations [get]
func (h *Handler) GetLiquidations(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-liquidations")
	defer span.End()

	c.JSON(http.StatusOK, gin.H{"liquidations": h.liquidations.Data(ctx, h.requestedCoins(c))})
}

// GetLiquidationHeatmap godoc
// @Summary      Liquidation heatmap
// @Description  Clustered liquidation levels around current prices
// @Tags         liquidations
// @Produce      json
// @Param        coins  query  string  false  "Comma-separated coin list"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/liquidations/heatmap [get]
func (h *Handler) GetLiquidationHeatmap(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-liquidation-heatmap")
	defer span.End()

	c.JSON(http.StatusOK, gin.H{"heatmap": h.liquidations.HeatmapData(ctx, h.requestedCoins(c))})
}

// GetRecentLiquidations godoc
// @Summary      Recent liquidation events
// @Tags         liquidations
// @Produce      json
// @Param        coins  query  string  false  "Comma-separated coin list"
// @Param        limit  query  int     false  "Maximum events returned"  default(20)
// @Success      200  {object}  map[string]interface{}
// @Router       /api/liquidations/recent [get]
func (h *Handler) GetRecentLiquidations(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-recent-liquidations")
	defer span.End()

	limit := 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	events := h.liquidations.RecentEvents(ctx, h.requestedCoins(c), limit)
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// GetLiquidationStats godoc
// @Summary      Liquidation overview statistics
// @Tags         liquidations
// @Produce      json
// @Param        coins  query  string  false  "Comma-separated coin list"
// @Success      200  {object}  domain.LiquidationStats
// @Router       /api/liquidations/stats [get]
func (h *Handler) GetLiquidationStats(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-liquidation-stats")
	defer span.End()

	c.JSON(http.StatusOK, h.liquidations.Stats(ctx, h.requestedCoins(c)))
}

// GetLiquidationZones godoc
// @Summary      Predicted liquidation zones
// @Description  Estimated long and short liquidation clusters for one coin
// @Tags         liquidations
// @Produce      json
// @Param        coin  path  string  true  "Coin symbol (e.g. BTC)"
// @Success      200  {object}  domain.LiquidationZones
// @Failure      400  {object}  map[string]string
// @Router       /api/liquidations/zones/{coin} [get]
func (h *Handler) GetLiquidationZones(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-liquidation-zones")
	defer span.End()

	coin := strings.ToUpper(c.Param("coin"))
	if !domain.IsSupported(coin) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported coin: " + coin})
		return
	}
	c.JSON(http.StatusOK, h.liquidations.PredictZones(ctx, coin))
}
