package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetWhaleActivity godoc
// @Summary      Recent whale activity
// @Description  Large position events above the minimum size, most recent first
// @Tags         whales
// @Produce      json
// @Param        coins     query  string  false  "Comma-separated coin list"
// @Param        min_size  query  number  false  "Minimum position size in USD"  default(1000000)
// @Success      200  {object}  map[string]interface{}
// @Router       /api/whales/activity [get]
func (h *Handler) GetWhaleActivity(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-whale-activity")
	defer span.End()

	minSize := 0.0
	if v := c.Query("min_size"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n > 0 {
			minSize = n
		}
	}

	activity := h.whales.RecentActivity(ctx, h.requestedCoins(c), minSize)
	c.JSON(http.StatusOK, gin.H{"whale_activity": activity})
}

// GetWhalePositions godoc
// @Summary      Whale position summary
// @Tags         whales
// @Produce      json
// @Param        coins  query  string  false  "Comma-separated coin list"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/whales/positions [get]
func (h *Handler) GetWhalePositions(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-whale-positions")
	defer span.End()

	c.JSON(http.StatusOK, gin.H{"positions": h.whales.PositionsSummary(ctx, h.requestedCoins(c))})
}

// GetWhaleFlows godoc
// @Summary      Whale exchange flows
// @Tags         whales
// @Produce      json
// @Param        coins      query  string  false  "Comma-separated coin list"
// @Param        timeframe  query  string  false  "Flow window"  default(24h)
// @Success      200  {object}  map[string]interface{}
// @Router       /api/whales/flows [get]
func (h *Handler) GetWhaleFlows(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-whale-flows")
	defer span.End()

	flows := h.whales.FlowData(ctx, h.requestedCoins(c), c.Query("timeframe"))
	c.JSON(http.StatusOK, gin.H{"flows": flows})
}

// GetWhalePatterns godoc
// @Summary      Detected whale patterns
// @Tags         whales
// @Produce      json
// @Param        coins  query  string  false  "Comma-separated coin list"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/whales/patterns [get]
func (h *Handler) GetWhalePatterns(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-whale-patterns")
	defer span.End()

	c.JSON(http.StatusOK, gin.H{"patterns": h.whales.DetectPatterns(ctx, h.requestedCoins(c))})
}

// GetWhaleLeaderboard godoc
// @Summary      Whale leaderboard
// @Description  Top tracked wallets ranked by 24h PnL
// @Tags         whales
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/whales/leaderboard [get]
func (h *Handler) GetWhaleLeaderboard(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-whale-leaderboard")
	defer span.End()

	c.JSON(http.StatusOK, gin.H{"leaderboard": h.whales.Leaderboard(ctx)})
}

// GetWhaleAddress godoc
// @Summary      Track a whale address
// @Tags         whales
// @Produce      json
// @Param        address  path  string  true  "Wallet address"
// @Success      200  {object}  domain.WhaleStats
// @Failure      400  {object}  map[string]string
// @Router       /api/whales/address/{address} [get]
func (h *Handler) GetWhaleAddress(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-whale-address")
	defer span.End()

	address := c.Param("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "address is required"})
		return
	}
	c.JSON(http.StatusOK, h.whales.TrackAddress(ctx, address))
}
