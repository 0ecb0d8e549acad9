package handler

import (
	"strings"

	"crypto-market-hub/internal/alert"
	"crypto-market-hub/internal/derivatives"
	"crypto-market-hub/internal/liquidations"
	"crypto-market-hub/internal/news"
	"crypto-market-hub/internal/whales"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type Handler struct {
	tracer       trace.Tracer
	derivatives  *derivatives.Service
	whales       *whales.Tracker
	liquidations *liquidations.Tracker
	news         *news.Provider
	dispatcher   *alert.Dispatcher
	defaultCoins []string
}

func New(
	tracer trace.Tracer,
	derivativesService *derivatives.Service,
	whaleTracker *whales.Tracker,
	liquidationTracker *liquidations.Tracker,
	newsProvider *news.Provider,
	dispatcher *alert.Dispatcher,
	defaultCoins []string,
) *Handler {
	return &Handler{
		tracer:       tracer,
		derivatives:  derivativesService,
		whales:       whaleTracker,
		liquidations: liquidationTracker,
		news:         newsProvider,
		dispatcher:   dispatcher,
		defaultCoins: defaultCoins,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	api := r.Group("/api")
	api.GET("/coins", h.GetCoins)
	api.GET("/funding", h.GetFundingRates)
	api.GET("/open-interest", h.GetOpenInterest)
	api.GET("/perpetuals", h.GetPerpetuals)
	api.GET("/basis", h.GetBasis)
	api.GET("/summary", h.GetSummary)
	api.GET("/anomalies", h.GetAnomalies)
	api.GET("/funding-history/:coin", h.GetFundingHistory)
	api.GET("/orderbook/:coin", h.GetOrderBook)
	api.GET("/venues/health", h.GetVenueHealth)
	api.POST("/cache/clear", h.ClearCache)

	api.GET("/whales/activity", h.GetWhaleActivity)
	api.GET("/whales/positions", h.GetWhalePositions)
	api.GET("/whales/flows", h.GetWhaleFlows)
	api.GET("/whales/patterns", h.GetWhalePatterns)
	api.GET("/whales/leaderboard", h.GetWhaleLeaderboard)
	api.GET("/whales/address/:address", h.GetWhaleAddress)

	api.GET("/liquidations", h.GetLiquidations)
	api.GET("/liquidations/heatmap", h.GetLiquidationHeatmap)
	api.GET("/liquidations/recent", h.GetRecentLiquidations)
	api.GET("/liquidations/stats", h.GetLiquidationStats)
	api.GET("/liquidations/zones/:coin", h.GetLiquidationZones)

	api.GET("/news", h.GetNews)
	api.GET("/alerts/stats", h.GetAlertStats)
}

// requestedCoins parses the comma-separated coins query parameter, falling
// back to the configured default set. Unsupported coins are filtered later
// by the services, not rejected here.
func (h *Handler) requestedCoins(c *gin.Context) []string {
	raw := strings.TrimSpace(c.Query("coins"))
	if raw == "" {
		return h.defaultCoins
	}
	coins := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.ToUpper(strings.TrimSpace(part)); part != "" {
			coins = append(coins, part)
		}
	}
	if len(coins) == 0 {
		return h.defaultCoins
	}
	return coins
}
