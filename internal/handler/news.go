package handler

import (
	"log"
	"net/http"
	"strconv"

	"crypto-market-hub/internal/domain"

	"github.com/gin-gonic/gin"
)

// GetNews godoc
// @Summary      Latest crypto news
// @Description  Recent headlines from CryptoPanic, newest first
// @Tags         news
// @Produce      json
// @Param        limit  query  int  false  "Maximum headlines returned"  default(15)
// @Success      200  {object}  map[string]interface{}
// @Router       /api/news [get]
func (h *Handler) GetNews(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-news")
	defer span.End()

	limit := 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	items, err := h.news.FetchLatest(ctx, limit)
	if err != nil {
		log.Printf("Error fetching news: %v", err)
	}
	if items == nil {
		items = []domain.NewsItem{}
	}
	c.JSON(http.StatusOK, gin.H{"news": items})
}

// GetAlertStats godoc
// @Summary      Alert dispatcher statistics
// @Description  Counts of alerts sent in the last hour, by type
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  alert.Stats
// @Router       /api/alerts/stats [get]
func (h *Handler) GetAlertStats(c *gin.Context) {
	_, span := h.tracer.Start(c.Request.Context(), "handler.get-alert-stats")
	defer span.End()

	c.JSON(http.StatusOK, h.dispatcher.Stats())
}
