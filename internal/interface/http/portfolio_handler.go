package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketpulse/internal/application/analytics"
)

func (s *Server) handlePortfolio(c *gin.Context) {
	snap, ok := s.snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"portfolio":   snap.Portfolio,
		"lastUpdated": snap.FetchedAt,
	})
}

// handlePortfolioHistory 以最新 Snapshot 重建投資組合價值時間序列。
func (s *Server) handlePortfolioHistory(c *gin.Context) {
	snap, ok := s.snapshot(c)
	if !ok {
		return
	}
	points := analytics.BuildValueHistory(snap.Portfolio, snap.AllAssets())
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"points":      points,
		"total":       len(points),
		"lastUpdated": snap.FetchedAt,
	})
}

func (s *Server) handlePortfolioAllocation(c *gin.Context) {
	snap, ok := s.snapshot(c)
	if !ok {
		return
	}
	items := analytics.BuildAllocation(snap.Portfolio)
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"items":       items,
		"lastUpdated": snap.FetchedAt,
	})
}
