package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketpulse/internal/application/views"
)

// handleNews 套用分類過濾與搜尋後回傳新聞，維持來源順序不重排。
func (s *Server) handleNews(c *gin.Context) {
	snap, ok := s.snapshot(c)
	if !ok {
		return
	}

	category := c.DefaultQuery("category", "all")
	items := views.News(snap.News, category, c.Query("q"))

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"items":       items,
		"total":       len(items),
		"categories":  views.NewsCategories(snap.News),
		"lastUpdated": snap.FetchedAt,
	})
}
