package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleDashboard(c *gin.Context) {
	snap, ok := s.snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"dashboard":   snap.Dashboard,
		"lastUpdated": snap.FetchedAt,
	})
}
