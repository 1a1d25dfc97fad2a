package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"marketpulse/internal/application/syncstore"
)

func (s *Server) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "pong",
		"timestamp": time.Now().Unix(),
		"status":    "alive",
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	st := s.store.Status()
	health := "ok"
	if st.Loading {
		health = "warming_up"
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"health":  health,
		"time":    time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleStatus(c *gin.Context) {
	st := s.store.Status()
	resp := gin.H{
		"success": true,
		"loading": st.Loading,
	}
	if st.Error != "" {
		resp["error"] = st.Error
	}
	if !st.FetchedAt.IsZero() {
		resp["lastUpdated"] = st.FetchedAt
	}
	c.JSON(http.StatusOK, resp)
}

// handleRefresh 觸發一次手動同步並回報該週期的結果。
func (s *Server) handleRefresh(c *gin.Context) {
	err := s.store.Refresh(c.Request.Context())
	switch {
	case err == nil:
		st := s.store.Status()
		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"lastUpdated": st.FetchedAt,
		})
	case errors.Is(err, syncstore.ErrSuperseded):
		// 被更新的請求搶先完成，資料反而更新，不視為失敗。
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"superseded": true,
		})
	case errors.Is(err, syncstore.ErrClosed):
		writeError(c, http.StatusServiceUnavailable, errCodeStoreClosed, "sync store is closed")
	default:
		writeError(c, http.StatusBadGateway, errCodeFeedUnavailable, s.store.Status().Error)
	}
}
