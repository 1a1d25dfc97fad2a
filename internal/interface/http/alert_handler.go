package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketpulse/internal/application/views"
)

// handleAlerts 支援兩種檢視模式：list（時間新到舊）與 grouped
// （固定嚴重度順序分組，空組省略）。計數一律取自未過濾的全集。
func (s *Server) handleAlerts(c *gin.Context) {
	view := c.DefaultQuery("view", "list")
	if view != "list" && view != "grouped" {
		writeError(c, http.StatusBadRequest, errCodeBadRequest, "view must be list or grouped")
		return
	}

	snap, ok := s.snapshot(c)
	if !ok {
		return
	}

	severity := c.DefaultQuery("severity", "all")
	resp := gin.H{
		"success":     true,
		"counts":      views.CountAlerts(snap.Alerts),
		"lastUpdated": snap.FetchedAt,
	}

	if view == "grouped" {
		groups := views.AlertGroups(snap.Alerts, severity)
		total := 0
		for _, g := range groups {
			total += len(g.Alerts)
		}
		resp["groups"] = groups
		resp["total"] = total
	} else {
		items := views.AlertList(snap.Alerts, severity)
		resp["items"] = items
		resp["total"] = len(items)
	}

	c.JSON(http.StatusOK, resp)
}
