package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketpulse/internal/application/views"
)

// handleAssets 套用 class 過濾、搜尋與排序後回傳資產清單。
// 過濾徽章的計數一律取自未過濾的全集。
func (s *Server) handleAssets(c *gin.Context) {
	class := c.DefaultQuery("class", "all")
	switch class {
	case "all", "stock", "crypto":
	default:
		writeError(c, http.StatusBadRequest, errCodeBadRequest, "class must be one of all, stock, crypto")
		return
	}

	dir := c.DefaultQuery("dir", "asc")
	if dir != "asc" && dir != "desc" {
		writeError(c, http.StatusBadRequest, errCodeBadRequest, "dir must be asc or desc")
		return
	}

	snap, ok := s.snapshot(c)
	if !ok {
		return
	}

	all := snap.AllAssets()
	state := views.SortState{
		Key:  c.DefaultQuery("sort", views.SortBySymbol),
		Desc: dir == "desc",
	}
	items := views.Assets(all, class, c.Query("q"), state)

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"items":       items,
		"total":       len(items),
		"counts":      views.CountAssets(all),
		"sort":        state,
		"lastUpdated": snap.FetchedAt,
	})
}
