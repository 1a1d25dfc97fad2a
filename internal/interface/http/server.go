package httpapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"marketpulse/internal/application/syncstore"
	"marketpulse/internal/infrastructure/config"
)

const (
	errCodeBadRequest       = "BAD_REQUEST"
	errCodeSnapshotNotReady = "SNAPSHOT_NOT_READY"
	errCodeFeedUnavailable  = "FEED_UNAVAILABLE"
	errCodeStoreClosed      = "STORE_CLOSED"
)

// Server 封裝唯讀 API 的路由與依賴，所有回應都出自 Store 目前的
// Snapshot 加上呼叫端給的檢視參數。
type Server struct {
	engine *gin.Engine
	store  *syncstore.Store
}

// NewServer 建立 API 伺服器。
func NewServer(cfg config.Config, store *syncstore.Store) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(ginLogger(), gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	s := &Server{engine: engine, store: store}
	s.registerRoutes()
	return s
}

// Handler 回傳路由處理器，供 HTTP server 掛載。
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	api.GET("/ping", s.handlePing)
	api.GET("/health", s.handleHealth)
	api.GET("/status", s.handleStatus)
	api.POST("/refresh", s.handleRefresh)
	api.GET("/dashboard", s.handleDashboard)
	api.GET("/assets", s.handleAssets)
	api.GET("/news", s.handleNews)
	api.GET("/alerts", s.handleAlerts)
	api.GET("/portfolio", s.handlePortfolio)
	api.GET("/portfolio/history", s.handlePortfolioHistory)
	api.GET("/portfolio/allocation", s.handlePortfolioAllocation)
}

// snapshot 取出目前的 Snapshot；第一次成功同步前一律回 503。
func (s *Server) snapshot(c *gin.Context) (*syncstore.Snapshot, bool) {
	snap, ok := s.store.Snapshot()
	if !ok {
		st := s.store.Status()
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success":    false,
			"error":      "no snapshot installed yet",
			"error_code": errCodeSnapshotNotReady,
			"loading":    st.Loading,
		})
		return nil, false
	}
	return snap, true
}

func writeError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, gin.H{
		"success":    false,
		"error":      msg,
		"error_code": code,
	})
}
