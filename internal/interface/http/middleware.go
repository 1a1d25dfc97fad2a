package httpapi

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

func ginLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		log.Printf("[GIN] %v | %3d | %13v | %-7s %s",
			start.Format("2006/01/02 - 15:04:05"),
			status,
			latency,
			c.Request.Method,
			path,
		)
	}
}
