package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// addPingRoutes registers the unauthenticated liveness probe.
func addPingRoutes(rg *gin.RouterGroup) {
	ping := rg.Group("/ping")
	ping.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
