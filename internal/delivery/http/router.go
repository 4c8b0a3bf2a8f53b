package http

import (
	"net/http"

	"escrow-deal-service/internal/delivery/http/handlers"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the ops surface: health, metrics and the
// token-guarded admin API.
func NewRouter(adminHandler *handlers.AdminHandler, apiToken string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1", adminAuth(apiToken))
	{
		api.GET("/stats", adminHandler.GetStats)
		api.GET("/deals", adminHandler.ListDeals)
		api.GET("/logs", adminHandler.GetLogs)
		api.POST("/maintenance", adminHandler.SetMaintenance)
	}

	return router
}

func adminAuth(apiToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiToken == "" || c.GetHeader("X-Admin-Token") != apiToken {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
