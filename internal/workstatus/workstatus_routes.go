package workstatus

import (
	"go-attendo/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes mounts the day progression endpoints. A nil rdb disables
// idempotency keys on POST /status/actions.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client, middlewares ...gin.HandlerFunc) {
	status := r.Group("/status")
	status.Use(middlewares...)
	{
		if rdb != nil {
			status.POST("/actions", middleware.Idempotency(rdb), handler.PerformAction)
		} else {
			status.POST("/actions", handler.PerformAction)
		}
		status.GET("/confirmation", handler.NeedsConfirmation)
		status.GET("/today", handler.GetToday)
		status.DELETE("/days/:date", handler.ResetDay)
	}
}
