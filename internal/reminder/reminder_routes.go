package reminder

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, middlewares ...gin.HandlerFunc) {
	reminders := r.Group("/reminders")
	reminders.Use(middlewares...)
	{
		reminders.GET("", handler.List)
		reminders.GET("/calendar.ics", handler.Calendar)
		reminders.POST("/refresh", handler.Refresh)
		reminders.GET("/policy", handler.GetPolicy)
		reminders.PUT("/policy", handler.UpdatePolicy)
	}
}
