package aggregate

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, middlewares ...gin.HandlerFunc) {
	status := r.Group("/status")
	status.Use(middlewares...)
	{
		status.GET("/weekly", handler.GetWeekly)
		status.GET("/monthly", handler.GetMonthly)
		status.GET("/monthly/export", handler.ExportMonthly)
		status.PUT("/days/:date", handler.SetDayStatus)
		status.POST("/tallies/rebuild", handler.RebuildTallies)
	}
}
