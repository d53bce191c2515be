package shift

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, middlewares ...gin.HandlerFunc) {
	shifts := r.Group("/shifts")
	shifts.Use(middlewares...)
	{
		shifts.GET("", handler.GetAll)
		shifts.GET("/:id", handler.GetByID)
		shifts.POST("", handler.Create)
		shifts.PUT("/:id", handler.Update)
		shifts.DELETE("/:id", handler.Delete)
		shifts.POST("/:id/apply", handler.Apply)
	}
}
