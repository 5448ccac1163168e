package http

import (
	"tour-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Locale())
	{
		api.POST("/chat", h.Chat)
		api.GET("/history/:user_id", h.GetHistory)
		api.DELETE("/history/:user_id", h.ClearHistory)
	}
}
