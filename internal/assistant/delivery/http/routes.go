package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	assistant := rg.Group("/assistant")
	{
		assistant.POST("/route", h.Route)
		assistant.POST("/chat", h.Chat)
		assistant.POST("/runs", h.Run)
	}
}
