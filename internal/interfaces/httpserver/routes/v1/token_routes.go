package v1

import (
	"github.com/gin-gonic/gin"

	"agentvoice/room-api/internal/interfaces/httpserver/handlers"
)

func registerTokenRoutes(g *gin.RouterGroup, h *handlers.Handlers) {
	g.POST("/tokens", h.Room.GenerateToken)
}
