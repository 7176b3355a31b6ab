package v1

import (
	"github.com/gin-gonic/gin"

	"agentvoice/room-api/internal/interfaces/httpserver/handlers"
)

func registerAuthRoutes(g *gin.RouterGroup, h *handlers.Handlers) {
	auth := g.Group("/auth")
	{
		auth.POST("/login", h.Credential.Login)
		auth.POST("/logout", h.Credential.Logout)
	}
}
