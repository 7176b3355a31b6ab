package v1

import (
	"github.com/gin-gonic/gin"

	"agentvoice/room-api/internal/interfaces/httpserver/handlers"
)

func registerRoomRoutes(g *gin.RouterGroup, h *handlers.Handlers) {
	rooms := g.Group("/rooms")
	{
		rooms.POST("", h.Room.Create)
		rooms.GET("/:name", h.Room.Get)
		rooms.DELETE("/:name", h.Room.Close)
		rooms.POST("/:name/join", h.Room.Join)
	}

	g.GET("/agents", h.Room.ListAgents)
}
