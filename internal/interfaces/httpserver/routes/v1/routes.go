// Package v1 registers the versioned API routes.
package v1

import (
	"github.com/gin-gonic/gin"

	"agentvoice/room-api/internal/interfaces/httpserver/handlers"
)

// Register mounts all v1 routes. Auth routes stay public; everything else
// requires a valid bearer credential.
func Register(engine *gin.Engine, h *handlers.Handlers, auth gin.HandlerFunc) {
	v1 := engine.Group("/v1")

	registerAuthRoutes(v1, h)

	protected := v1.Group("", auth)
	registerRoomRoutes(protected, h)
	registerTokenRoutes(protected, h)
}
