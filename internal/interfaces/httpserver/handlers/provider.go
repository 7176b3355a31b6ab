// Package handlers wires HTTP handlers over the domain services.
package handlers

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"agentvoice/room-api/internal/config"
	"agentvoice/room-api/internal/domain/credential"
	"agentvoice/room-api/internal/domain/room"
)

// Handlers groups all HTTP handlers.
type Handlers struct {
	Room       *RoomHandler
	Credential *CredentialHandler
}

// New creates the handler group.
func New(rooms room.Service, creds credential.Service, cfg *config.Config, log zerolog.Logger) *Handlers {
	return &Handlers{
		Room:       NewRoomHandler(rooms, cfg, log),
		Credential: NewCredentialHandler(creds, log),
	}
}

// ProviderSet is the wire provider set for handlers.
var ProviderSet = wire.NewSet(New)
