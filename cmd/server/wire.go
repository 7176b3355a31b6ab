//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"agentvoice/room-api/internal/config"
	"agentvoice/room-api/internal/infrastructure/logger"
	"agentvoice/room-api/internal/interfaces/httpserver"
	"agentvoice/room-api/internal/interfaces/httpserver/handlers"
)

// InitializeApplication assembles the full service graph.
func InitializeApplication() (*Application, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideDatabase,
		provideRoomStore,
		provideGateway,
		provideCredentialStore,
		provideCredentialService,
		provideRoomService,
		provideSweeper,
		provideSyncer,
		provideReadiness,
		handlers.ProviderSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil, nil
}
