package database

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"agentvoice/room-api/internal/infrastructure/database/entities"
)

// AutoMigrate runs schema migrations for all entities.
func AutoMigrate(db *gorm.DB, log zerolog.Logger) error {
	log.Info().Msg("Running database migrations")

	if err := db.AutoMigrate(
		&entities.Room{},
	); err != nil {
		return err
	}

	log.Info().Msg("Database migrations completed")
	return nil
}
