// Command server runs the room-api service: agent room provisioning, media
// token issuance, and API credential management.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"agentvoice/room-api/internal/config"
	"agentvoice/room-api/internal/domain/credential"
	"agentvoice/room-api/internal/domain/room"
	"agentvoice/room-api/internal/infrastructure/credstore"
	"agentvoice/room-api/internal/infrastructure/database"
	"agentvoice/room-api/internal/infrastructure/livekit"
	"agentvoice/room-api/internal/infrastructure/observability"
	roomrepo "agentvoice/room-api/internal/infrastructure/repository/room"
	"agentvoice/room-api/internal/interfaces/httpserver"
)

// @title Room API
// @version 1.0
// @description Agent room provisioning, media token, and API credential service
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// Application holds the assembled service components.
type Application struct {
	cfg        *config.Config
	log        zerolog.Logger
	httpServer *httpserver.Server
	rooms      room.Service
	syncer     *room.OccupancySyncer
	sweeper    *credential.Sweeper
}

// NewApplication groups the assembled components.
func NewApplication(
	cfg *config.Config,
	log zerolog.Logger,
	httpServer *httpserver.Server,
	rooms room.Service,
	syncer *room.OccupancySyncer,
	sweeper *credential.Sweeper,
) *Application {
	return &Application{
		cfg:        cfg,
		log:        log,
		httpServer: httpServer,
		rooms:      rooms,
		syncer:     syncer,
		sweeper:    sweeper,
	}
}

// Run starts the background workers and HTTP server, then blocks until a
// termination signal arrives and everything drains.
func (a *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	obsShutdown, err := observability.Setup(ctx, a.cfg, a.log)
	if err != nil {
		return fmt.Errorf("setup observability: %w", err)
	}

	a.sweeper.Start(ctx)
	a.syncer.Start(ctx)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- a.httpServer.Run()
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		a.log.Info().Msg("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.log.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	a.syncer.Stop()
	a.sweeper.Stop()
	a.rooms.Shutdown()
	if err := obsShutdown(shutdownCtx); err != nil {
		a.log.Error().Err(err).Msg("Observability shutdown failed")
	}

	a.log.Info().Msg("Service stopped")
	return nil
}

func provideDatabase(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseDSN,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db, log); err != nil {
		return nil, err
	}
	return db, nil
}

func provideRoomStore(db *gorm.DB) room.Store {
	return roomrepo.NewRepository(db)
}

func provideGateway(cfg *config.Config, log zerolog.Logger) room.Gateway {
	return livekit.NewRoomClient(cfg, log)
}

// provideCredentialStore selects the configured backend. The Redis client is
// pinged up front so a bad address fails at startup, not at first login.
func provideCredentialStore(cfg *config.Config, log zerolog.Logger) (credential.Store, func(), error) {
	if !cfg.IsRedisCredStore() {
		log.Info().Msg("Using in-memory credential store")
		return credstore.NewMemoryStore(), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
	}

	log.Info().Str("addr", cfg.RedisAddr).Msg("Using Redis credential store")
	return credstore.NewRedisStore(client), func() { _ = client.Close() }, nil
}

func provideCredentialService(store credential.Store, cfg *config.Config, log zerolog.Logger) credential.Service {
	return credential.NewService(store, []byte(cfg.APITokenSecret), cfg.APITokenTTL, log)
}

func provideRoomService(store room.Store, gateway room.Gateway, cfg *config.Config, log zerolog.Logger) room.Service {
	return room.NewService(store, gateway, cfg.LiveKitWsURL, cfg.MediaTokenTTL,
		cfg.DefaultRoomTimeout, cfg.MaxRoomTimeout, log)
}

func provideSweeper(creds credential.Service, cfg *config.Config, log zerolog.Logger) *credential.Sweeper {
	return credential.NewSweeper(creds, cfg.CredSweepInterval, log)
}

func provideSyncer(store room.Store, gateway room.Gateway, rooms room.Service, cfg *config.Config, log zerolog.Logger) *room.OccupancySyncer {
	return room.NewOccupancySyncer(store, gateway, rooms, cfg.OccupancySyncInterval, log)
}

// provideReadiness reports ready once the database answers pings.
func provideReadiness(db *gorm.DB) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}

func main() {
	// Local development convenience; absent .env files are fine.
	_ = godotenv.Load()

	app, cleanup, err := InitializeApplication()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := app.Run(); err != nil {
		app.log.Error().Err(err).Msg("Service exited with error")
		os.Exit(1)
	}
}
