// Package httpserver assembles the gin engine, middleware chain, and route
// registration for the room-api service.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerfiles "github.com/swaggo/files"
	ginswagger "github.com/swaggo/gin-swagger"

	_ "agentvoice/room-api/docs/swagger"
	"agentvoice/room-api/internal/config"
	"agentvoice/room-api/internal/domain/credential"
	"agentvoice/room-api/internal/interfaces/httpserver/handlers"
	"agentvoice/room-api/internal/interfaces/httpserver/middlewares"
	v1 "agentvoice/room-api/internal/interfaces/httpserver/routes/v1"
)

// Server wraps the HTTP server with graceful shutdown.
type Server struct {
	server *http.Server
	cfg    *config.Config
	log    zerolog.Logger
}

// New builds the gin engine with the full middleware chain and all routes.
func New(cfg *config.Config, h *handlers.Handlers, creds credential.Service, ready func(ctx context.Context) error, log zerolog.Logger) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		middlewares.Recovery(log),
		middlewares.RequestID(),
		middlewares.Tracing(cfg.ServiceName),
		middlewares.Metrics(),
		middlewares.RequestLogger(log),
		middlewares.CORS(),
	)

	registerCoreRoutes(engine, cfg, ready)
	v1.Register(engine, h, middlewares.CredentialAuth(creds, log))

	return &Server{
		server: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
		cfg: cfg,
		log: log.With().Str("component", "http_server").Logger(),
	}
}

// registerCoreRoutes mounts health, metrics, and API docs endpoints. These
// sit outside /v1 and outside credential auth.
func registerCoreRoutes(engine *gin.Engine, cfg *config.Config, ready func(ctx context.Context) error) {
	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": cfg.ServiceName,
			"version": "1.0",
			"docs":    "/swagger/index.html",
		})
	})

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": cfg.ServiceName})
	})

	engine.GET("/readyz", func(c *gin.Context) {
		if ready != nil {
			if err := ready(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.GET("/swagger/*any", ginswagger.WrapHandler(swaggerfiles.Handler))
}

// Run starts serving and blocks until the listener stops.
func (s *Server) Run() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("HTTP server starting")
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests until the context expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("HTTP server shutting down")
	return s.server.Shutdown(ctx)
}
