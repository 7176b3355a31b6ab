package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the room-api service.
type Config struct {
	// Service settings
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"room-api"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"ROOM_API_PORT" envDefault:"8188"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"console"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// OpenTelemetry
	EnableTracing bool   `env:"OTEL_ENABLED" envDefault:"false"`
	OTLPEndpoint  string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`

	// Database
	DatabaseDSN    string        `env:"DB_POSTGRESQL_DSN,notEmpty"`
	DBMaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"15"`
	DBConnLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	// LiveKit
	LiveKitWsURL     string        `env:"LIVEKIT_WS_URL" envDefault:"ws://localhost:7880"`
	LiveKitAPIKey    string        `env:"LIVEKIT_API_KEY"`
	LiveKitAPISecret string        `env:"LIVEKIT_API_SECRET"`
	MediaTokenTTL    time.Duration `env:"LIVEKIT_TOKEN_TTL" envDefault:"6h"`

	// API credentials
	APITokenSecret    string        `env:"API_TOKEN_SECRET"`
	APITokenTTL       time.Duration `env:"API_TOKEN_TTL" envDefault:"1h"`
	CredStoreBackend  string        `env:"CRED_STORE_BACKEND" envDefault:"memory"` // Options: "memory" or "redis"
	RedisAddr         string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword     string        `env:"REDIS_PASSWORD"`
	RedisDB           int           `env:"REDIS_DB" envDefault:"0"`
	CredSweepInterval time.Duration `env:"CRED_SWEEP_INTERVAL" envDefault:"10m"`

	// Room lifecycle
	Agents                []string      `env:"AGENT_NAMES" envSeparator:"," envDefault:"peppa"`
	DefaultRoomTimeout    int           `env:"ROOM_TIMEOUT_MINUTES" envDefault:"60"`
	MaxRoomTimeout        int           `env:"ROOM_MAX_TIMEOUT_MINUTES" envDefault:"240"`
	OccupancySyncInterval time.Duration `env:"OCCUPANCY_SYNC_INTERVAL" envDefault:"15s"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	// Validate LiveKit configuration
	if strings.TrimSpace(cfg.LiveKitAPIKey) == "" {
		return nil, fmt.Errorf("LIVEKIT_API_KEY is required")
	}
	if strings.TrimSpace(cfg.LiveKitAPISecret) == "" {
		return nil, fmt.Errorf("LIVEKIT_API_SECRET is required")
	}
	if len(cfg.LiveKitAPISecret) < 32 {
		return nil, fmt.Errorf("LIVEKIT_API_SECRET must be at least 32 bytes, got %d", len(cfg.LiveKitAPISecret))
	}
	if !hasScheme(cfg.LiveKitWsURL, "ws://", "wss://", "http://", "https://") {
		return nil, fmt.Errorf("LIVEKIT_WS_URL must start with ws://, wss://, http:// or https://, got %q", cfg.LiveKitWsURL)
	}

	// The credential signing secret must be explicit and persisted. Falling
	// back to a per-process random secret would silently invalidate every
	// issued token on restart.
	if strings.TrimSpace(cfg.APITokenSecret) == "" {
		return nil, fmt.Errorf("API_TOKEN_SECRET is required")
	}
	if len(cfg.APITokenSecret) < 32 {
		return nil, fmt.Errorf("API_TOKEN_SECRET must be at least 32 bytes, got %d", len(cfg.APITokenSecret))
	}

	switch strings.ToLower(strings.TrimSpace(cfg.CredStoreBackend)) {
	case "memory", "redis":
	default:
		return nil, fmt.Errorf("CRED_STORE_BACKEND must be memory or redis, got %q", cfg.CredStoreBackend)
	}

	if len(cfg.Agents) == 0 {
		return nil, fmt.Errorf("AGENT_NAMES must list at least one agent")
	}
	if cfg.DefaultRoomTimeout <= 0 || cfg.DefaultRoomTimeout > cfg.MaxRoomTimeout {
		return nil, fmt.Errorf("ROOM_TIMEOUT_MINUTES must be in (0, %d], got %d", cfg.MaxRoomTimeout, cfg.DefaultRoomTimeout)
	}

	return cfg, nil
}

// Addr returns the HTTP server address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// APIURL returns the LiveKit HTTP API URL derived from the WebSocket URL.
// The server API speaks HTTP even when clients connect over WebSocket.
func (c *Config) APIURL() string {
	url := c.LiveKitWsURL
	switch {
	case strings.HasPrefix(url, "wss://"):
		return "https://" + strings.TrimPrefix(url, "wss://")
	case strings.HasPrefix(url, "ws://"):
		return "http://" + strings.TrimPrefix(url, "ws://")
	}
	return url
}

// IsRedisCredStore returns true if the Redis credential store backend is configured.
func (c *Config) IsRedisCredStore() bool {
	return strings.ToLower(strings.TrimSpace(c.CredStoreBackend)) == "redis"
}

// ValidAgent reports whether the agent name is in the configured catalog.
func (c *Config) ValidAgent(name string) bool {
	for _, a := range c.Agents {
		if a == name {
			return true
		}
	}
	return false
}

func hasScheme(url string, schemes ...string) bool {
	for _, s := range schemes {
		if strings.HasPrefix(url, s) {
			return true
		}
	}
	return false
}
