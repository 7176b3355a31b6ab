package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_POSTGRESQL_DSN", "host=localhost user=test dbname=test")
	t.Setenv("LIVEKIT_API_KEY", "devkey")
	t.Setenv("LIVEKIT_API_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("API_TOKEN_SECRET", "0123456789abcdef0123456789abcdef")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "room-api", cfg.ServiceName)
	assert.Equal(t, ":8188", cfg.Addr())
	assert.Equal(t, 60, cfg.DefaultRoomTimeout)
	assert.Equal(t, []string{"peppa"}, cfg.Agents)
	assert.False(t, cfg.IsRedisCredStore())
}

func TestLoadRequiresLiveKitSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LIVEKIT_API_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LIVEKIT_API_SECRET")
}

func TestLoadRejectsShortSecrets(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("API_TOKEN_SECRET", "too-short")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_TOKEN_SECRET")
}

func TestLoadRejectsBadWsURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LIVEKIT_WS_URL", "ftp://nope")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsUnknownCredBackend(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CRED_STORE_BACKEND", "etcd")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ROOM_TIMEOUT_MINUTES", "500")

	_, err := Load()
	require.Error(t, err)
}

func TestAPIURL(t *testing.T) {
	tests := []struct {
		wsURL string
		want  string
	}{
		{"ws://localhost:7880", "http://localhost:7880"},
		{"wss://livekit.example.com", "https://livekit.example.com"},
		{"https://livekit.example.com", "https://livekit.example.com"},
	}

	for _, tt := range tests {
		cfg := &Config{LiveKitWsURL: tt.wsURL}
		assert.Equal(t, tt.want, cfg.APIURL(), "wsURL %s", tt.wsURL)
	}
}

func TestValidAgent(t *testing.T) {
	cfg := &Config{Agents: []string{"peppa", "george"}}
	assert.True(t, cfg.ValidAgent("peppa"))
	assert.True(t, cfg.ValidAgent("george"))
	assert.False(t, cfg.ValidAgent("unknown"))
	assert.False(t, cfg.ValidAgent(""))
}

func TestLoadAgentList(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("AGENT_NAMES", "peppa,george,rebecca")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"peppa", "george", "rebecca"}, cfg.Agents)
}
