package middlewares_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentvoice/room-api/internal/domain/credential"
	"agentvoice/room-api/internal/infrastructure/credstore"
	"agentvoice/room-api/internal/interfaces/httpserver/middlewares"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, credential.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	creds := credential.NewService(
		credstore.NewMemoryStore(),
		[]byte("0123456789abcdef0123456789abcdef"),
		time.Hour,
		zerolog.Nop(),
	)

	engine := gin.New()
	engine.GET("/protected", middlewares.CredentialAuth(creds, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": middlewares.AuthenticatedUser(c)})
	})
	return engine, creds
}

func TestCredentialAuthMissingToken(t *testing.T) {
	engine, _ := setupAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCredentialAuthInvalidToken(t *testing.T) {
	engine, _ := setupAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCredentialAuthValidToken(t *testing.T) {
	engine, creds := setupAuthRouter(t)

	cred, err := creds.Issue(context.Background(), "user-1")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+cred.Token)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestCredentialAuthRevokedToken(t *testing.T) {
	engine, creds := setupAuthRouter(t)

	cred, err := creds.Issue(context.Background(), "user-1")
	require.NoError(t, err)
	_, err = creds.Revoke(context.Background(), cred.Token)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+cred.Token)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
