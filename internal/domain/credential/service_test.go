package credential_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentvoice/room-api/internal/domain/credential"
	"agentvoice/room-api/internal/infrastructure/credstore"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestService(ttl time.Duration) (credential.Service, *credstore.MemoryStore) {
	store := credstore.NewMemoryStore()
	return credential.NewService(store, testSecret, ttl, zerolog.Nop()), store
}

func TestIssueAndVerify(t *testing.T) {
	svc, store := newTestService(time.Hour)

	cred, err := svc.Issue(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, cred.Token)
	assert.Equal(t, "user-1", cred.Subject)
	assert.Equal(t, 1, store.Len())

	subject, err := svc.Verify(context.Background(), cred.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", subject)
}

func TestVerifyUnknownToken(t *testing.T) {
	svc, _ := newTestService(time.Hour)

	_, err := svc.Verify(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, credential.ErrInvalidCredential)
}

func TestVerifyTamperedToken(t *testing.T) {
	svc, _ := newTestService(time.Hour)

	cred, err := svc.Issue(context.Background(), "user-1")
	require.NoError(t, err)

	tampered := cred.Token[:len(cred.Token)-2] + "xx"
	_, err = svc.Verify(context.Background(), tampered)
	assert.ErrorIs(t, err, credential.ErrInvalidCredential)
}

func TestVerifyWrongSignature(t *testing.T) {
	svc, store := newTestService(time.Hour)

	// Token signed with a different key, with its digest planted in the
	// store. The signature check must still reject it.
	claims := jwt.MapClaims{
		"sub": "user-1",
		"typ": credential.TokenType,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("another-secret-another-secret-xx"))
	require.NoError(t, err)

	sum := sha256.Sum256([]byte(forged))
	require.NoError(t, store.Put(context.Background(), hex.EncodeToString(sum[:]), credential.Entry{
		Subject:   "user-1",
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	_, err = svc.Verify(context.Background(), forged)
	assert.ErrorIs(t, err, credential.ErrInvalidCredential)
}

func TestVerifyWrongTokenType(t *testing.T) {
	svc, store := newTestService(time.Hour)

	claims := jwt.MapClaims{
		"sub": "user-1",
		"typ": "refresh",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	sum := sha256.Sum256([]byte(token))
	require.NoError(t, store.Put(context.Background(), hex.EncodeToString(sum[:]), credential.Entry{
		Subject:   "user-1",
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	_, err = svc.Verify(context.Background(), token)
	assert.ErrorIs(t, err, credential.ErrInvalidCredential)
}

func TestVerifyExpired(t *testing.T) {
	svc, store := newTestService(-time.Minute)

	cred, err := svc.Issue(context.Background(), "user-1")
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), cred.Token)
	assert.ErrorIs(t, err, credential.ErrInvalidCredential)
	assert.Equal(t, 0, store.Len(), "expired entry removed on verification")
}

func TestRevoke(t *testing.T) {
	svc, _ := newTestService(time.Hour)

	cred, err := svc.Issue(context.Background(), "user-1")
	require.NoError(t, err)

	revoked, err := svc.Revoke(context.Background(), cred.Token)
	require.NoError(t, err)
	assert.True(t, revoked)

	_, err = svc.Verify(context.Background(), cred.Token)
	assert.ErrorIs(t, err, credential.ErrInvalidCredential, "revocation takes effect immediately")

	// Revoking again is a no-op.
	revoked, err = svc.Revoke(context.Background(), cred.Token)
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestSweepExpired(t *testing.T) {
	expiredSvc, store := newTestService(-time.Minute)
	_, err := expiredSvc.Issue(context.Background(), "user-1")
	require.NoError(t, err)
	_, err = expiredSvc.Issue(context.Background(), "user-2")
	require.NoError(t, err)

	liveSvc := credential.NewService(store, testSecret, time.Hour, zerolog.Nop())
	liveCred, err := liveSvc.Issue(context.Background(), "user-3")
	require.NoError(t, err)

	n, err := liveSvc.SweepExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, store.Len())

	subject, err := liveSvc.Verify(context.Background(), liveCred.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-3", subject, "sweep must not touch live credentials")
}

func TestIndependentCredentialsPerSubject(t *testing.T) {
	svc, _ := newTestService(time.Hour)

	c1, err := svc.Issue(context.Background(), "user-1")
	require.NoError(t, err)
	c2, err := svc.Issue(context.Background(), "user-2")
	require.NoError(t, err)

	_, err = svc.Revoke(context.Background(), c1.Token)
	require.NoError(t, err)

	subject, err := svc.Verify(context.Background(), c2.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-2", subject)
}
