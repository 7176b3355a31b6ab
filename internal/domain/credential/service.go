package credential

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"agentvoice/room-api/internal/infrastructure/metrics"
)

// TokenType is the required typ claim of API credentials. Media grants use a
// different issuer and never carry it, so the two token kinds cannot be
// confused.
const TokenType = "api_access"

// ErrInvalidCredential is returned by Verify for every rejection reason:
// malformed token, bad signature, wrong type, expiry, or revocation. Callers
// get no detail beyond "invalid".
var ErrInvalidCredential = errors.New("invalid or expired credential")

// Claims is the signed payload of an API credential.
type Claims struct {
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// Service issues, verifies, and revokes API access credentials. A credential
// is only valid while both its signature checks out and its digest is present
// and unexpired in the store, so revocation takes effect immediately.
type Service interface {
	// Issue mints a signed credential for the subject.
	Issue(ctx context.Context, subject string) (*Credential, error)

	// Verify validates a raw token and returns its subject. Fails closed:
	// any doubt rejects.
	Verify(ctx context.Context, token string) (string, error)

	// Revoke invalidates a credential. Returns whether it was active.
	Revoke(ctx context.Context, token string) (bool, error)

	// SweepExpired removes expired entries from the store.
	SweepExpired(ctx context.Context) (int, error)
}

type service struct {
	store  Store
	secret []byte
	ttl    time.Duration
	log    zerolog.Logger
}

// NewService creates a credential service signing with the given secret.
func NewService(store Store, secret []byte, ttl time.Duration, log zerolog.Logger) Service {
	return &service{
		store:  store,
		secret: secret,
		ttl:    ttl,
		log:    log.With().Str("component", "credential_service").Logger(),
	}
}

func (s *service) Issue(ctx context.Context, subject string) (*Credential, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.ttl)

	claims := Claims{
		TokenType: TokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	if err := s.store.Put(ctx, digestOf(token), Entry{
		Subject:   subject,
		IssuedAt:  now,
		ExpiresAt: expiresAt,
	}); err != nil {
		return nil, err
	}

	metrics.CredentialsIssued.Inc()
	s.log.Info().Str("subject", subject).Time("expires_at", expiresAt).Msg("Credential issued")

	return &Credential{Token: token, Subject: subject, ExpiresAt: expiresAt}, nil
}

func (s *service) Verify(ctx context.Context, token string) (string, error) {
	entry, err := s.store.Get(ctx, digestOf(token))
	if err != nil {
		return "", err
	}
	if entry == nil {
		return "", ErrInvalidCredential
	}

	now := time.Now().UTC()
	if now.After(entry.ExpiresAt) {
		// Opportunistic cleanup; the sweeper would catch it anyway.
		if _, delErr := s.store.Delete(ctx, digestOf(token)); delErr != nil {
			s.log.Warn().Err(delErr).Msg("Failed to delete expired credential entry")
		}
		return "", ErrInvalidCredential
	}

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", ErrInvalidCredential
	}

	if claims.TokenType != TokenType {
		return "", ErrInvalidCredential
	}
	if claims.Subject == "" || claims.Subject != entry.Subject {
		return "", ErrInvalidCredential
	}

	return claims.Subject, nil
}

func (s *service) Revoke(ctx context.Context, token string) (bool, error) {
	existed, err := s.store.Delete(ctx, digestOf(token))
	if err != nil {
		return false, err
	}
	if existed {
		metrics.CredentialsRevoked.Inc()
		s.log.Info().Msg("Credential revoked")
	}
	return existed, nil
}

func (s *service) SweepExpired(ctx context.Context) (int, error) {
	n, err := s.store.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		metrics.CredentialsSwept.Add(float64(n))
		s.log.Debug().Int("count", n).Msg("Swept expired credentials")
	}
	return n, nil
}

// digestOf computes the hex SHA-256 digest of a raw token. The digest keys
// the store so raw tokens never touch persistence.
func digestOf(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
