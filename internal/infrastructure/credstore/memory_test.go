package credstore_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentvoice/room-api/internal/domain/credential"
	"agentvoice/room-api/internal/infrastructure/credstore"
)

func entry(subject string, ttl time.Duration) credential.Entry {
	now := time.Now().UTC()
	return credential.Entry{Subject: subject, IssuedAt: now, ExpiresAt: now.Add(ttl)}
}

func TestMemoryStorePutGet(t *testing.T) {
	s := credstore.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "digest-1", entry("user-1", time.Hour)))

	got, err := s.Get(ctx, "digest-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "user-1", got.Subject)

	missing, err := s.Get(ctx, "digest-2")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryStoreDelete(t *testing.T) {
	s := credstore.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "digest-1", entry("user-1", time.Hour)))

	existed, err := s.Delete(ctx, "digest-1")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = s.Delete(ctx, "digest-1")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestMemoryStoreDeleteExpired(t *testing.T) {
	s := credstore.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "live", entry("user-1", time.Hour)))
	require.NoError(t, s.Put(ctx, "expired-1", entry("user-2", -time.Minute)))
	require.NoError(t, s.Put(ctx, "expired-2", entry("user-3", -time.Hour)))

	removed, err := s.DeleteExpired(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, s.Len())

	got, err := s.Get(ctx, "live")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	s := credstore.NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			digest := fmt.Sprintf("digest-%d", i)
			_ = s.Put(ctx, digest, entry("user", time.Hour))
			_, _ = s.Get(ctx, digest)
			if i%2 == 0 {
				_, _ = s.Delete(ctx, digest)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 25, s.Len())
}
