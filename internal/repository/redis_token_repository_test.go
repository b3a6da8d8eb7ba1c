package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"femaqua-be/internal/cache"
	"femaqua-be/internal/entities"
)

func setupRedisTokenRepository(t *testing.T) (TokenRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	c, err := cache.NewRedisCache(context.Background(), mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() {
		c.Close()
	})

	return NewRedisTokenRepository(c), mr
}

func TestRedisTokenRepository_CreateFind(t *testing.T) {
	repo, mr := setupRedisTokenRepository(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	tok := &entities.AccessToken{ID: "t1", UserID: "u1", TokenHash: "abc", CreatedAt: now}
	require.NoError(t, repo.Create(ctx, tok))

	got, err := repo.FindByHash(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.True(t, now.Equal(got.CreatedAt))

	// never-expiring tokens carry no TTL
	assert.Zero(t, mr.TTL("access_token:abc"))
}

func TestRedisTokenRepository_CreateDuplicate(t *testing.T) {
	repo, _ := setupRedisTokenRepository(t)
	ctx := context.Background()

	tok := &entities.AccessToken{ID: "t1", UserID: "u1", TokenHash: "abc"}
	require.NoError(t, repo.Create(ctx, tok))
	assert.ErrorIs(t, repo.Create(ctx, tok), ErrDuplicate)
}

func TestRedisTokenRepository_ExpiresWithKey(t *testing.T) {
	repo, mr := setupRedisTokenRepository(t)
	ctx := context.Background()
	expires := time.Now().Add(time.Hour)

	require.NoError(t, repo.Create(ctx, &entities.AccessToken{
		ID: "t1", UserID: "u1", TokenHash: "abc", ExpiresAt: &expires,
	}))
	assert.Greater(t, mr.TTL("access_token:abc"), 59*time.Minute)

	mr.FastForward(2 * time.Hour)

	_, err := repo.FindByHash(ctx, "abc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisTokenRepository_CreateAlreadyExpired(t *testing.T) {
	repo, _ := setupRedisTokenRepository(t)
	past := time.Now().Add(-time.Minute)

	err := repo.Create(context.Background(), &entities.AccessToken{
		ID: "t1", UserID: "u1", TokenHash: "abc", ExpiresAt: &past,
	})
	assert.Error(t, err)
}

func TestRedisTokenRepository_TouchKeepsTTL(t *testing.T) {
	repo, mr := setupRedisTokenRepository(t)
	ctx := context.Background()
	expires := time.Now().Add(time.Hour)

	require.NoError(t, repo.Create(ctx, &entities.AccessToken{
		ID: "t1", UserID: "u1", TokenHash: "abc", ExpiresAt: &expires,
	}))
	ttl := mr.TTL("access_token:abc")

	at := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.Touch(ctx, "abc", at))

	got, err := repo.FindByHash(ctx, "abc")
	require.NoError(t, err)
	require.NotNil(t, got.LastUsedAt)
	assert.True(t, at.Equal(*got.LastUsedAt))
	assert.Equal(t, ttl, mr.TTL("access_token:abc"))
}

func TestRedisTokenRepository_TouchMissingIsNoop(t *testing.T) {
	repo, _ := setupRedisTokenRepository(t)
	assert.NoError(t, repo.Touch(context.Background(), "missing", time.Now()))
}

// revokingCache deletes every key right after it is read, as a logout
// racing with Touch would.
type revokingCache struct {
	cache.Cache
}

func (c revokingCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	if err := c.Cache.GetJSON(ctx, key, dest); err != nil {
		return err
	}
	_, err := c.Cache.Delete(ctx, key)
	return err
}

func TestRedisTokenRepository_TouchDoesNotResurrectRevoked(t *testing.T) {
	mr := miniredis.RunT(t)
	c, err := cache.NewRedisCache(context.Background(), mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() {
		c.Close()
	})

	ctx := context.Background()
	seed := NewRedisTokenRepository(c)
	require.NoError(t, seed.Create(ctx, &entities.AccessToken{ID: "t1", UserID: "u1", TokenHash: "abc"}))

	racing := NewRedisTokenRepository(revokingCache{Cache: c})
	require.NoError(t, racing.Touch(ctx, "abc", time.Now()))

	assert.False(t, mr.Exists("access_token:abc"))
	_, err = seed.FindByHash(ctx, "abc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisTokenRepository_Delete(t *testing.T) {
	repo, _ := setupRedisTokenRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.AccessToken{ID: "t1", UserID: "u1", TokenHash: "abc"}))
	require.NoError(t, repo.DeleteByHash(ctx, "abc"))

	_, err := repo.FindByHash(ctx, "abc")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.DeleteByHash(ctx, "abc"), ErrNotFound)
}
