package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"femaqua-be/internal/cache"
	"femaqua-be/internal/entities"
)

const tokenKeyPrefix = "access_token:"

type redisTokenRepository struct {
	cache cache.Cache
	now   func() time.Time
}

// NewRedisTokenRepository stores token bindings in Redis as JSON, keyed by
// hash. Expiring tokens get a matching key TTL.
func NewRedisTokenRepository(c cache.Cache) TokenRepository {
	return &redisTokenRepository{cache: c, now: time.Now}
}

func tokenKey(tokenHash string) string {
	return tokenKeyPrefix + tokenHash
}

func (r *redisTokenRepository) Create(ctx context.Context, token *entities.AccessToken) error {
	var ttl time.Duration
	if token.ExpiresAt != nil {
		ttl = token.ExpiresAt.Sub(r.now())
		if ttl <= 0 {
			return fmt.Errorf("token already expired at %s", token.ExpiresAt.Format(time.RFC3339))
		}
	}

	added, err := r.cache.AddJSON(ctx, tokenKey(token.TokenHash), token, ttl)
	if err != nil {
		return fmt.Errorf("failed to create token: %w", err)
	}
	if !added {
		return ErrDuplicate
	}
	return nil
}

func (r *redisTokenRepository) FindByHash(ctx context.Context, tokenHash string) (*entities.AccessToken, error) {
	var t entities.AccessToken
	err := r.cache.GetJSON(ctx, tokenKey(tokenHash), &t)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load token: %w", err)
	}
	return &t, nil
}

func (r *redisTokenRepository) Touch(ctx context.Context, tokenHash string, at time.Time) error {
	t, err := r.FindByHash(ctx, tokenHash)
	if errors.Is(err, ErrNotFound) {
		// revoked or expired between lookup and touch
		return nil
	}
	if err != nil {
		return err
	}

	t.LastUsedAt = &at
	// XX: a binding deleted or expired since the read must stay gone
	if _, err := r.cache.ReplaceJSON(ctx, tokenKey(tokenHash), t); err != nil {
		return fmt.Errorf("failed to touch token: %w", err)
	}
	return nil
}

func (r *redisTokenRepository) DeleteByHash(ctx context.Context, tokenHash string) error {
	existed, err := r.cache.Delete(ctx, tokenKey(tokenHash))
	if err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	if !existed {
		return ErrNotFound
	}
	return nil
}
