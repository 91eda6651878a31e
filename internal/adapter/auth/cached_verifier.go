package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ressKim-io/intent-service/internal/domain/service"
)

// ErrCacheMiss is returned by a TokenCache when the key is absent
var ErrCacheMiss = errors.New("cache miss")

const tokenKeyPrefix = "intent:auth:token:"

// TokenCache stores identities of tokens that already passed verification
type TokenCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, owner string, ttl time.Duration) error
}

// RedisTokenCache is a TokenCache on Redis
type RedisTokenCache struct {
	client *redis.Client
}

// NewRedisTokenCache creates a new Redis-backed token cache
func NewRedisTokenCache(client *redis.Client) *RedisTokenCache {
	return &RedisTokenCache{client: client}
}

func (c *RedisTokenCache) Get(ctx context.Context, key string) (string, error) {
	owner, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	return owner, err
}

func (c *RedisTokenCache) Set(ctx context.Context, key, owner string, ttl time.Duration) error {
	return c.client.Set(ctx, key, owner, ttl).Err()
}

// CachedVerifier remembers successful verifications for up to ttl,
// never past the token's own expiry.
type CachedVerifier struct {
	next   service.TokenVerifier
	cache  TokenCache
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

var _ service.TokenVerifier = (*CachedVerifier)(nil)

// NewCachedVerifier wraps next with cache
func NewCachedVerifier(next service.TokenVerifier, cache TokenCache, ttl time.Duration, logger *zap.Logger) *CachedVerifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedVerifier{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// Verify consults the cache before delegating to the wrapped verifier
func (v *CachedVerifier) Verify(ctx context.Context, token string) (string, error) {
	key := cacheKey(token)

	owner, err := v.cache.Get(ctx, key)
	switch {
	case err == nil && owner != "":
		return owner, nil
	case err != nil && !errors.Is(err, ErrCacheMiss):
		v.logger.Warn("Token cache lookup failed", zap.Error(err))
	}

	owner, err = v.next.Verify(ctx, token)
	if err != nil {
		return "", err
	}

	if ttl := v.entryTTL(token); ttl > 0 {
		if err := v.cache.Set(ctx, key, owner, ttl); err != nil {
			v.logger.Warn("Token cache store failed", zap.Error(err))
		}
	}

	return owner, nil
}

func (v *CachedVerifier) entryTTL(token string) time.Duration {
	ttl := v.ttl

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err == nil && claims.ExpiresAt != nil {
		if remaining := claims.ExpiresAt.Sub(v.now()); remaining < ttl {
			ttl = remaining
		}
	}
	return ttl
}

func cacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return tokenKeyPrefix + hex.EncodeToString(sum[:])
}
