package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mmartinpaz/hogares/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Resolver is the read side of the identity directory.
type Resolver interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// CachedResolver wraps a Resolver with a Redis read-through cache for
// resolve-by-email lookups. Misses (no such account) are not cached, so a
// freshly registered user becomes invitable immediately.
type CachedResolver struct {
	inner  Resolver
	client *redis.Client
	exp    time.Duration
}

// NewCachedResolver creates a cache decorator with the given TTL.
func NewCachedResolver(inner Resolver, client *redis.Client, expiration time.Duration) *CachedResolver {
	return &CachedResolver{
		inner:  inner,
		client: client,
		exp:    expiration,
	}
}

// GetByEmail returns the cached user for email, falling back to the inner
// resolver on a cache miss. Cache failures degrade to the inner resolver.
func (r *CachedResolver) GetByEmail(ctx context.Context, email string) (*User, error) {
	key := fmt.Sprintf("identity:email:%s", email)

	val, err := r.client.Get(ctx, key).Result()
	if err == nil {
		var user User
		if err := json.Unmarshal([]byte(val), &user); err == nil {
			logger.Log.Infow("identity cache hit", "key", key)
			return &user, nil
		}
	} else if err != redis.Nil {
		logger.Log.Errorw("identity cache read failed", "key", key, "error", err)
	}

	user, err := r.inner.GetByEmail(ctx, email)
	if err != nil || user == nil {
		return user, err
	}

	if data, err := json.Marshal(user); err == nil {
		if err := r.client.Set(ctx, key, data, r.exp).Err(); err != nil {
			logger.Log.Errorw("identity cache write failed", "key", key, "error", err)
		}
	}

	return user, nil
}
