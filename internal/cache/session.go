package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/CaioPires92/projeto14-mywallet-back/internal/model"
)

const (
	// sessionCachePrefix is the Redis key prefix for cached sessions.
	sessionCachePrefix = "session:"
	// sessionCacheTTL bounds how long an entry lives in Redis. Sessions
	// themselves never expire; Postgres stays authoritative and a miss
	// just falls through to it.
	sessionCacheTTL = 5 * time.Minute
)

// cachedSession is the Redis representation of a session.
type cachedSession struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// GetSession retrieves a cached session by its token digest.
// Returns nil on a cache miss; misses are not errors.
func (c *Cache) GetSession(ctx context.Context, tokenDigest string) (*model.Session, error) {
	key := sessionCachePrefix + tokenDigest

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		// Cache miss is not an error
		return nil, nil //nolint:nilerr
	}

	var cached cachedSession
	if err := json.Unmarshal(data, &cached); err != nil {
		// Corrupted cache entry - treat as miss
		return nil, nil //nolint:nilerr
	}

	return &model.Session{
		Token:     cached.Token,
		UserID:    cached.UserID,
		CreatedAt: cached.CreatedAt,
	}, nil
}

// SetSession caches a session under its token digest.
func (c *Cache) SetSession(ctx context.Context, tokenDigest string, session *model.Session) error {
	key := sessionCachePrefix + tokenDigest

	data, err := json.Marshal(cachedSession{
		Token:     session.Token,
		UserID:    session.UserID,
		CreatedAt: session.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	return c.client.Set(ctx, key, data, sessionCacheTTL).Err()
}

// DeleteSession removes a cached session. Called on logout so a revoked
// token stops authorizing immediately instead of after the TTL.
func (c *Cache) DeleteSession(ctx context.Context, tokenDigest string) error {
	key := sessionCachePrefix + tokenDigest
	return c.client.Del(ctx, key).Err()
}
