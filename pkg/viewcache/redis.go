package viewcache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stagecrew/stagekit/pkg/role"
)

const redisKeyPrefix = "viewcfg:"

// Redis is a Cache backend over a shared Redis instance, letting the mobile
// and web clients of one user hit the same warmed entries. Expiry is
// delegated to Redis TTLs; any transport error degrades to a miss, since
// recomputing a view configuration is always safe.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a Redis-backed cache. A non-positive ttl falls back to
// DefaultTTL.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, key Key) (role.ViewConfig, bool) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+key.String()).Bytes()
	if err != nil {
		return role.ViewConfig{}, false
	}

	var cfg role.ViewConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return role.ViewConfig{}, false
	}
	return cfg, true
}

func (r *Redis) Set(ctx context.Context, key Key, cfg role.ViewConfig) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return
	}
	_ = r.client.Set(ctx, redisKeyPrefix+key.String(), raw, r.ttl).Err()
}

func (r *Redis) Clear(ctx context.Context) {
	iter := r.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		_ = r.client.Del(ctx, iter.Val()).Err()
	}
}

func (r *Redis) Size(ctx context.Context) int {
	count := 0
	iter := r.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		count++
	}
	return count
}
