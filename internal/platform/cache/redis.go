package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"jobboard/internal/domain/model"
	"jobboard/internal/platform/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func Connect(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return rdb, nil
}

const listingVersionKey = "jobs:listing:version"

// ListingCache keeps public listing results in Redis for a short TTL.
// Invalidation bumps a version counter embedded in every key, so a job
// mutation or moderation action makes all cached pages stale at once
// without scanning the keyspace. Cache failures are logged and treated
// as misses; the listing falls through to the database.
type ListingCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewListingCache(rdb *redis.Client, ttl time.Duration) *ListingCache {
	return &ListingCache{rdb: rdb, ttl: ttl}
}

func (c *ListingCache) key(ctx context.Context, filterKey string) (string, error) {
	version, err := c.rdb.Get(ctx, listingVersionKey).Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}
	return fmt.Sprintf("jobs:listing:v%d:%s", version, filterKey), nil
}

func (c *ListingCache) Get(ctx context.Context, filterKey string) ([]model.Job, bool) {
	key, err := c.key(ctx, filterKey)
	if err != nil {
		log.Warn().Err(err).Msg("listing cache version lookup failed")
		return nil, false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("key", key).Msg("listing cache read failed")
		}
		return nil, false
	}
	var jobs []model.Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("listing cache entry corrupt")
		return nil, false
	}
	return jobs, true
}

func (c *ListingCache) Set(ctx context.Context, filterKey string, jobs []model.Job) {
	key, err := c.key(ctx, filterKey)
	if err != nil {
		return
	}
	data, err := json.Marshal(jobs)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("listing cache write failed")
	}
}

// Invalidate marks every cached listing stale. Old entries expire on
// their own TTL.
func (c *ListingCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Incr(ctx, listingVersionKey).Err(); err != nil {
		log.Warn().Err(err).Msg("listing cache invalidation failed")
	}
}
