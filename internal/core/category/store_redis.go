package category

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ductran/syllabase/internal/platform/apperr"
	"github.com/ductran/syllabase/internal/platform/constants"
)

// RedisListCache implements [ListCache] with a single JSON blob under a
// well-known key. Categories change rarely, so whole-list granularity is fine.
type RedisListCache struct {
	client *redis.Client
}

func NewRedisListCache(client *redis.Client) *RedisListCache {
	return &RedisListCache{client: client}
}

func (cache *RedisListCache) Get(ctx context.Context) ([]Category, error) {
	payload, err := cache.client.Get(ctx, constants.RedisPrefixCategoryList).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound("Category cache entry")
		}
		return nil, fmt.Errorf("redis_category_cache_get_failed: %w", err)
	}

	var categories []Category
	if err := json.Unmarshal(payload, &categories); err != nil {
		// A corrupt entry behaves like a miss; the caller refreshes it.
		return nil, apperr.NotFound("Category cache entry")
	}

	return categories, nil
}

func (cache *RedisListCache) Set(ctx context.Context, categories []Category, ttl time.Duration) error {
	payload, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("redis_category_cache_marshal_failed: %w", err)
	}

	if err := cache.client.Set(ctx, constants.RedisPrefixCategoryList, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis_category_cache_set_failed: %w", err)
	}

	return nil
}

func (cache *RedisListCache) Invalidate(ctx context.Context) error {
	if err := cache.client.Del(ctx, constants.RedisPrefixCategoryList).Err(); err != nil {
		return fmt.Errorf("redis_category_cache_invalidate_failed: %w", err)
	}

	return nil
}
