package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cldprgm/Network-vibe/domain"
	"github.com/cldprgm/Network-vibe/internal/repository/cache"
)

type listCache struct {
	client *redis.Client
}

var _ domain.ListCache = (*listCache)(nil)

func NewListCache(client *redis.Client) *listCache {
	return &listCache{
		client,
	}
}

func (c *listCache) GetIDs(ctx context.Context, key string) ([]int64, error) {
	var ids []int64
	if err := c.GetPayload(ctx, key, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (c *listCache) SetIDs(ctx context.Context, key string, ids []int64, ttl time.Duration) error {
	if ids == nil {
		ids = []int64{}
	}
	return c.SetPayload(ctx, key, ids, ttl)
}

func (c *listCache) GetPayload(ctx context.Context, key string, dst any) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.ErrCacheMiss
	} else if err != nil {
		return err
	}

	var entry cache.Entry
	if err = json.Unmarshal(data, &entry); err != nil {
		return fmt.Errorf("decode cache entry %s: %w", key, err)
	}
	if err = entry.Decode(dst); err != nil {
		return fmt.Errorf("decode cache payload %s: %w", key, err)
	}
	return nil
}

// SetPayload replaces the whole entry. Entries without a TTL are rejected.
func (c *listCache) SetPayload(ctx context.Context, key string, payload any, ttl time.Duration) error {
	if ttl <= 0 {
		return domain.ErrBadParamInput
	}
	entry, err := cache.NewEntry(payload, ttl)
	if err != nil {
		return err
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *listCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

func (c *listCache) DeleteMany(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
