package repositories

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"easyrent-backend/internal/models"
	"easyrent-backend/pkg/cache"
	"easyrent-backend/pkg/metrics"

	"github.com/go-redis/redis/v8"
)

type propertyCache struct {
	client *redis.Client
}

func NewPropertyCache(client *redis.Client) PropertyCache {
	return &propertyCache{client: client}
}

func (c *propertyCache) GetProperty(ctx context.Context, key string) (*models.Property, error) {
	start := time.Now()
	data, err := c.client.Get(ctx, key).Result()
	metrics.RedisOperationDuration.WithLabelValues("get").Observe(time.Since(start).Seconds())
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get").Inc()
		return nil, cache.NewCacheError("get", err, true)
	}
	var property models.Property
	if err := json.Unmarshal([]byte(data), &property); err != nil {
		return nil, err
	}
	return &property, nil
}

func (c *propertyCache) SetProperty(ctx context.Context, key string, property *models.Property, expiration time.Duration) error {
	data, err := json.Marshal(property)
	if err != nil {
		return err
	}
	start := time.Now()
	err = c.client.Set(ctx, key, data, expiration).Err()
	metrics.RedisOperationDuration.WithLabelValues("set").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set").Inc()
		return cache.NewCacheError("set", err, true)
	}
	return nil
}

func (c *propertyCache) GetSearchResults(ctx context.Context, key string) ([]string, error) {
	start := time.Now()
	data, err := c.client.Get(ctx, key).Result()
	metrics.RedisOperationDuration.WithLabelValues("get_search").Observe(time.Since(start).Seconds())
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get_search").Inc()
		return nil, cache.NewCacheError("get_search", err, true)
	}
	var ids []string
	if err := json.Unmarshal([]byte(data), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// SetSearchResults stores the result ID list and registers the search key
// against every returned property, so a later write to any of them
// invalidates this search.
func (c *propertyCache) SetSearchResults(ctx context.Context, key string, propertyIDs []string, expiration time.Duration) error {
	data, err := json.Marshal(propertyIDs)
	if err != nil {
		return err
	}
	args := make([]interface{}, 0, len(propertyIDs)+3)
	args = append(args, key, string(data), strconv.Itoa(int(expiration.Seconds())))
	for _, id := range propertyIDs {
		args = append(args, id)
	}

	start := time.Now()
	err = cache.SetSearchResultScript().Run(ctx, c.client, nil, args...).Err()
	metrics.RedisOperationDuration.WithLabelValues("set_search").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set_search").Inc()
		return cache.NewCacheError("set_search", err, true)
	}
	return nil
}

func (c *propertyCache) InvalidateProperty(ctx context.Context, propertyID string) error {
	start := time.Now()
	err := cache.InvalidatePropertyCacheScript().Run(ctx, c.client, nil, propertyID).Err()
	metrics.RedisOperationDuration.WithLabelValues("invalidate").Observe(time.Since(start).Seconds())
	if err != nil && err != redis.Nil {
		metrics.RedisErrorsTotal.WithLabelValues("invalidate").Inc()
		return cache.NewCacheError("invalidate", err, true)
	}
	return c.Delete(ctx, cache.PropertyKey(propertyID))
}

func (c *propertyCache) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := c.client.Del(ctx, key).Err()
	metrics.RedisOperationDuration.WithLabelValues("delete").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("delete").Inc()
		return cache.NewCacheError("delete", err, true)
	}
	return nil
}
