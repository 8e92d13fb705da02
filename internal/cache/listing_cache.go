package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bgpkrishna123/OLX/internal/config"
	"github.com/bgpkrishna123/OLX/internal/models"
)

// The Redis key for the cached unsold feed
const unsoldItemsCacheKey = "cache:unsold_items"

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("не удалось подключиться к Redis: %w", err)
	}

	log.Println("Успешное подключение к Redis")
	return rdb, nil
}

// ListingCache keeps the unsold feed in Redis for a short TTL. A nil
// cache is valid and turns every lookup into a miss, readers tolerate
// a stale feed anyway.
type ListingCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewListingCache(rdb *redis.Client, ttl time.Duration) *ListingCache {
	if rdb == nil {
		return nil
	}
	return &ListingCache{rdb: rdb, ttl: ttl}
}

func (c *ListingCache) GetUnsold(ctx context.Context) ([]models.Item, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.rdb.Get(ctx, unsoldItemsCacheKey).Bytes()
	if err != nil {
		return nil, false
	}

	var items []models.Item
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("Повреждённый кэш непроданных товаров: %v", err)
		return nil, false
	}

	return items, true
}

func (c *ListingCache) SetUnsold(ctx context.Context, items []models.Item) {
	if c == nil {
		return
	}

	data, err := json.Marshal(items)
	if err != nil {
		log.Printf("Ошибка сериализации кэша: %v", err)
		return
	}

	if err := c.rdb.Set(ctx, unsoldItemsCacheKey, data, c.ttl).Err(); err != nil {
		log.Printf("Ошибка записи кэша в Redis: %v", err)
	}
}

// Invalidate drops the feed after a create or a sold transition.
func (c *ListingCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}

	if err := c.rdb.Del(ctx, unsoldItemsCacheKey).Err(); err != nil {
		log.Printf("Ошибка сброса кэша в Redis: %v", err)
	}
}
