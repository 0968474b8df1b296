package hotels

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"taratrip/internal/config"
	"taratrip/internal/lib/logger/sl"
	"taratrip/internal/models"
)

// SearchCache keeps normalized search results in redis for a short TTL so
// repeated searches for the same destination skip the upstream round trip.
// A nil *SearchCache is valid and disables caching.
type SearchCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

// NewSearchCache returns nil when no address is configured or the server
// cannot be reached; callers degrade to uncached searches.
func NewSearchCache(cfg *config.Redis, log *slog.Logger) *SearchCache {
	if cfg.Address == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unreachable, search cache disabled", sl.Err(err))
		return nil
	}

	return &SearchCache{client: client, ttl: cfg.CacheTTL, log: log}
}

func (c *SearchCache) Get(ctx context.Context, locationKey string) ([]models.Listing, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, "hotels:"+locationKey).Bytes()
	if err != nil {
		return nil, false
	}

	var listings []models.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, false
	}

	return listings, true
}

func (c *SearchCache) Set(ctx context.Context, locationKey string, listings []models.Listing) {
	if c == nil {
		return
	}

	data, err := json.Marshal(listings)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, "hotels:"+locationKey, data, c.ttl).Err(); err != nil {
		c.log.Warn("failed to cache search result", sl.Err(err))
	}
}

func (c *SearchCache) Close() error {
	if c == nil {
		return nil
	}

	return c.client.Close()
}
