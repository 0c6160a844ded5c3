package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vitalrack/vitalrack-api/internal/core/domain"
)

const searchCacheTTL = 10 * time.Minute

// SearchCache caches food search results per normalized query.
// Key format: foodsearch:<lowercased query>
type SearchCache struct {
	client *redis.Client
}

// NewSearchCache creates a SearchCache wrapping the given Redis client.
func NewSearchCache(client *redis.Client) *SearchCache {
	return &SearchCache{client: client}
}

// Get returns the cached result set for a query. The second return value is
// false on a cache miss.
func (c *SearchCache) Get(ctx context.Context, query string) ([]domain.Food, bool, error) {
	raw, err := c.client.Get(ctx, c.key(query)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("search cache get: %w", err)
	}

	var foods []domain.Food
	if err := json.Unmarshal(raw, &foods); err != nil {
		return nil, false, fmt.Errorf("search cache decode: %w", err)
	}
	return foods, true, nil
}

// Set stores a result set for a query (expires after searchCacheTTL).
func (c *SearchCache) Set(ctx context.Context, query string, foods []domain.Food) error {
	raw, err := json.Marshal(foods)
	if err != nil {
		return fmt.Errorf("search cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(query), raw, searchCacheTTL).Err()
}

func (c *SearchCache) key(query string) string {
	return "foodsearch:" + strings.ToLower(query)
}
