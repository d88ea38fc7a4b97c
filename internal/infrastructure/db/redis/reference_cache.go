package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/plantops/manufacturing-ops/internal/core/domain"
)

const cacheTTL = 10 * time.Minute

// ReferenceCache caches reference data categories as JSON blobs.
// Key format: refdata:<category_name>
type ReferenceCache struct {
	client *redis.Client
}

// NewReferenceCache creates a ReferenceCache wrapping the given Redis client.
func NewReferenceCache(client *redis.Client) *ReferenceCache {
	return &ReferenceCache{client: client}
}

// Get returns the cached category, or (nil, nil) on a miss.
func (c *ReferenceCache) Get(ctx context.Context, name string) (*domain.ReferenceCategory, error) {
	raw, err := c.client.Get(ctx, c.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("reference cache get: %w", err)
	}

	var cat domain.ReferenceCategory
	if err := json.Unmarshal(raw, &cat); err != nil {
		return nil, fmt.Errorf("reference cache decode: %w", err)
	}
	return &cat, nil
}

// Set stores the category (expires after cacheTTL).
func (c *ReferenceCache) Set(ctx context.Context, cat *domain.ReferenceCategory) error {
	raw, err := json.Marshal(cat)
	if err != nil {
		return fmt.Errorf("reference cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(cat.Name), raw, cacheTTL).Err()
}

// Invalidate drops the cached category, if present.
func (c *ReferenceCache) Invalidate(ctx context.Context, name string) error {
	return c.client.Del(ctx, c.key(name)).Err()
}

func (c *ReferenceCache) key(name string) string {
	return "refdata:" + name
}
