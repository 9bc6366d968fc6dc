package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/freelaconnect/marketplace-api/internal/core/ports"
)

const defaultRatingTTL = 5 * time.Minute

// RatingCache keeps computed average ratings in Redis.
// Key format: rating:<freelancer_id>
type RatingCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ ports.RatingCache = (*RatingCache)(nil)

// NewRatingCache creates a RatingCache wrapping the given Redis client.
func NewRatingCache(client *redis.Client, ttl time.Duration) *RatingCache {
	if ttl <= 0 {
		ttl = defaultRatingTTL
	}
	return &RatingCache{client: client, ttl: ttl}
}

// Get returns the cached average. ok is false on a cache miss.
func (c *RatingCache) Get(ctx context.Context, freelancerID int64) (float64, bool, error) {
	raw, err := c.client.Get(ctx, c.key(freelancerID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("rating cache get: %w", err)
	}
	avg, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("rating cache decode %q: %w", raw, err)
	}
	return avg, true, nil
}

// Set stores avg until the TTL expires or the key is invalidated.
func (c *RatingCache) Set(ctx context.Context, freelancerID int64, avg float64) error {
	val := strconv.FormatFloat(avg, 'f', -1, 64)
	if err := c.client.Set(ctx, c.key(freelancerID), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("rating cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached average after a new review.
func (c *RatingCache) Invalidate(ctx context.Context, freelancerID int64) error {
	if err := c.client.Del(ctx, c.key(freelancerID)).Err(); err != nil {
		return fmt.Errorf("rating cache invalidate: %w", err)
	}
	return nil
}

func (c *RatingCache) key(freelancerID int64) string {
	return "rating:" + strconv.FormatInt(freelancerID, 10)
}
