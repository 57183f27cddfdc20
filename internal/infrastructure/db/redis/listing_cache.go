package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tablebook/reservation-system/internal/core/domain"
)

const (
	listingTTL = 5 * time.Minute
	genKey     = "listings:gen"
)

// ListingCache caches booking listings in Redis. Entries are keyed by a
// generation counter plus the requested date; invalidation bumps the counter,
// orphaning every older entry, which then ages out via TTL. This keeps
// invalidation a single round-trip with no key scans.
//
// The generation is read once per lookup and threaded back through
// SetListing, so a refresh that raced a write stores its (possibly stale)
// listing under the orphaned generation instead of the current one.
type ListingCache struct {
	client *redis.Client
}

// NewListingCache wraps the given Redis client.
func NewListingCache(client *redis.Client) *ListingCache {
	return &ListingCache{client: client}
}

// GetListing returns the cached listing for date ("" means the unfiltered
// listing), the generation it was read under, and whether it was present.
func (c *ListingCache) GetListing(ctx context.Context, date string) ([]domain.Booking, int64, bool, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return nil, 0, false, err
	}

	raw, err := c.client.Get(ctx, c.key(gen, date)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, gen, false, nil
		}
		return nil, 0, false, fmt.Errorf("listing cache get: %w", err)
	}

	var bookings []domain.Booking
	if err := json.Unmarshal(raw, &bookings); err != nil {
		return nil, 0, false, fmt.Errorf("listing cache decode: %w", err)
	}
	return bookings, gen, true, nil
}

// SetListing stores the listing for date under the generation captured by the
// preceding GetListing.
func (c *ListingCache) SetListing(ctx context.Context, date string, generation int64, bookings []domain.Booking) error {
	raw, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("listing cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(generation, date), raw, listingTTL).Err()
}

// Invalidate bumps the generation counter, logically discarding every cached
// listing at once.
func (c *ListingCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, genKey).Err(); err != nil {
		return fmt.Errorf("listing cache invalidate: %w", err)
	}
	return nil
}

func (c *ListingCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, genKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("listing cache generation: %w", err)
	}
	return gen, nil
}

func (c *ListingCache) key(generation int64, date string) string {
	if date == "" {
		date = "all"
	}
	return fmt.Sprintf("listings:%d:%s", generation, date)
}
