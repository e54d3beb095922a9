package models

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type ListingCache interface {
	// GetListing returns nil, nil on a cache miss.
	GetListing(ctx context.Context, id string) (*Listing, error)
	SetListing(ctx context.Context, listing *Listing) error
	DeleteListing(ctx context.Context, id string) error
}

type RedisListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisListingCache(client *redis.Client, ttl time.Duration) *RedisListingCache {
	return &RedisListingCache{client: client, ttl: ttl}
}

func listingKey(id string) string {
	return "kost:listing:" + id
}

func (c *RedisListingCache) GetListing(ctx context.Context, id string) (*Listing, error) {
	data, err := c.client.Get(ctx, listingKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var listing Listing
	if err := json.Unmarshal(data, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

func (c *RedisListingCache) SetListing(ctx context.Context, listing *Listing) error {
	data, err := json.Marshal(listing)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, listingKey(listing.ID.Hex()), data, c.ttl).Err()
}

func (c *RedisListingCache) DeleteListing(ctx context.Context, id string) error {
	return c.client.Del(ctx, listingKey(id)).Err()
}

// NopListingCache never hits; used when no Redis is configured.
type NopListingCache struct{}

func (NopListingCache) GetListing(context.Context, string) (*Listing, error) { return nil, nil }
func (NopListingCache) SetListing(context.Context, *Listing) error           { return nil }
func (NopListingCache) DeleteListing(context.Context, string) error          { return nil }
