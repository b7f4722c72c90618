package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "cart:"

	// Abandoned carts expire after 30 days
	cartTTL = 30 * 24 * time.Hour
)

// RedisRepository stores each cart as a JSON-encoded array under a single key.
type RedisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

func cartKey(cartID string) string {
	return keyPrefix + cartID
}

// Get loads a cart. A missing key means an empty cart, not an error.
func (r *RedisRepository) Get(ctx context.Context, cartID string) ([]Item, error) {
	data, err := r.client.Get(ctx, cartKey(cartID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return []Item{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart %s: %w", cartID, err)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart %s: %w", cartID, err)
	}
	return items, nil
}

// Set stores a cart. An empty item list deletes the key instead of storing an
// empty array.
func (r *RedisRepository) Set(ctx context.Context, cartID string, items []Item) error {
	if len(items) == 0 {
		return r.Clear(ctx, cartID)
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart %s: %w", cartID, err)
	}
	if err := r.client.Set(ctx, cartKey(cartID), data, cartTTL).Err(); err != nil {
		return fmt.Errorf("failed to store cart %s: %w", cartID, err)
	}
	return nil
}

// Clear removes the cart key.
func (r *RedisRepository) Clear(ctx context.Context, cartID string) error {
	if err := r.client.Del(ctx, cartKey(cartID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart %s: %w", cartID, err)
	}
	return nil
}
