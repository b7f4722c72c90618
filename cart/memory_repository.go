package cart

import (
	"context"
	"sync"
)

// MemoryRepository is an in-process Repository used in tests and as a
// fallback when no Redis is configured. It keeps the same key semantics as
// the Redis store: empty carts are absent, not stored.
type MemoryRepository struct {
	mu    sync.RWMutex
	carts map[string][]Item
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{carts: make(map[string][]Item)}
}

func (r *MemoryRepository) Get(ctx context.Context, cartID string) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items, ok := r.carts[cartID]
	if !ok {
		return []Item{}, nil
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out, nil
}

func (r *MemoryRepository) Set(ctx context.Context, cartID string, items []Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(items) == 0 {
		delete(r.carts, cartID)
		return nil
	}
	stored := make([]Item, len(items))
	copy(stored, items)
	r.carts[cartID] = stored
	return nil
}

func (r *MemoryRepository) Clear(ctx context.Context, cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, cartID)
	return nil
}

// Exists reports whether a cart key is present (test helper for the
// empty-cart-removes-key invariant).
func (r *MemoryRepository) Exists(cartID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.carts[cartID]
	return ok
}
