package cart

import "context"

// Repository persists carts by cart identifier. An absent cart reads as an
// empty item list; storing an empty list removes the cart entirely rather
// than keeping an empty record around.
type Repository interface {
	Get(ctx context.Context, cartID string) ([]Item, error)
	Set(ctx context.Context, cartID string, items []Item) error
	Clear(ctx context.Context, cartID string) error
}
