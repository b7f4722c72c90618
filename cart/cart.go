// Package cart models the customer's cart: a list of line items persisted
// under a single cart identifier. Business rules live here; storage is behind
// the Repository interface so the storefront never touches a storage API
// directly.
package cart

import "encoding/json"

// Item is one cart line. Quantity is always >= 1; decrementing a line below 1
// removes it from the cart entirely.
type Item struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Category  string  `json:"category"`
}

// UnmarshalJSON normalizes the historical client payload shapes into the one
// stable item shape. Old storefront versions wrote "id"/"price" instead of
// "product_id"/"unit_price"; carts persisted by them must still load.
func (i *Item) UnmarshalJSON(data []byte) error {
	var raw struct {
		ProductID string   `json:"product_id"`
		LegacyID  *string  `json:"id"`
		Name      string   `json:"name"`
		UnitPrice *float64 `json:"unit_price"`
		Price     *float64 `json:"price"`
		Quantity  int      `json:"quantity"`
		Category  string   `json:"category"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	i.ProductID = raw.ProductID
	if i.ProductID == "" && raw.LegacyID != nil {
		i.ProductID = *raw.LegacyID
	}
	i.Name = raw.Name
	switch {
	case raw.UnitPrice != nil:
		i.UnitPrice = *raw.UnitPrice
	case raw.Price != nil:
		i.UnitPrice = *raw.Price
	}
	i.Quantity = raw.Quantity
	i.Category = raw.Category
	return nil
}

// Total is the line's extended price.
func (i Item) Total() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// Subtotal sums the extended price of every line.
func Subtotal(items []Item) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Total()
	}
	return sum
}

// Count is the total number of units across all lines.
func Count(items []Item) int {
	n := 0
	for _, item := range items {
		n += item.Quantity
	}
	return n
}

// Add merges an item into the cart: an existing line for the same product
// gains its quantity, a new product appends. Quantities below 1 are treated
// as 1. The input slice is not mutated.
func Add(items []Item, item Item) []Item {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	out := make([]Item, len(items))
	copy(out, items)
	for idx := range out {
		if out[idx].ProductID == item.ProductID {
			out[idx].Quantity += item.Quantity
			return out
		}
	}
	return append(out, item)
}

// UpdateQuantity applies a delta to a product's quantity. A line dropping
// below 1 is removed from the cart; it is never stored with quantity < 1.
func UpdateQuantity(items []Item, productID string, delta int) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if item.ProductID == productID {
			item.Quantity += delta
			if item.Quantity < 1 {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}

// Remove drops a product's line from the cart.
func Remove(items []Item, productID string) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if item.ProductID != productID {
			out = append(out, item)
		}
	}
	return out
}
