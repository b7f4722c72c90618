package cart

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []Item {
	return []Item{
		{ProductID: "p1", Name: "Brass Diya", UnitPrice: 1500, Quantity: 2, Category: "Lamps"},
		{ProductID: "p2", Name: "Incense Holder", UnitPrice: 900, Quantity: 1, Category: "Incense"},
	}
}

func TestSubtotalAndCount(t *testing.T) {
	items := sampleItems()
	assert.Equal(t, 3900.0, Subtotal(items))
	assert.Equal(t, 3, Count(items))

	assert.Equal(t, 0.0, Subtotal(nil))
	assert.Equal(t, 0, Count(nil))
}

func TestAddMergesByProductID(t *testing.T) {
	items := sampleItems()
	got := Add(items, Item{ProductID: "p1", Name: "Brass Diya", UnitPrice: 1500, Quantity: 3})

	require.Len(t, got, 2)
	assert.Equal(t, 5, got[0].Quantity)
	// Input untouched
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddAppendsNewProduct(t *testing.T) {
	got := Add(sampleItems(), Item{ProductID: "p3", Name: "Camphor Burner", UnitPrice: 275, Quantity: 1})

	require.Len(t, got, 3)
	assert.Equal(t, "p3", got[2].ProductID)
}

func TestAddClampsQuantity(t *testing.T) {
	got := Add(nil, Item{ProductID: "p1", Name: "Brass Diya", Quantity: 0})

	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Quantity)
}

func TestUpdateQuantityIncrement(t *testing.T) {
	got := UpdateQuantity(sampleItems(), "p2", 2)

	require.Len(t, got, 2)
	assert.Equal(t, 3, got[1].Quantity)
}

func TestUpdateQuantityBelowOneRemovesLine(t *testing.T) {
	got := UpdateQuantity(sampleItems(), "p2", -1)

	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ProductID)

	for _, item := range got {
		assert.GreaterOrEqual(t, item.Quantity, 1)
	}
}

func TestRemove(t *testing.T) {
	got := Remove(sampleItems(), "p1")

	require.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ProductID)

	assert.Len(t, Remove(got, "does-not-exist"), 1)
}

func TestUnmarshalLegacyKeys(t *testing.T) {
	payload := `{"id": "p9", "name": "Clay Diya", "price": 350, "quantity": 4}`

	var item Item
	require.NoError(t, json.Unmarshal([]byte(payload), &item))

	assert.Equal(t, "p9", item.ProductID)
	assert.Equal(t, 350.0, item.UnitPrice)
	assert.Equal(t, 4, item.Quantity)
}

func TestUnmarshalCurrentKeysWinOverLegacy(t *testing.T) {
	payload := `{"product_id": "p1", "id": "old", "unit_price": 100, "price": 999, "name": "X", "quantity": 1}`

	var item Item
	require.NoError(t, json.Unmarshal([]byte(payload), &item))

	assert.Equal(t, "p1", item.ProductID)
	assert.Equal(t, 100.0, item.UnitPrice)
}

func TestMemoryRepositoryRoundTrip(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	items, err := repo.Get(ctx, "cart-1")
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, repo.Set(ctx, "cart-1", sampleItems()))

	items, err = repo.Get(ctx, "cart-1")
	require.NoError(t, err)
	assert.Equal(t, sampleItems(), items)
}

func TestMemoryRepositoryEmptySetRemovesKey(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "cart-1", sampleItems()))
	require.True(t, repo.Exists("cart-1"))

	// Saving an empty cart removes the stored key rather than keeping an
	// empty list around
	require.NoError(t, repo.Set(ctx, "cart-1", nil))
	assert.False(t, repo.Exists("cart-1"))
}

func TestMemoryRepositoryClear(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "cart-1", sampleItems()))
	require.NoError(t, repo.Clear(ctx, "cart-1"))

	assert.False(t, repo.Exists("cart-1"))

	// Clearing an absent cart is not an error
	assert.NoError(t, repo.Clear(ctx, "never-existed"))
}
