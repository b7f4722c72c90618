package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureProducts() []Product {
	return []Product{
		{ID: "p1", Name: "Brass Diya", Description: "Traditional oil lamp", Price: 1500, CategoryID: "cat-1", CategoryName: "Lamps", MaterialName: "Brass"},
		{ID: "p2", Name: "Clay Diya", Description: "Handmade clay lamp", Price: 350, CategoryID: "cat-1", CategoryName: "Lamps", MaterialName: "Clay"},
		{ID: "p3", Name: "Incense Holder", Description: "Carved wooden stand", Price: 900, CategoryID: "cat-2", CategoryName: "Incense", MaterialName: "Wood"},
		{ID: "p4", Name: "Silver Pooja Thali", Description: "Engraved ritual plate", Price: 4800, CategoryID: "cat-3", CategoryName: "Pooja Items", MaterialName: "Silver"},
		{ID: "p5", Name: "Brass Bell", Description: "Temple bell with handle", Price: 2200, CategoryID: "cat-3", CategoryName: "Pooja Items", MaterialName: "Brass"},
		{ID: "p6", Name: "Sandalwood Incense", Description: "Pack of 50 sticks", Price: 450, CategoryID: "cat-2", CategoryName: "Incense", MaterialName: ""},
		{ID: "p7", Name: "Copper Kalash", Description: "Water vessel for rituals", Price: 3100, CategoryID: "cat-3", CategoryName: "Pooja Items", MaterialName: "Copper"},
		{ID: "p8", Name: "Brass Oil Lamp Stand", Description: "Five tier stand", Price: 5000, CategoryID: "cat-1", CategoryName: "Lamps", MaterialName: "Brass"},
		{ID: "p9", Name: "Camphor Burner", Description: "Small clay burner", Price: 275, CategoryID: "cat-2", CategoryName: "Incense", MaterialName: "Clay"},
		{ID: "p10", Name: "Deity Statue", Description: "Hand painted resin statue", Price: 6500, CategoryID: "cat-3", CategoryName: "Pooja Items", MaterialName: ""},
	}
}

func TestApplyIdentityOnZeroState(t *testing.T) {
	products := fixtureProducts()
	got := Apply(products, FilterState{})

	assert.Equal(t, products, got)
}

func TestApplyReturnsSubsetInOrder(t *testing.T) {
	products := fixtureProducts()
	got := Apply(products, FilterState{Material: "Brass"})

	require.Len(t, got, 3)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p5", got[1].ID)
	assert.Equal(t, "p8", got[2].ID)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	products := fixtureProducts()
	before := fixtureProducts()

	Apply(products, FilterState{Query: "diya"})
	assert.Equal(t, before, products)
}

func TestApplyIsIdempotent(t *testing.T) {
	state := FilterState{CategoryID: "cat-2"}
	once := Apply(fixtureProducts(), state)
	twice := Apply(once, state)

	assert.Equal(t, once, twice)
}

func TestQueryMatchesNameOrDescription(t *testing.T) {
	products := fixtureProducts()

	byName := Apply(products, FilterState{Query: "DIYA"})
	require.Len(t, byName, 2)

	byDesc := Apply(products, FilterState{Query: "ritual"})
	require.Len(t, byDesc, 2)
	assert.Equal(t, "p4", byDesc[0].ID)
	assert.Equal(t, "p7", byDesc[1].ID)
}

func TestPredicatesCombineWithAnd(t *testing.T) {
	min, max := 1000.0, 5000.0
	state := FilterState{
		CategoryID: "cat-1",
		MinPrice:   &min,
		MaxPrice:   &max,
	}
	got := Apply(fixtureProducts(), state)

	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p8", got[1].ID)
}

func TestPriceBoundsAreInclusive(t *testing.T) {
	min, max := 350.0, 350.0
	got := Apply(fixtureProducts(), FilterState{MinPrice: &min, MaxPrice: &max})

	require.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)
}

func TestMaterialIsExactMatch(t *testing.T) {
	got := Apply(fixtureProducts(), FilterState{Material: "Bra"})
	assert.Empty(t, got)
}

func TestNoMatchesYieldsEmptyNotNilError(t *testing.T) {
	got := Apply(fixtureProducts(), FilterState{Query: "no such product"})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestActiveFilters(t *testing.T) {
	assert.Equal(t, 0, FilterState{}.ActiveFilters())

	min := 100.0
	max := 200.0
	state := FilterState{Query: "diya", Material: "Brass", MinPrice: &min, MaxPrice: &max}
	// Min and max price badge as a single group
	assert.Equal(t, 3, state.ActiveFilters())

	state.CategoryID = "cat-1"
	assert.Equal(t, 4, state.ActiveFilters())
}

func TestReset(t *testing.T) {
	min := 100.0
	state := FilterState{Query: "diya", CategoryID: "cat-1", Material: "Brass", MinPrice: &min}
	require.False(t, state.IsZero())

	state.Reset()
	assert.True(t, state.IsZero())
	assert.Equal(t, fixtureProducts(), Apply(fixtureProducts(), state))
}
