package catalog

import (
	"testing"

	"github.com/TribeTek-pvt-ltd/grazie-store-backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromModelDanglingReferences(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV7())
	row := models.Product{
		ID:         uuid.Must(uuid.NewV7()),
		Name:       "Brass Diya",
		Price:      1500,
		CategoryID: &categoryID,
		// Category and Material rows deleted: preloads came back nil
		Category: nil,
		Material: nil,
	}

	got := FromModel(row)

	assert.Equal(t, categoryID.String(), got.CategoryID)
	assert.Equal(t, "", got.CategoryName)
	assert.Equal(t, "", got.MaterialName)
}

func TestFromModelImageOrdering(t *testing.T) {
	row := models.Product{
		ID:   uuid.Must(uuid.NewV7()),
		Name: "Brass Diya",
		Images: []models.ProductImage{
			{ImageURL: "second.jpg", IsPrimary: false, Position: 1},
			{ImageURL: "primary.jpg", IsPrimary: true, Position: 2},
			{ImageURL: "first.jpg", IsPrimary: false, Position: 0},
		},
	}

	got := FromModel(row)

	require.Len(t, got.ImageURLs, 3)
	assert.Equal(t, []string{"primary.jpg", "first.jpg", "second.jpg"}, got.ImageURLs)
}

func TestFromModelsPreservesOrder(t *testing.T) {
	rows := []models.Product{
		{ID: uuid.Must(uuid.NewV7()), Name: "A"},
		{ID: uuid.Must(uuid.NewV7()), Name: "B"},
	}

	got := FromModels(rows)

	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Name)
	assert.Equal(t, "B", got[1].Name)
	assert.NotNil(t, got[0].ImageURLs)
}
