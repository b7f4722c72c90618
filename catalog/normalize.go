package catalog

import (
	"sort"

	"github.com/TribeTek-pvt-ltd/grazie-store-backend/models"
)

// FromModel maps a database product row into the stable catalog shape.
// Dangling category/material references (row deleted after the product was
// created) normalize to empty labels instead of leaking nils downstream.
func FromModel(p models.Product) Product {
	out := Product{
		ID:           p.ID.String(),
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Stock:        p.Stock,
		DeliveryDays: p.DeliveryDays,
	}

	if p.CategoryID != nil {
		out.CategoryID = p.CategoryID.String()
	}
	if p.Category != nil {
		out.CategoryName = p.Category.Name
	}
	if p.Material != nil {
		out.MaterialName = p.Material.Name
	}

	// Primary image first, then admin-supplied ordering
	images := make([]models.ProductImage, len(p.Images))
	copy(images, p.Images)
	sort.SliceStable(images, func(i, j int) bool {
		if images[i].IsPrimary != images[j].IsPrimary {
			return images[i].IsPrimary
		}
		return images[i].Position < images[j].Position
	})
	out.ImageURLs = make([]string, 0, len(images))
	for _, img := range images {
		out.ImageURLs = append(out.ImageURLs, img.ImageURL)
	}

	return out
}

// FromModels maps a slice of rows, preserving order.
func FromModels(rows []models.Product) []Product {
	out := make([]Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromModel(row))
	}
	return out
}
