package category_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/TribeTek-pvt-ltd/grazie-store-backend/config"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/models"
	"github.com/gin-gonic/gin"
)

// GetCategories godoc
// @Summary List categories
// @Description All categories, alphabetical, with a live product count per category.
// @Tags CMS - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/categories [get]
func GetCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	type categoryWithCount struct {
		models.Category
		ProductCount int64 `json:"product_count"`
	}

	var categories []models.Category
	if err := config.StoreGorm.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		log.Printf("[category.list] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	result := make([]categoryWithCount, 0, len(categories))
	for _, category := range categories {
		var count int64
		if err := config.StoreGorm.WithContext(ctx).
			Model(&models.Product{}).
			Where("category_id = ?", category.ID).
			Count(&count).Error; err != nil {
			log.Printf("[category.list] count failed for %s: %v", category.ID, err)
		}
		result = append(result, categoryWithCount{Category: category, ProductCount: count})
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", result))
}
