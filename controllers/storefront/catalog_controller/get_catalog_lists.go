package catalog_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/TribeTek-pvt-ltd/grazie-store-backend/config"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/models"
	"github.com/gin-gonic/gin"
)

// GetStorefrontCategories godoc
// @Summary Public category list
// @Tags Store - Catalog
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/store/categories [get]
func GetStorefrontCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	var categories []models.Category
	if err := config.StoreGorm.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		log.Printf("[store.categories] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", categories))
}

// GetStorefrontMaterials godoc
// @Summary Public material list
// @Tags Store - Catalog
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/store/materials [get]
func GetStorefrontMaterials(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	var materials []models.Material
	if err := config.StoreGorm.WithContext(ctx).Order("name ASC").Find(&materials).Error; err != nil {
		log.Printf("[store.materials] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch materials"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Materials fetched successfully", materials))
}
