package product_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/TribeTek-pvt-ltd/grazie-store-backend/catalog"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/config"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAllStorefrontProducts godoc
// @Summary Full public product list
// @Description Every product including out-of-stock ones, for clients that fetch once and filter locally. No server-side filtering is applied here.
// @Tags Store - Products
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/store/products/all [get]
func GetAllStorefrontProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	var rows []models.Product
	err := config.StoreGorm.WithContext(ctx).
		Preload("Category").
		Preload("Material").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary DESC, position ASC")
		}).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		log.Printf("[store.products] full list query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	products := catalog.FromModels(rows)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", gin.H{
		"products": products,
		"total":    len(products),
	}))
}
