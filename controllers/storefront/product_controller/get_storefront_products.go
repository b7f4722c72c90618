package product_controller

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/TribeTek-pvt-ltd/grazie-store-backend/catalog"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/config"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetStorefrontProducts godoc
// @Summary Public product list
// @Description In-stock products, newest first, normalized to the storefront shape. Optional query parameters apply the catalog filters server-side (text search, category, material, price bounds) so the response already matches the shopper's filter state.
// @Tags Store - Products
// @Produce json
// @Param q query string false "Substring match on name or description (case-insensitive)"
// @Param category query string false "Category UUID"
// @Param material query string false "Material name (exact)"
// @Param min_price query number false "Minimum price, inclusive"
// @Param max_price query number false "Maximum price, inclusive"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	var rows []models.Product
	err := config.StoreGorm.WithContext(ctx).
		Preload("Category").
		Preload("Material").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary DESC, position ASC")
		}).
		Where("stock > 0").
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		log.Printf("[store.products] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	products := catalog.FromModels(rows)

	state := filterStateFromQuery(c)
	filtered := catalog.Apply(products, state)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", gin.H{
		"products":       filtered,
		"total":          len(filtered),
		"active_filters": state.ActiveFilters(),
	}))
}

func filterStateFromQuery(c *gin.Context) catalog.FilterState {
	state := catalog.FilterState{
		Query:      c.Query("q"),
		CategoryID: c.Query("category"),
		Material:   c.Query("material"),
	}
	if raw := c.Query("min_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			state.MinPrice = &v
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			state.MaxPrice = &v
		}
	}
	return state
}
