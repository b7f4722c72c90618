package product_controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	filter_cache "github.com/TribeTek-pvt-ltd/grazie-store-backend/cache"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/config"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateProduct godoc
// @Summary Update a product
// @Description Partial update. Only fields present in the body are changed; images are managed through the separate images endpoint.
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Param id path string true "Product UUID"
// @Param request body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return
	}

	var product models.Product
	if err := config.StoreGorm.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[product.update] lookup failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Price must be greater than zero"))
			return
		}
		updates["price"] = *req.Price
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Stock cannot be negative"))
			return
		}
		updates["stock"] = *req.Stock
	}
	if req.CategoryID != nil {
		updates["category_id"] = req.CategoryID
	}
	if req.MaterialID != nil {
		updates["material_id"] = req.MaterialID
	}
	if req.DeliveryDays != nil {
		if *req.DeliveryDays < 1 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Delivery days must be at least 1"))
			return
		}
		updates["delivery_days"] = *req.DeliveryDays
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := config.StoreGorm.WithContext(ctx).Model(&product).Updates(updates).Error; err != nil {
		log.Printf("[product.update] update failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}

	filter_cache.Invalidate()

	var updated models.Product
	if err := config.StoreGorm.WithContext(ctx).
		Preload("Category").
		Preload("Material").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary DESC, position ASC")
		}).
		First(&updated, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", product))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", updated))
}
