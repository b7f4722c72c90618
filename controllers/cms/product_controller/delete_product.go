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

// DeleteProduct godoc
// @Summary Delete a product
// @Description Deletes the product's image rows, then the product row. Cloudinary assets are cleaned up in the background; an images-deleted-but-product-remains state is possible if the second statement fails.
// @Tags CMS - Products
// @Produce json
// @Param id path string true "Product UUID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var product models.Product
	if err := config.StoreGorm.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[product.delete] lookup failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	// Image rows first, then the product. Not wrapped in a transaction, so
	// a failure here can leave the product row behind with no images.
	if err := config.StoreGorm.WithContext(ctx).
		Where("product_id = ?", id).
		Delete(&models.ProductImage{}).Error; err != nil {
		log.Printf("[product.delete] failed to delete image rows for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product images"))
		return
	}

	if err := config.StoreGorm.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error; err != nil {
		log.Printf("[product.delete] failed to delete product %s after images were removed: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}

	filter_cache.Invalidate()

	// Cloudinary cleanup runs in the background; the response does not wait on it.
	go func(productID uuid.UUID) {
		bgCtx, bgCancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer bgCancel()
		folder := "grazie/products/" + productID.String()
		if err := cloudinaryService.DeleteFolder(bgCtx, folder); err != nil {
			log.Printf("[product.delete] cloudinary cleanup failed for %s: %v", folder, err)
		}
	}(id)

	log.Printf("[product.delete] deleted %s (%s)", product.Name, id)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", gin.H{"id": id}))
}
