package product_controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/TribeTek-pvt-ltd/grazie-store-backend/config"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReplaceProductImages godoc
// @Summary Replace a product's image set
// @Description Wholesale swap: new images are uploaded to Cloudinary first, then existing image rows are deleted and replaced. The first uploaded image becomes primary.
// @Tags CMS - Products
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Product UUID"
// @Param images formData file true "New product images (repeatable)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/products/{id}/images [put]
func ReplaceProductImages(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
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
		log.Printf("[product.images] lookup failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid multipart form"))
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "At least one image is required"))
		return
	}

	folder := "grazie/products/" + id.String()
	urls, err := cloudinaryService.UploadMultipleImages(ctx, files, folder)
	if err != nil {
		log.Printf("[product.images] upload failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload images"))
		return
	}

	// Old rows go first, then the replacements. A failure between the two
	// statements leaves the product temporarily without image rows.
	if err := config.StoreGorm.WithContext(ctx).
		Where("product_id = ?", id).
		Delete(&models.ProductImage{}).Error; err != nil {
		log.Printf("[product.images] failed to clear old images for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to replace images"))
		return
	}

	images := make([]models.ProductImage, 0, len(urls))
	for i, url := range urls {
		images = append(images, models.ProductImage{
			ProductID: id,
			ImageURL:  url,
			IsPrimary: i == 0,
			Position:  i,
		})
	}
	if err := config.StoreGorm.WithContext(ctx).Create(&images).Error; err != nil {
		log.Printf("[product.images] failed to insert new images for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to replace images"))
		return
	}

	log.Printf("[product.images] replaced images for %s (%d new)", id, len(images))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product images replaced successfully", images))
}
