package category_controller

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

// DeleteCategory godoc
// @Summary Delete a category
// @Description The category row is removed without touching products; products pointing at it keep a dangling category_id and render with an empty category label.
// @Tags CMS - Categories
// @Produce json
// @Param id path string true "Category UUID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	var category models.Category
	if err := config.StoreGorm.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
			return
		}
		log.Printf("[category.delete] lookup failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch category"))
		return
	}

	if err := config.StoreGorm.WithContext(ctx).Delete(&models.Category{}, "id = ?", id).Error; err != nil {
		log.Printf("[category.delete] failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete category"))
		return
	}

	filter_cache.Invalidate()

	log.Printf("[category.delete] deleted %s (%s)", category.Name, id)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category deleted successfully", gin.H{"id": id}))
}
