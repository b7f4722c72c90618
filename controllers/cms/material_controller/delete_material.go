package material_controller

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

// DeleteMaterial godoc
// @Summary Delete a material
// @Description Products referencing the material keep their material_id; their material label renders empty afterwards.
// @Tags CMS - Materials
// @Produce json
// @Param id path string true "Material UUID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/materials/{id} [delete]
func DeleteMaterial(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid material ID"))
		return
	}

	var material models.Material
	if err := config.StoreGorm.WithContext(ctx).First(&material, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Material not found"))
			return
		}
		log.Printf("[material.delete] lookup failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch material"))
		return
	}

	if err := config.StoreGorm.WithContext(ctx).Delete(&models.Material{}, "id = ?", id).Error; err != nil {
		log.Printf("[material.delete] failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete material"))
		return
	}

	filter_cache.Invalidate()

	log.Printf("[material.delete] deleted %s (%s)", material.Name, id)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Material deleted successfully", gin.H{"id": id}))
}
