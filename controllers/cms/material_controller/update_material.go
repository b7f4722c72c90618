package material_controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	filter_cache "github.com/TribeTek-pvt-ltd/grazie-store-backend/cache"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/config"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateMaterial godoc
// @Summary Rename a material
// @Tags CMS - Materials
// @Accept json
// @Produce json
// @Param id path string true "Material UUID"
// @Param request body models.MaterialRequest true "New name"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/materials/{id} [patch]
func UpdateMaterial(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid material ID"))
		return
	}

	var req models.MaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Material name is required"))
		return
	}

	var material models.Material
	if err := config.StoreGorm.WithContext(ctx).First(&material, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Material not found"))
			return
		}
		log.Printf("[material.update] lookup failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch material"))
		return
	}

	if err := config.StoreGorm.WithContext(ctx).Model(&material).Update("name", name).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "A material with this name already exists"))
			return
		}
		log.Printf("[material.update] failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update material"))
		return
	}

	filter_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Material updated successfully", material))
}
