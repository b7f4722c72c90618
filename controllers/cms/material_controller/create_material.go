package material_controller

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	filter_cache "github.com/TribeTek-pvt-ltd/grazie-store-backend/cache"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/config"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/models"
	"github.com/gin-gonic/gin"
)

// CreateMaterial godoc
// @Summary Create a material
// @Tags CMS - Materials
// @Accept json
// @Produce json
// @Param request body models.MaterialRequest true "Material details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/v1/admin/materials [post]
func CreateMaterial(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	var req models.MaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return
	}

	material := models.Material{Name: strings.TrimSpace(req.Name)}
	if material.Name == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Material name is required"))
		return
	}

	if err := config.StoreGorm.WithContext(ctx).Create(&material).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "A material with this name already exists"))
			return
		}
		log.Printf("[material.create] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create material"))
		return
	}

	filter_cache.Invalidate()

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Material created successfully", material))
}
