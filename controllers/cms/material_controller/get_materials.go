package material_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/TribeTek-pvt-ltd/grazie-store-backend/config"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/models"
	"github.com/gin-gonic/gin"
)

// GetMaterials godoc
// @Summary List materials
// @Tags CMS - Materials
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/materials [get]
func GetMaterials(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	var materials []models.Material
	if err := config.StoreGorm.WithContext(ctx).Order("name ASC").Find(&materials).Error; err != nil {
		log.Printf("[material.list] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch materials"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Materials fetched successfully", materials))
}
