package testimonial_controller

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

// UpdateTestimonialStatus godoc
// @Summary Show or hide a testimonial
// @Description Toggles storefront visibility without touching the testimonial content.
// @Tags CMS - Testimonials
// @Accept json
// @Produce json
// @Param id path string true "Testimonial UUID"
// @Param request body models.UpdateTestimonialStatusRequest true "Desired visibility"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/testimonials/{id}/status [patch]
func UpdateTestimonialStatus(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid testimonial ID"))
		return
	}

	var req models.UpdateTestimonialStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "is_active is required"))
		return
	}

	var testimonial models.Testimonial
	if err := config.StoreGorm.WithContext(ctx).First(&testimonial, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Testimonial not found"))
			return
		}
		log.Printf("[testimonial.status] lookup failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch testimonial"))
		return
	}

	if err := config.StoreGorm.WithContext(ctx).
		Model(&testimonial).
		Update("is_active", *req.IsActive).Error; err != nil {
		log.Printf("[testimonial.status] failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update testimonial status"))
		return
	}

	message := "Testimonial hidden successfully"
	if *req.IsActive {
		message = "Testimonial published successfully"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, testimonial))
}
