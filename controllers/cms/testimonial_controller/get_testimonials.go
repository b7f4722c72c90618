package testimonial_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/TribeTek-pvt-ltd/grazie-store-backend/config"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/models"
	"github.com/gin-gonic/gin"
)

// GetTestimonials godoc
// @Summary List testimonials
// @Description All testimonials for the back office, newest first, including hidden ones.
// @Tags CMS - Testimonials
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/testimonials [get]
func GetTestimonials(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	var testimonials []models.Testimonial
	if err := config.StoreGorm.WithContext(ctx).Order("created_at DESC").Find(&testimonials).Error; err != nil {
		log.Printf("[testimonial.list] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch testimonials"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Testimonials fetched successfully", testimonials))
}
