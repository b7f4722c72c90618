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

// GetActiveTestimonials godoc
// @Summary Public testimonials
// @Description Only testimonials an admin has left visible, newest first.
// @Tags Store - Testimonials
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/store/testimonials [get]
func GetActiveTestimonials(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	var testimonials []models.Testimonial
	err := config.StoreGorm.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&testimonials).Error
	if err != nil {
		log.Printf("[store.testimonials] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch testimonials"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Testimonials fetched successfully", testimonials))
}
