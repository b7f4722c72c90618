package testimonial_controller

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/TribeTek-pvt-ltd/grazie-store-backend/config"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/models"
	"github.com/gin-gonic/gin"
)

// CreateTestimonial godoc
// @Summary Create a testimonial
// @Description New testimonials start active (visible on the storefront).
// @Tags CMS - Testimonials
// @Accept json
// @Produce json
// @Param request body models.TestimonialRequest true "Testimonial details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/admin/testimonials [post]
func CreateTestimonial(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	var req models.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	testimonial := models.Testimonial{
		Name:     strings.TrimSpace(req.Name),
		Content:  strings.TrimSpace(req.Content),
		Rating:   req.Rating,
		IsActive: isActive,
	}
	if testimonial.Name == "" || testimonial.Content == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Name and content are required"))
		return
	}

	if err := config.StoreGorm.WithContext(ctx).Create(&testimonial).Error; err != nil {
		log.Printf("[testimonial.create] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create testimonial"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Testimonial created successfully", testimonial))
}
