package testimonial_controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/TribeTek-pvt-ltd/grazie-store-backend/config"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateTestimonial godoc
// @Summary Update a testimonial
// @Tags CMS - Testimonials
// @Accept json
// @Produce json
// @Param id path string true "Testimonial UUID"
// @Param request body models.UpdateTestimonialRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/testimonials/{id} [patch]
func UpdateTestimonial(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid testimonial ID"))
		return
	}

	var req models.UpdateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return
	}

	var testimonial models.Testimonial
	if err := config.StoreGorm.WithContext(ctx).First(&testimonial, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Testimonial not found"))
			return
		}
		log.Printf("[testimonial.update] lookup failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch testimonial"))
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Name cannot be empty"))
			return
		}
		updates["name"] = name
	}
	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if content == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Content cannot be empty"))
			return
		}
		updates["content"] = content
	}
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Rating must be between 1 and 5"))
			return
		}
		updates["rating"] = *req.Rating
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := config.StoreGorm.WithContext(ctx).Model(&testimonial).Updates(updates).Error; err != nil {
		log.Printf("[testimonial.update] failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update testimonial"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Testimonial updated successfully", testimonial))
}
