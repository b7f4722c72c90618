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

// DeleteTestimonial godoc
// @Summary Delete a testimonial
// @Tags CMS - Testimonials
// @Produce json
// @Param id path string true "Testimonial UUID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/testimonials/{id} [delete]
func DeleteTestimonial(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid testimonial ID"))
		return
	}

	var testimonial models.Testimonial
	if err := config.StoreGorm.WithContext(ctx).First(&testimonial, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Testimonial not found"))
			return
		}
		log.Printf("[testimonial.delete] lookup failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch testimonial"))
		return
	}

	if err := config.StoreGorm.WithContext(ctx).Delete(&models.Testimonial{}, "id = ?", id).Error; err != nil {
		log.Printf("[testimonial.delete] failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete testimonial"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Testimonial deleted successfully", gin.H{"id": id}))
}
