package auth

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/TribeTek-pvt-ltd/grazie-store-backend/config"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/middleware"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAdminMe godoc
// @Summary Current admin profile
// @Description Resolves the authenticated session token to the admin record.
// @Tags CMS - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /api/v1/admin/auth/me [get]
func GetAdminMe(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	var admin models.Admin
	if err := config.StoreGorm.WithContext(ctx).First(&admin, "id = ?", adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Account no longer exists"))
			return
		}
		log.Printf("[auth.me] lookup failed for %s: %v", adminID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch profile"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile fetched successfully", admin))
}
