package auth

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/TribeTek-pvt-ltd/grazie-store-backend/config"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/models"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/services"
	"github.com/gin-gonic/gin"
)

// AdminRegister godoc
// @Summary Register a new admin
// @Description Creates a back-office account. Only callable by an authenticated admin; there is no self-service signup.
// @Tags CMS - Auth
// @Accept json
// @Produce json
// @Param request body models.AdminRegisterRequest true "New admin details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/v1/admin/auth/register [post]
func AdminRegister(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	var req models.AdminRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return
	}

	authService := services.GetAdminAuthService()
	if err := authService.ValidatePassword(req.Password); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing int64
	if err := config.StoreGorm.WithContext(ctx).
		Model(&models.Admin{}).
		Where("email = ?", email).
		Count(&existing).Error; err != nil {
		log.Printf("[auth.register] email check failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create admin"))
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "An admin with this email already exists"))
		return
	}

	hash, err := authService.HashPassword(req.Password)
	if err != nil {
		log.Printf("[auth.register] password hash failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create admin"))
		return
	}

	admin := models.Admin{
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		Status:       "active",
	}
	if err := config.StoreGorm.WithContext(ctx).Create(&admin).Error; err != nil {
		log.Printf("[auth.register] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create admin"))
		return
	}

	log.Printf("[auth.register] created admin %s", admin.Email)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Admin created successfully", admin))
}
