package auth

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/TribeTek-pvt-ltd/grazie-store-backend/config"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/models"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/services"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const adminTokenCookie = "admin_token"

// AdminLogin godoc
// @Summary Admin login
// @Description Verifies credentials and issues a 24h session token, set both as an HTTP cookie and returned in the body for clients that prefer the Authorization header.
// @Tags CMS - Auth
// @Accept json
// @Produce json
// @Param request body models.AdminLoginRequest true "Credentials"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 403 {object} models.ApiResponse
// @Router /api/v1/admin/auth/login [post]
func AdminLogin(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Email and password are required"))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var admin models.Admin
	err := config.StoreGorm.WithContext(ctx).First(&admin, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same response as a bad password so the endpoint does not
			// reveal which emails exist.
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
			return
		}
		log.Printf("[auth.login] lookup failed for %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Login failed"))
		return
	}

	authService := services.GetAdminAuthService()
	if !authService.VerifyPassword(admin.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	if admin.Status != "active" {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "This account has been suspended"))
		return
	}

	token, err := services.GenerateAdminJWT(admin.ID.String(), admin.Email, admin.Role)
	if err != nil {
		log.Printf("[auth.login] token generation failed for %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Login failed"))
		return
	}

	now := time.Now()
	if err := config.StoreGorm.WithContext(ctx).
		Model(&admin).
		Update("last_login_at", now).Error; err != nil {
		log.Printf("[auth.login] failed to update last_login_at for %s: %v", email, err)
	}
	admin.LastLoginAt = &now

	utils.LogLoginEvent(c, admin.ID, admin.Email)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(adminTokenCookie, token, int((24 * time.Hour).Seconds()), "/", "", false, true)

	log.Printf("[auth.login] %s logged in", admin.Email)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", models.AdminLoginResponse{
		Admin: admin,
		Token: token,
	}))
}
