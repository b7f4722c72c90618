package cms_routes

import (
	"time"

	"github.com/TribeTek-pvt-ltd/grazie-store-backend/controllers/cms/admin_controller"
	admin_auth "github.com/TribeTek-pvt-ltd/grazie-store-backend/controllers/cms/admin_controller/auth"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes sets up the auth and admin management routes
func SetupAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════

	admin.POST("/auth/login", middleware.RateLimiter(10, time.Minute), admin_auth.AdminLogin)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		// Auth
		protected.POST("/auth/logout", admin_auth.AdminLogout)
		protected.POST("/auth/register", admin_auth.AdminRegister)
		protected.GET("/auth/me", admin_auth.GetAdminMe)

		// Activity logs
		protected.GET("/activity-logs", admin_controller.GetActivityLogs)
	}
}
