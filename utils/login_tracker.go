// ════════════════════════════════════════════════════════════
// Path: utils/login_tracker.go
// Track admin login events
// ════════════════════════════════════════════════════════════

package utils

import (
	"log"
	"strings"

	"github.com/TribeTek-pvt-ltd/grazie-store-backend/config"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LogLoginEvent records a successful admin login to the database
func LogLoginEvent(c *gin.Context, adminID uuid.UUID, email string) error {
	ctx := c.Request.Context()

	userAgent := c.GetHeader("User-Agent")

	event := models.AdminLoginEvent{
		AdminID:    adminID,
		AdminEmail: email,
		IPAddress:  c.ClientIP(),
		UserAgent:  userAgent,
		DeviceType: parseDeviceType(userAgent),
		Browser:    parseBrowser(userAgent),
	}

	if err := config.StoreGorm.WithContext(ctx).Create(&event).Error; err != nil {
		log.Printf("[login-tracker] failed to record login for %s: %v", email, err)
		return err
	}
	return nil
}

// parseDeviceType does a basic device classification from the user agent
func parseDeviceType(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "mobile"), strings.Contains(ua, "android"), strings.Contains(ua, "iphone"):
		return "mobile"
	case strings.Contains(ua, "tablet"), strings.Contains(ua, "ipad"):
		return "tablet"
	default:
		return "desktop"
	}
}

// parseBrowser extracts a rough browser family from the user agent
func parseBrowser(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "edg/"):
		return "edge"
	case strings.Contains(ua, "chrome"):
		return "chrome"
	case strings.Contains(ua, "safari") && !strings.Contains(ua, "chrome"):
		return "safari"
	case strings.Contains(ua, "firefox"):
		return "firefox"
	default:
		return "other"
	}
}
