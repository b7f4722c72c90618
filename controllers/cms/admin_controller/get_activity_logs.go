package admin_controller

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/TribeTek-pvt-ltd/grazie-store-backend/config"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/models"
	"github.com/gin-gonic/gin"
)

// GetActivityLogs godoc
// @Summary List admin activity logs
// @Description Paginated audit trail of catalog mutations, newest first. Optional filters by resource type and admin email.
// @Tags CMS - Admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param resource_type query string false "product, category, material or testimonial"
// @Param admin_email query string false "Filter by admin email"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/activity-logs [get]
func GetActivityLogs(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := config.StoreGorm.WithContext(ctx).Model(&models.ActivityLog{})
	if resourceType := c.Query("resource_type"); resourceType != "" {
		query = query.Where("resource_type = ?", resourceType)
	}
	if adminEmail := c.Query("admin_email"); adminEmail != "" {
		query = query.Where("admin_email = ?", adminEmail)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("[admin.activity] count failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch activity logs"))
		return
	}

	var logs []models.ActivityLog
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&logs).Error; err != nil {
		log.Printf("[admin.activity] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch activity logs"))
		return
	}

	responses := make([]models.ActivityLogResponse, 0, len(logs))
	for _, entry := range logs {
		responses = append(responses, entry.ToResponse())
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Activity logs fetched successfully", responses, &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}))
}
