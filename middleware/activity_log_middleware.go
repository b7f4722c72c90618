package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/TribeTek-pvt-ltd/grazie-store-backend/config"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/models"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ════════════════════════════════════════════════════════════
// Configuration Maps
// ════════════════════════════════════════════════════════════

// pathToResourceType maps URL path segments to resource types
var pathToResourceType = map[string]string{
	"products":     models.ResourceTypeProduct,
	"categories":   models.ResourceTypeCategory,
	"materials":    models.ResourceTypeMaterial,
	"testimonials": models.ResourceTypeTestimonial,
}

// resourceTypeToNameField maps resource types to their display-name field
var resourceTypeToNameField = map[string]string{
	models.ResourceTypeProduct:     "name",
	models.ResourceTypeCategory:    "name",
	models.ResourceTypeMaterial:    "name",
	models.ResourceTypeTestimonial: "name",
}

// methodToActionVerb maps HTTP methods to action verbs
var methodToActionVerb = map[string]string{
	"POST":   "created",
	"PATCH":  "updated",
	"PUT":    "updated",
	"DELETE": "deleted",
}

// ════════════════════════════════════════════════════════════
// Activity Logging Middleware
// ════════════════════════════════════════════════════════════

// ActivityLoggingMiddleware logs admin mutations automatically.
// Must be used AFTER AdminAuthMiddleware (which sets adminID and adminEmail).
func ActivityLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Only mutations are logged
		if c.Request.Method == "GET" {
			c.Next()
			return
		}

		adminIDRaw, adminIDExists := c.Get("adminID")
		adminEmailRaw, adminEmailExists := c.Get("adminEmail")

		if !adminIDExists || !adminEmailExists {
			log.Printf("[activity-logging] warning: admin info not in context")
			c.Next()
			return
		}

		adminID, err := uuid.Parse(adminIDRaw.(string))
		if err != nil {
			log.Printf("[activity-logging] failed to parse admin ID: %v", err)
			c.Next()
			return
		}
		adminEmail := adminEmailRaw.(string)

		resourceType := extractResourceType(c.Request.URL.Path)
		if resourceType == "" {
			log.Printf("[activity-logging] could not determine resource type from path: %s", c.Request.URL.Path)
			c.Next()
			return
		}

		resourceID := c.Param("id")

		actionVerb := methodToActionVerb[c.Request.Method]
		if actionVerb == "" {
			log.Printf("[activity-logging] unknown HTTP method: %s", c.Request.Method)
			c.Next()
			return
		}

		// created_product, updated_testimonial, ...
		action := actionVerb + "_" + resourceType

		// Fetch "before" object from DB (only for updates and deletes)
		var beforeObject interface{}
		if c.Request.Method != "POST" && resourceID != "" {
			beforeObject = fetchResourceFromDB(resourceType, resourceID)
		}

		resourceName := extractResourceName(resourceType, beforeObject)

		// Execute the handler
		c.Next()

		statusCode := c.Writer.Status()
		isSuccess := statusCode >= 200 && statusCode < 300

		if isSuccess {
			var afterObject interface{}
			if resourceID != "" {
				afterObject = fetchResourceFromDB(resourceType, resourceID)
			}

			updatedResourceName := extractResourceName(resourceType, afterObject)
			if updatedResourceName == "" {
				updatedResourceName = resourceName
			}

			services.LogActivity(services.LogActivityRequest{
				AdminID:      adminID,
				AdminEmail:   adminEmail,
				Action:       action,
				ResourceType: resourceType,
				ResourceID:   resourceID,
				ResourceName: updatedResourceName,
				Changes:      services.CreateChanges(beforeObject, afterObject),
				Status:       models.StatusSuccess,
				Context:      c,
			})
		} else {
			errorMsg := "Request failed with status " + http.StatusText(statusCode)

			services.LogActivity(services.LogActivityRequest{
				AdminID:      adminID,
				AdminEmail:   adminEmail,
				Action:       action,
				ResourceType: resourceType,
				ResourceID:   resourceID,
				ResourceName: resourceName,
				Status:       models.StatusFailed,
				ErrorMessage: errorMsg,
				Context:      c,
			})
		}
	}
}

// ════════════════════════════════════════════════════════════
// Helper Functions
// ════════════════════════════════════════════════════════════

// extractResourceType extracts resource type from URL path
// e.g., "/api/v1/admin/testimonials/123" → "testimonial"
func extractResourceType(path string) string {
	parts := strings.Split(path, "/")

	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] == "" || isIDSegment(parts[i]) {
			continue
		}
		if resourceType, exists := pathToResourceType[parts[i]]; exists {
			return resourceType
		}
	}

	return ""
}

// isIDSegment checks if a path segment is an ID parameter
func isIDSegment(segment string) bool {
	if segment == ":id" {
		return true
	}
	if _, err := uuid.Parse(segment); err == nil {
		return true
	}
	return false
}

// fetchResourceFromDB fetches a resource row for the before/after change set
func fetchResourceFromDB(resourceType, resourceID string) interface{} {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	switch resourceType {
	case models.ResourceTypeProduct:
		var product models.Product
		if err := config.StoreGorm.WithContext(ctx).First(&product, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch product %s: %v", resourceID, err)
			return nil
		}
		return product

	case models.ResourceTypeCategory:
		var category models.Category
		if err := config.StoreGorm.WithContext(ctx).First(&category, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch category %s: %v", resourceID, err)
			return nil
		}
		return category

	case models.ResourceTypeMaterial:
		var material models.Material
		if err := config.StoreGorm.WithContext(ctx).First(&material, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch material %s: %v", resourceID, err)
			return nil
		}
		return material

	case models.ResourceTypeTestimonial:
		var testimonial models.Testimonial
		if err := config.StoreGorm.WithContext(ctx).First(&testimonial, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch testimonial %s: %v", resourceID, err)
			return nil
		}
		return testimonial

	default:
		log.Printf("[activity-logging] unknown resource type: %s", resourceType)
		return nil
	}
}

// extractResourceName extracts the display name from a resource object
func extractResourceName(resourceType string, obj interface{}) string {
	if obj == nil {
		return ""
	}

	data, err := json.Marshal(obj)
	if err != nil {
		return ""
	}

	var resourceMap map[string]interface{}
	if err := json.Unmarshal(data, &resourceMap); err != nil {
		return ""
	}

	fieldName := resourceTypeToNameField[resourceType]
	if fieldName == "" {
		return ""
	}

	if value, exists := resourceMap[fieldName]; exists {
		return toString(value)
	}

	return ""
}

// toString converts any value to string
func toString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(data)
	}
}
