package cms_routes

import (
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/controllers/cms/category_controller"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupCategoryRoutes(rg *gin.RouterGroup) {
	category := rg.Group("/categories")
	category.Use(middleware.AdminAuthMiddleware())

	category.GET("", category_controller.GetCategories)

	logged := category.Group("")
	logged.Use(middleware.ActivityLoggingMiddleware())
	{
		logged.POST("", category_controller.CreateCategory)
		logged.PATCH("/:id", category_controller.UpdateCategory)
		logged.DELETE("/:id", category_controller.DeleteCategory)
	}
}
