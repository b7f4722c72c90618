package cms_routes

import (
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/controllers/cms/product_controller"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupProductRoutes(rg *gin.RouterGroup) {
	product := rg.Group("/products")
	product.Use(middleware.AdminAuthMiddleware())

	// Reads
	product.GET("", product_controller.GetProducts)
	product.GET("/export/pdf", product_controller.ExportCatalogPDF)
	product.GET("/:id", product_controller.GetProductByID)

	// Mutations carry the activity log
	logged := product.Group("")
	logged.Use(middleware.ActivityLoggingMiddleware())
	{
		logged.POST("", product_controller.CreateProduct)
		logged.PATCH("/:id", product_controller.UpdateProduct)
		logged.PUT("/:id/images", product_controller.ReplaceProductImages)
		logged.DELETE("/:id", product_controller.DeleteProduct)
	}
}
