package cms_routes

import (
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/controllers/cms/material_controller"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupMaterialRoutes(rg *gin.RouterGroup) {
	material := rg.Group("/materials")
	material.Use(middleware.AdminAuthMiddleware())

	material.GET("", material_controller.GetMaterials)

	logged := material.Group("")
	logged.Use(middleware.ActivityLoggingMiddleware())
	{
		logged.POST("", material_controller.CreateMaterial)
		logged.PATCH("/:id", material_controller.UpdateMaterial)
		logged.DELETE("/:id", material_controller.DeleteMaterial)
	}
}
