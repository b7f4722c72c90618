package cms_routes

import (
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/controllers/cms/testimonial_controller"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupTestimonialRoutes(rg *gin.RouterGroup) {
	testimonial := rg.Group("/testimonials")
	testimonial.Use(middleware.AdminAuthMiddleware())

	testimonial.GET("", testimonial_controller.GetTestimonials)

	logged := testimonial.Group("")
	logged.Use(middleware.ActivityLoggingMiddleware())
	{
		logged.POST("", testimonial_controller.CreateTestimonial)
		logged.PATCH("/:id", testimonial_controller.UpdateTestimonial)
		logged.PATCH("/:id/status", testimonial_controller.UpdateTestimonialStatus)
		logged.DELETE("/:id", testimonial_controller.DeleteTestimonial)
	}
}
