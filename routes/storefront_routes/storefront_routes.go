package storefront_routes

import (
	"time"

	store_cart "github.com/TribeTek-pvt-ltd/grazie-store-backend/controllers/storefront/cart_controller"
	store_catalog "github.com/TribeTek-pvt-ltd/grazie-store-backend/controllers/storefront/catalog_controller"
	store_filter "github.com/TribeTek-pvt-ltd/grazie-store-backend/controllers/storefront/filter_controller"
	store_order "github.com/TribeTek-pvt-ltd/grazie-store-backend/controllers/storefront/order_controller"
	store_product "github.com/TribeTek-pvt-ltd/grazie-store-backend/controllers/storefront/product_controller"
	store_testimonial "github.com/TribeTek-pvt-ltd/grazie-store-backend/controllers/storefront/testimonial_controller"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupStorefrontRoutes mounts the public shopper-facing routes. None of
// them require auth; order composition is rate limited since each call is
// an outbound WhatsApp handoff.
func SetupStorefrontRoutes(router *gin.RouterGroup) {
	store := router.Group("/store")

	// Products
	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts)
		products.GET("/all", store_product.GetAllStorefrontProducts)
		products.GET("/:id", store_product.GetStorefrontProductByID)
	}

	// Catalog lookups
	store.GET("/categories", store_catalog.GetStorefrontCategories)
	store.GET("/materials", store_catalog.GetStorefrontMaterials)
	store.GET("/testimonials", store_testimonial.GetActiveTestimonials)

	// Filter metadata
	store.GET("/filters/metadata", store_filter.GetFilterMetadata)

	// Cart
	cart := store.Group("/cart")
	{
		cart.GET("/:cartId", store_cart.GetCart)
		cart.PUT("/:cartId", store_cart.ReplaceCart)
		cart.DELETE("/:cartId", store_cart.ClearCart)
		cart.POST("/:cartId/items", store_cart.AddCartItem)
		cart.PATCH("/:cartId/items/:productId", store_cart.UpdateCartItemQuantity)
	}

	// Order composition
	orders := store.Group("/orders")
	orders.Use(middleware.RateLimiter(30, time.Minute))
	{
		orders.POST("/compose", store_order.ComposeOrder)
		orders.POST("/compose-single", store_order.ComposeSingleOrder)
	}
}
