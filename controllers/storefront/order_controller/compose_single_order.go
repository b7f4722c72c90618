package order_controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/TribeTek-pvt-ltd/grazie-store-backend/config"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/models"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/order"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type composeSingleOrderRequest struct {
	ProductID    string `json:"product_id" binding:"required"`
	Quantity     int    `json:"quantity"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	Note         string `json:"note"`
}

// ComposeSingleOrder godoc
// @Summary Compose a buy-now WhatsApp order
// @Description Single-product order that bypasses the cart. Price and category come from the product record, never from the client. Quantities below 1 are clamped to 1.
// @Tags Store - Orders
// @Accept json
// @Produce json
// @Param request body composeSingleOrderRequest true "Product and customer details"
// @Success 200 {object} models.ApiResponse{data=composeOrderResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/orders/compose-single [post]
func ComposeSingleOrder(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	var req composeSingleOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product_id"))
		return
	}

	var product models.Product
	err = config.StoreGorm.WithContext(ctx).
		Preload("Category").
		First(&product, "id = ?", productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[store.order] product lookup failed for %s: %v", productID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	categoryName := ""
	if product.Category != nil {
		categoryName = product.Category.Name
	}

	o := order.Order{
		Items: []order.Line{{
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  order.ClampQuantity(req.Quantity),
			Category:  categoryName,
		}},
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Location:     req.Location,
		Note:         req.Note,
	}
	if !o.Valid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Customer name, phone and delivery location are required"))
		return
	}

	msg := o.SingleItemMessage()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order composed successfully", composeOrderResponse{
		Subtotal:          o.Subtotal(),
		SubtotalFormatted: order.FormatRupees(o.Subtotal()),
		Message:           msg,
		WhatsAppLink:      order.Link(config.WhatsAppNumber(), msg),
	}))
}
