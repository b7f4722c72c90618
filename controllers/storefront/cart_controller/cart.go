package cart_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/TribeTek-pvt-ltd/grazie-store-backend/cart"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/models"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/order"
	"github.com/gin-gonic/gin"
)

// repo is injected at startup (Redis in production, in-memory in tests).
var repo cart.Repository

func Init(r cart.Repository) {
	repo = r
}

type replaceCartRequest struct {
	Items []cart.Item `json:"items"`
}

type updateQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

func cartIDParam(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("cartId"))
	if id == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart ID is required"))
		return "", false
	}
	return id, true
}

// GetCart godoc
// @Summary Fetch a cart
// @Description Returns the stored line items plus the derived subtotal and item count. An unknown cart ID is an empty cart, not an error.
// @Tags Store - Cart
// @Produce json
// @Param cartId path string true "Client-generated cart ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/store/cart/{cartId} [get]
func GetCart(c *gin.Context) {
	cartID, ok := cartIDParam(c)
	if !ok {
		return
	}

	items, err := repo.Get(c.Request.Context(), cartID)
	if err != nil {
		log.Printf("[store.cart] fetch failed for %s: %v", cartID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", gin.H{
		"items":              items,
		"subtotal":           cart.Subtotal(items),
		"subtotal_formatted": order.FormatRupees(cart.Subtotal(items)),
		"count":              cart.Count(items),
	}))
}

// ReplaceCart godoc
// @Summary Replace cart contents
// @Description Wholesale replacement of the cart's line items. Quantities below 1 are rejected; saving an empty list removes the stored cart entirely.
// @Tags Store - Cart
// @Accept json
// @Produce json
// @Param cartId path string true "Client-generated cart ID"
// @Param request body replaceCartRequest true "New line items"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/store/cart/{cartId} [put]
func ReplaceCart(c *gin.Context) {
	cartID, ok := cartIDParam(c)
	if !ok {
		return
	}

	var req replaceCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return
	}

	for _, item := range req.Items {
		if item.ProductID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Every item needs a product_id"))
			return
		}
		if item.Quantity < 1 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Item quantities must be at least 1"))
			return
		}
	}

	if err := repo.Set(c.Request.Context(), cartID, req.Items); err != nil {
		log.Printf("[store.cart] save failed for %s: %v", cartID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart saved successfully", gin.H{
		"items":    req.Items,
		"subtotal": cart.Subtotal(req.Items),
		"count":    cart.Count(req.Items),
	}))
}

// AddCartItem godoc
// @Summary Add an item to a cart
// @Description Merges by product ID: adding an already-present product increments its quantity instead of duplicating the line.
// @Tags Store - Cart
// @Accept json
// @Produce json
// @Param cartId path string true "Client-generated cart ID"
// @Param request body cart.Item true "Item to add"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/store/cart/{cartId}/items [post]
func AddCartItem(c *gin.Context) {
	cartID, ok := cartIDParam(c)
	if !ok {
		return
	}

	var item cart.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return
	}
	if item.ProductID == "" || item.Name == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "product_id and name are required"))
		return
	}
	item.Quantity = order.ClampQuantity(item.Quantity)

	items, err := repo.Get(c.Request.Context(), cartID)
	if err != nil {
		log.Printf("[store.cart] fetch failed for %s: %v", cartID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}

	items = cart.Add(items, item)
	if err := repo.Set(c.Request.Context(), cartID, items); err != nil {
		log.Printf("[store.cart] save failed for %s: %v", cartID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item added to cart", gin.H{
		"items":    items,
		"subtotal": cart.Subtotal(items),
		"count":    cart.Count(items),
	}))
}

// UpdateCartItemQuantity godoc
// @Summary Adjust an item's quantity
// @Description Applies a signed delta to the line's quantity. Dropping below 1 removes the line; removing the last line removes the stored cart.
// @Tags Store - Cart
// @Accept json
// @Produce json
// @Param cartId path string true "Client-generated cart ID"
// @Param productId path string true "Product ID of the line to adjust"
// @Param request body updateQuantityRequest true "Signed quantity delta"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/cart/{cartId}/items/{productId} [patch]
func UpdateCartItemQuantity(c *gin.Context) {
	cartID, ok := cartIDParam(c)
	if !ok {
		return
	}
	productID := strings.TrimSpace(c.Param("productId"))
	if productID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Product ID is required"))
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "A non-zero delta is required"))
		return
	}

	items, err := repo.Get(c.Request.Context(), cartID)
	if err != nil {
		log.Printf("[store.cart] fetch failed for %s: %v", cartID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}

	found := false
	for _, item := range items {
		if item.ProductID == productID {
			found = true
			break
		}
	}
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Item not in cart"))
		return
	}

	items = cart.UpdateQuantity(items, productID, req.Delta)
	if err := repo.Set(c.Request.Context(), cartID, items); err != nil {
		log.Printf("[store.cart] save failed for %s: %v", cartID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated successfully", gin.H{
		"items":    items,
		"subtotal": cart.Subtotal(items),
		"count":    cart.Count(items),
	}))
}

// ClearCart godoc
// @Summary Clear a cart
// @Tags Store - Cart
// @Produce json
// @Param cartId path string true "Client-generated cart ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/store/cart/{cartId} [delete]
func ClearCart(c *gin.Context) {
	cartID, ok := cartIDParam(c)
	if !ok {
		return
	}

	if err := repo.Clear(c.Request.Context(), cartID); err != nil {
		log.Printf("[store.cart] clear failed for %s: %v", cartID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to clear cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart cleared successfully", nil))
}
