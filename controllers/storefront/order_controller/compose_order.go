package order_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/TribeTek-pvt-ltd/grazie-store-backend/cart"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/config"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/models"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/order"
	"github.com/gin-gonic/gin"
)

// cartRepo is injected at startup so the composer can pull a stored cart
// by ID instead of requiring the client to resend every line item.
var cartRepo cart.Repository

func Init(r cart.Repository) {
	cartRepo = r
}

type composeOrderRequest struct {
	CartID       string      `json:"cart_id"`
	Items        []cart.Item `json:"items"`
	CustomerName string      `json:"customer_name"`
	Phone        string      `json:"phone"`
	Location     string      `json:"location"`
	Note         string      `json:"note"`
}

type composeOrderResponse struct {
	Subtotal          float64 `json:"subtotal"`
	SubtotalFormatted string  `json:"subtotal_formatted"`
	Message           string  `json:"message"`
	WhatsAppLink      string  `json:"whatsapp_link"`
}

// ComposeOrder godoc
// @Summary Compose a WhatsApp order
// @Description Builds the order message and wa.me deep link from the cart and customer details. Line items come either inline or from a stored cart ID. Name, phone and delivery location must all be non-blank; opening the returned link is the order handoff, nothing is persisted here.
// @Tags Store - Orders
// @Accept json
// @Produce json
// @Param request body composeOrderRequest true "Cart and customer details"
// @Success 200 {object} models.ApiResponse{data=composeOrderResponse}
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/store/orders/compose [post]
func ComposeOrder(c *gin.Context) {
	var req composeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return
	}

	items := req.Items
	if len(items) == 0 && strings.TrimSpace(req.CartID) != "" {
		stored, err := cartRepo.Get(c.Request.Context(), req.CartID)
		if err != nil {
			log.Printf("[store.order] cart fetch failed for %s: %v", req.CartID, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
			return
		}
		items = stored
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart is empty"))
		return
	}

	lines := make([]order.Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, order.Line{
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  order.ClampQuantity(item.Quantity),
			Category:  item.Category,
		})
	}

	o := order.Order{
		Items:        lines,
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Location:     req.Location,
		Note:         req.Note,
	}
	if !o.Valid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Customer name, phone and delivery location are required"))
		return
	}

	msg := o.Message()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order composed successfully", composeOrderResponse{
		Subtotal:          o.Subtotal(),
		SubtotalFormatted: order.FormatRupees(o.Subtotal()),
		Message:           msg,
		WhatsAppLink:      order.Link(config.WhatsAppNumber(), msg),
	}))
}
