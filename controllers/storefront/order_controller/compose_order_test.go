package order_controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TribeTek-pvt-ltd/grazie-store-backend/cart"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupComposeRouter(t *testing.T) (*gin.Engine, *cart.MemoryRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := cart.NewMemoryRepository()
	Init(repo)

	router := gin.New()
	router.POST("/orders/compose", ComposeOrder)
	return router, repo
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestComposeOrderWithInlineItems(t *testing.T) {
	router, _ := setupComposeRouter(t)

	w := postJSON(t, router, "/orders/compose", gin.H{
		"items": []gin.H{
			{"product_id": "p1", "name": "Brass Diya", "unit_price": 1500, "quantity": 2, "category": "Lamps"},
		},
		"customer_name": "Nimal Perera",
		"phone":         "0771234567",
		"location":      "Colombo 07",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data composeOrderResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 3000.0, resp.Data.Subtotal)
	assert.Equal(t, "Rs. 3,000", resp.Data.SubtotalFormatted)
	assert.Contains(t, resp.Data.Message, "- Brass Diya (x2) - Rs. 3,000")
	assert.Contains(t, resp.Data.Message, "Total Amount: Rs. 3,000")
	assert.Contains(t, resp.Data.WhatsAppLink, "https://wa.me/")
	assert.NotContains(t, resp.Data.WhatsAppLink, "+")
}

func TestComposeOrderFromStoredCart(t *testing.T) {
	router, repo := setupComposeRouter(t)

	require.NoError(t, repo.Set(context.Background(), "cart-abc", []cart.Item{
		{ProductID: "p1", Name: "Incense Holder", UnitPrice: 900, Quantity: 1},
	}))

	w := postJSON(t, router, "/orders/compose", gin.H{
		"cart_id":       "cart-abc",
		"customer_name": "Nimal Perera",
		"phone":         "0771234567",
		"location":      "Kandy",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Incense Holder")
}

func TestComposeOrderRejectsEmptyCart(t *testing.T) {
	router, _ := setupComposeRouter(t)

	w := postJSON(t, router, "/orders/compose", gin.H{
		"cart_id":       "no-such-cart",
		"customer_name": "Nimal Perera",
		"phone":         "0771234567",
		"location":      "Colombo",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestComposeOrderRejectsBlankCustomerFields(t *testing.T) {
	router, _ := setupComposeRouter(t)

	for _, body := range []gin.H{
		{"customer_name": "   ", "phone": "077", "location": "Colombo"},
		{"customer_name": "Nimal", "phone": "", "location": "Colombo"},
		{"customer_name": "Nimal", "phone": "077", "location": " "},
	} {
		body["items"] = []gin.H{{"product_id": "p1", "name": "Diya", "unit_price": 100, "quantity": 1}}
		w := postJSON(t, router, "/orders/compose", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestComposeOrderClampsQuantities(t *testing.T) {
	router, _ := setupComposeRouter(t)

	w := postJSON(t, router, "/orders/compose", gin.H{
		"items": []gin.H{
			{"product_id": "p1", "name": "Diya", "unit_price": 100, "quantity": 0},
		},
		"customer_name": "Nimal Perera",
		"phone":         "0771234567",
		"location":      "Colombo",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "(x1)")
}
