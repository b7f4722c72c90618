package cart_controller

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

func setupCartRouter(t *testing.T) (*gin.Engine, *cart.MemoryRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	memRepo := cart.NewMemoryRepository()
	Init(memRepo)

	router := gin.New()
	router.GET("/cart/:cartId", GetCart)
	router.PUT("/cart/:cartId", ReplaceCart)
	router.DELETE("/cart/:cartId", ClearCart)
	router.POST("/cart/:cartId/items", AddCartItem)
	router.PATCH("/cart/:cartId/items/:productId", UpdateCartItemQuantity)
	return router, memRepo
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestGetUnknownCartIsEmpty(t *testing.T) {
	router, _ := setupCartRouter(t)

	w := doJSON(t, router, http.MethodGet, "/cart/first-visit", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":0`)
}

func TestReplaceCartRoundTrip(t *testing.T) {
	router, _ := setupCartRouter(t)

	w := doJSON(t, router, http.MethodPut, "/cart/c1", gin.H{
		"items": []gin.H{
			{"product_id": "p1", "name": "Brass Diya", "unit_price": 1500, "quantity": 2},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/cart/c1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"subtotal":3000`)
	assert.Contains(t, w.Body.String(), "Rs. 3,000")
}

func TestReplaceCartRejectsZeroQuantity(t *testing.T) {
	router, _ := setupCartRouter(t)

	w := doJSON(t, router, http.MethodPut, "/cart/c1", gin.H{
		"items": []gin.H{
			{"product_id": "p1", "name": "Brass Diya", "unit_price": 1500, "quantity": 0},
		},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReplaceWithEmptyListRemovesStoredCart(t *testing.T) {
	router, memRepo := setupCartRouter(t)

	require.NoError(t, memRepo.Set(context.Background(), "c1", []cart.Item{
		{ProductID: "p1", Name: "Diya", UnitPrice: 100, Quantity: 1},
	}))

	w := doJSON(t, router, http.MethodPut, "/cart/c1", gin.H{"items": []gin.H{}})
	require.Equal(t, http.StatusOK, w.Code)

	assert.False(t, memRepo.Exists("c1"))
}

func TestAddItemMerges(t *testing.T) {
	router, _ := setupCartRouter(t)

	item := gin.H{"product_id": "p1", "name": "Brass Diya", "unit_price": 1500, "quantity": 1}
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/cart/c1/items", item).Code)
	w := doJSON(t, router, http.MethodPost, "/cart/c1/items", item)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"quantity":2`)
	assert.Contains(t, w.Body.String(), `"count":2`)
}

func TestDecrementBelowOneRemovesLineAndCart(t *testing.T) {
	router, memRepo := setupCartRouter(t)

	require.NoError(t, memRepo.Set(context.Background(), "c1", []cart.Item{
		{ProductID: "p1", Name: "Diya", UnitPrice: 100, Quantity: 1},
	}))

	w := doJSON(t, router, http.MethodPatch, "/cart/c1/items/p1", gin.H{"delta": -1})
	require.Equal(t, http.StatusOK, w.Code)

	// Last line gone means the stored cart key is gone too
	assert.False(t, memRepo.Exists("c1"))
}

func TestUpdateQuantityUnknownLineIs404(t *testing.T) {
	router, _ := setupCartRouter(t)

	w := doJSON(t, router, http.MethodPatch, "/cart/c1/items/ghost", gin.H{"delta": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClearCart(t *testing.T) {
	router, memRepo := setupCartRouter(t)

	require.NoError(t, memRepo.Set(context.Background(), "c1", []cart.Item{
		{ProductID: "p1", Name: "Diya", UnitPrice: 100, Quantity: 2},
	}))

	w := doJSON(t, router, http.MethodDelete, "/cart/c1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, memRepo.Exists("c1"))
}
