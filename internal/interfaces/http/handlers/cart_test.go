package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/coupon"
	"github.com/your-org/storefront-backend/internal/domain/order"
)

type testEnv struct {
	router   *gin.Engine
	catalog  *catalog.Service
	cart     *cart.Service
	coupons  *coupon.Service
	orders   *order.Service
	checkout *checkout.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		catalog: catalog.NewService(),
		cart:    cart.NewService(),
		coupons: coupon.NewService(),
		orders:  order.NewService("USD"),
	}
	env.checkout = checkout.NewService(env.cart, env.coupons, env.orders)

	cartHandler := NewCartHandler(env.cart, env.catalog, env.checkout)
	checkoutHandler := NewCheckoutHandler(env.checkout)
	orderHandler := NewOrderHandler(env.orders)

	env.router = gin.New()
	env.router.GET("/cart", cartHandler.GetCart)
	env.router.POST("/cart/items", cartHandler.AddToCart)
	env.router.PUT("/cart/items/:id", cartHandler.UpdateCartItem)
	env.router.DELETE("/cart/items/:id", cartHandler.RemoveFromCart)
	env.router.POST("/cart/coupon", cartHandler.ApplyCoupon)
	env.router.POST("/checkout", checkoutHandler.Checkout)
	env.router.GET("/orders", orderHandler.GetOrders)
	env.router.POST("/orders/:id/return", orderHandler.ReturnOrder)
	env.router.PUT("/orders/:id/status", orderHandler.UpdateOrderStatus)

	return env
}

func (env *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)
	return resp
}

func TestAddToCartSetsAttentionFlag(t *testing.T) {
	env := newTestEnv(t)
	p := env.catalog.Insert(catalog.Product{Name: "Headphones", Price: 12999})

	resp := env.do(t, http.MethodPost, "/cart/items", gin.H{"product_id": p.ID})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Attention bool `json:"attention"`
		Data      struct {
			Totals struct {
				SubTotal int64 `json:"sub_total"`
			} `json:"totals"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Attention {
		t.Fatal("expected attention flag on add-to-cart")
	}
	if envelope.Data.Totals.SubTotal != 12999 {
		t.Fatalf("unexpected subtotal: %d", envelope.Data.Totals.SubTotal)
	}
}

func TestAddToCartUnknownProduct(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/cart/items", gin.H{"product_id": 42})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestApplyInvalidCoupon(t *testing.T) {
	env := newTestEnv(t)
	p := env.catalog.Insert(catalog.Product{Name: "Headphones", Price: 12999})
	env.cart.Add(p)

	resp := env.do(t, http.MethodPost, "/cart/coupon", gin.H{"code": "nonexistent"})
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", resp.Code)
	}

	// Cart state is untouched by the failed apply
	if len(env.cart.Lines()) != 1 {
		t.Fatalf("cart changed by invalid coupon: %d lines", len(env.cart.Lines()))
	}
	if env.checkout.AppliedCoupon() != nil {
		t.Fatal("invalid coupon must not be applied")
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/checkout", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if len(env.orders.List()) != 0 {
		t.Fatal("empty-cart checkout must not create an order")
	}
}

func TestCheckoutPlacesOrder(t *testing.T) {
	env := newTestEnv(t)
	p := env.catalog.Insert(catalog.Product{Name: "Headphones", Price: 12999})
	env.cart.Add(p)

	resp := env.do(t, http.MethodPost, "/checkout", nil)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data order.Order `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Status != order.StatusPending {
		t.Fatalf("unexpected status: %s", envelope.Data.Status)
	}
	if envelope.Data.TotalAmount != 12999 {
		t.Fatalf("unexpected total: %d", envelope.Data.TotalAmount)
	}
	if !env.cart.IsEmpty() {
		t.Fatal("checkout must clear the cart")
	}
}
