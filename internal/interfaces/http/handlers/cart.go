// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/coupon"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService     *cart.Service
	catalogService  *catalog.Service
	checkoutService *checkout.Service
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service, catalogService *catalog.Service, checkoutService *checkout.Service) *CartHandler {
	return &CartHandler{
		cartService:     cartService,
		catalogService:  catalogService,
		checkoutService: checkoutService,
	}
}

// AddToCartRequest represents the add-to-cart request
type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// UpdateCartItemRequest carries the quantity delta, which may be negative.
// Quantities floor at 1; removal is a separate endpoint.
type UpdateCartItemRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// ApplyCouponRequest represents the apply-coupon request
type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// cartResponse assembles the live cart view: lines, applied coupon and
// totals recomputed on every read.
func (h *CartHandler) cartResponse() gin.H {
	return gin.H{
		"items":          h.cartService.Lines(),
		"applied_coupon": h.checkoutService.AppliedCoupon(),
		"totals":         h.checkoutService.Totals(),
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    h.cartResponse(),
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalogService.Get(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	h.cartService.Add(product)

	c.JSON(http.StatusOK, gin.H{
		"message":   "Item added to cart successfully",
		"attention": true,
		"data":      h.cartResponse(),
	})
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.cartService.UpdateQuantity(id, req.Delta)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    h.cartResponse(),
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	// Idempotent: removing an absent product is not an error
	h.cartService.Remove(id)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    h.cartResponse(),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cartService.Clear()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
		"data":    h.cartResponse(),
	})
}

// ApplyCoupon handles POST /cart/coupon
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	applied, err := h.checkoutService.ApplyCoupon(req.Code)
	if err != nil {
		if errors.Is(err, coupon.ErrInvalidCoupon) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid or inactive coupon code",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to apply coupon",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Coupon applied successfully",
		"data": gin.H{
			"applied_coupon": applied,
			"totals":         h.checkoutService.Totals(),
		},
	})
}

// RemoveCoupon handles DELETE /cart/coupon
func (h *CartHandler) RemoveCoupon(c *gin.Context) {
	h.checkoutService.RemoveCoupon()

	c.JSON(http.StatusOK, gin.H{
		"message": "Coupon removed successfully",
		"data":    h.cartResponse(),
	})
}
