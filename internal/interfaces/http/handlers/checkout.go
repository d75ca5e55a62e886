// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
)

// CheckoutHandler handles the checkout endpoint
type CheckoutHandler struct {
	checkoutService *checkout.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// Checkout handles POST /checkout. Checking out an empty cart is a silent
// no-op, not an error.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	placed := h.checkoutService.Checkout()
	if placed == nil {
		c.JSON(http.StatusOK, gin.H{
			"message": "Cart is empty, nothing to check out",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    placed,
	})
}
