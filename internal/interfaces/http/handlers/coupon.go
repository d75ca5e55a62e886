// internal/interfaces/http/handlers/coupon.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/coupon"
)

// CouponHandler handles the administrative coupon registry endpoints.
// Shoppers never touch these; applying a coupon to the cart lives on the
// cart surface.
type CouponHandler struct {
	couponService *coupon.Service
}

// NewCouponHandler creates a new coupon handler
func NewCouponHandler(couponService *coupon.Service) *CouponHandler {
	return &CouponHandler{
		couponService: couponService,
	}
}

// RegisterCouponRequest represents the admin create-coupon request
type RegisterCouponRequest struct {
	Code            string `json:"code" binding:"required"`
	DiscountPercent int    `json:"discount_percent" binding:"min=0"`
}

// SetActiveRequest represents the activate/deactivate request
type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// GetCoupons handles GET /admin/coupons
func (h *CouponHandler) GetCoupons(c *gin.Context) {
	coupons := h.couponService.List()

	c.JSON(http.StatusOK, gin.H{
		"message": "Coupons retrieved successfully",
		"data":    coupons,
		"count":   len(coupons),
	})
}

// RegisterCoupon handles POST /admin/coupons
func (h *CouponHandler) RegisterCoupon(c *gin.Context) {
	var req RegisterCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	created, err := h.couponService.Register(req.Code, req.DiscountPercent)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Coupon registered successfully",
		"data":    created,
	})
}

// SetCouponActive handles PUT /admin/coupons/:code/active
func (h *CouponHandler) SetCouponActive(c *gin.Context) {
	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.couponService.SetActive(c.Param("code"), *req.Active); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Coupon not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Coupon updated successfully",
	})
}

// DeleteCoupon handles DELETE /admin/coupons/:code
func (h *CouponHandler) DeleteCoupon(c *gin.Context) {
	// Idempotent: deleting an unknown code is not an error. A coupon
	// already applied to the open cart keeps its snapshot.
	h.couponService.Delete(c.Param("code"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Coupon deleted successfully",
	})
}
