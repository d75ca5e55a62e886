// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the order status
type Status string

const (
	StatusPending   Status = "pending"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusReturned  Status = "returned"
)

// Valid reports whether s is a known order status
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusShipped, StatusDelivered, StatusReturned:
		return true
	}
	return false
}

// Item represents a line item frozen into an order at checkout. It is a
// deep copy of the cart line: later catalog edits cannot alter it.
type Item struct {
	ProductID  uint   `json:"product_id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Quantity   int    `json:"quantity"`
	Price      int64  `json:"price"`       // Price per unit in cents
	TotalPrice int64  `json:"total_price"` // Quantity * Price
}

// StatusChange records one entry of an order's status history
type StatusChange struct {
	Status    Status    `json:"status"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// Order represents a placed order. The financial amounts are computed once
// at checkout and never recomputed from live cart, coupon or catalog
// state. Only Status (and its history) is mutable.
type Order struct {
	ID             uuid.UUID      `json:"id"`
	Number         string         `json:"number"`
	Status         Status         `json:"status"`
	Items          []Item         `json:"items"`
	SubtotalAmount int64          `json:"subtotal_amount"`
	DiscountAmount int64          `json:"discount_amount"`
	TotalAmount    int64          `json:"total_amount"`
	CouponCode     string         `json:"coupon_code,omitempty"`
	Currency       string         `json:"currency"`
	CreatedAt      time.Time      `json:"created_at"`
	ShippedAt      *time.Time     `json:"shipped_at,omitempty"`
	DeliveredAt    *time.Time     `json:"delivered_at,omitempty"`
	ReturnedAt     *time.Time     `json:"returned_at,omitempty"`
	StatusHistory  []StatusChange `json:"status_history,omitempty"`
}

// CanBeReturned checks whether the customer return action is available
func (o *Order) CanBeReturned() bool {
	return o.Status == StatusDelivered
}
