// internal/domain/coupon/entity.go
package coupon

import (
	"errors"
	"time"
)

// ErrInvalidCoupon is returned when a code does not match an active
// registry entry. This is a recoverable, user-facing condition.
var ErrInvalidCoupon = errors.New("invalid or inactive coupon code")

// Coupon represents a registered discount code. Codes are stored in their
// canonical (upper case) form.
type Coupon struct {
	Code            string    `json:"code"`
	DiscountPercent int       `json:"discount_percent"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
}

// Applied is a value snapshot of a coupon taken at validation time. The
// session holds at most one; deleting or deactivating the registry entry
// afterwards does not affect an Applied already handed out.
type Applied struct {
	Code            string    `json:"code"`
	DiscountPercent int       `json:"discount_percent"`
	AppliedAt       time.Time `json:"applied_at"`
}
