// internal/domain/pricing/pricing.go
package pricing

import (
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/coupon"
)

// Totals represents calculated cart totals. All amounts are integers in
// the smallest currency unit.
type Totals struct {
	ItemCount      int   `json:"item_count"`     // Number of unique lines
	TotalQuantity  int   `json:"total_quantity"` // Sum of all quantities
	SubTotal       int64 `json:"sub_total"`
	DiscountAmount int64 `json:"discount_amount"`
	TotalAmount    int64 `json:"total_amount"`
}

// Compute derives totals from cart lines and the applied coupon, if any.
// It is a pure function: callers recompute on every read instead of
// caching derived state.
//
// Fractional discount amounts are rounded half-even. The total is clamped
// at zero so a registry entry above 100% cannot produce a negative total.
func Compute(lines []cart.Line, applied *coupon.Applied) Totals {
	var t Totals

	t.ItemCount = len(lines)
	for _, line := range lines {
		t.TotalQuantity += line.Quantity
		t.SubTotal += line.LineTotal()
	}

	if applied != nil {
		t.DiscountAmount = roundHalfEven(t.SubTotal*int64(applied.DiscountPercent), 100)
	}

	t.TotalAmount = t.SubTotal - t.DiscountAmount
	if t.TotalAmount < 0 {
		t.TotalAmount = 0
	}

	return t
}

// roundHalfEven divides num by den rounding ties to the nearest even
// quotient (banker's rounding). num and den must be non-negative.
func roundHalfEven(num, den int64) int64 {
	q := num / den
	r := num % den
	switch {
	case 2*r < den:
		return q
	case 2*r > den:
		return q + 1
	default:
		if q%2 == 0 {
			return q
		}
		return q + 1
	}
}
