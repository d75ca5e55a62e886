package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/coupon"
)

func lines() []cart.Line {
	return []cart.Line{
		{Product: catalog.Product{ID: 1, Name: "Headphones", Price: 12999}, Quantity: 1},
		{Product: catalog.Product{ID: 2, Name: "Jacket", Price: 4500}, Quantity: 2},
	}
}

func TestComputeWithoutCoupon(t *testing.T) {
	totals := Compute(lines(), nil)

	assert.Equal(t, 2, totals.ItemCount)
	assert.Equal(t, 3, totals.TotalQuantity)
	assert.Equal(t, int64(21999), totals.SubTotal)
	assert.Equal(t, int64(0), totals.DiscountAmount)
	assert.Equal(t, int64(21999), totals.TotalAmount)
}

func TestComputeWithTenPercentCoupon(t *testing.T) {
	applied := &coupon.Applied{Code: "WELCOME10", DiscountPercent: 10}

	totals := Compute(lines(), applied)

	// 10% of 21999 is 2199.9; half-even rounding gives 2200
	assert.Equal(t, int64(21999), totals.SubTotal)
	assert.Equal(t, int64(2200), totals.DiscountAmount)
	assert.Equal(t, int64(19799), totals.TotalAmount)
}

func TestComputeEmptyCart(t *testing.T) {
	totals := Compute(nil, &coupon.Applied{Code: "WELCOME10", DiscountPercent: 10})

	assert.Equal(t, int64(0), totals.SubTotal)
	assert.Equal(t, int64(0), totals.DiscountAmount)
	assert.Equal(t, int64(0), totals.TotalAmount)
}

func TestComputeClampsTotalAtZero(t *testing.T) {
	applied := &coupon.Applied{Code: "BROKEN", DiscountPercent: 150}

	totals := Compute(lines(), applied)

	assert.Equal(t, int64(0), totals.TotalAmount)
	assert.GreaterOrEqual(t, totals.DiscountAmount, totals.SubTotal)
}

func TestRoundHalfEven(t *testing.T) {
	cases := []struct {
		name     string
		num, den int64
		want     int64
	}{
		{"exact", 2000, 100, 20},
		{"below half rounds down", 2049, 100, 20},
		{"above half rounds up", 2051, 100, 21},
		{"tie to even, even quotient", 1250, 100, 12},
		{"tie to even, odd quotient", 1350, 100, 14},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, roundHalfEven(tc.num, tc.den))
		})
	}
}
