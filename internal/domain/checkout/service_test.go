package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/coupon"
	"github.com/your-org/storefront-backend/internal/domain/order"
)

type fixture struct {
	cart     *cart.Service
	coupons  *coupon.Service
	orders   *order.Service
	checkout *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		cart:    cart.NewService(),
		coupons: coupon.NewService(),
		orders:  order.NewService("USD"),
	}
	f.checkout = NewService(f.cart, f.coupons, f.orders)

	_, err := f.coupons.Register("WELCOME10", 10)
	require.NoError(t, err)

	return f
}

func (f *fixture) fillCart() {
	f.cart.Add(catalog.Product{ID: 1, Name: "Headphones", Price: 12999})
	f.cart.Add(catalog.Product{ID: 2, Name: "Jacket", Price: 4500})
	f.cart.UpdateQuantity(2, 1) // jacket x2
}

func TestTotalsRecomputeOnEveryRead(t *testing.T) {
	f := newFixture(t)
	f.fillCart()

	totals := f.checkout.Totals()
	assert.Equal(t, int64(21999), totals.SubTotal)
	assert.Equal(t, int64(21999), totals.TotalAmount)

	_, err := f.checkout.ApplyCoupon("welcome10")
	require.NoError(t, err)

	totals = f.checkout.Totals()
	assert.Equal(t, int64(2200), totals.DiscountAmount)
	assert.Equal(t, int64(19799), totals.TotalAmount)

	f.checkout.RemoveCoupon()
	assert.Equal(t, int64(21999), f.checkout.Totals().TotalAmount)
}

func TestApplyCouponFailureKeepsState(t *testing.T) {
	f := newFixture(t)
	f.fillCart()

	_, err := f.checkout.ApplyCoupon("WELCOME10")
	require.NoError(t, err)

	_, err = f.checkout.ApplyCoupon("nonexistent")
	assert.ErrorIs(t, err, coupon.ErrInvalidCoupon)

	// The failed attempt leaves the previous coupon and the cart untouched
	applied := f.checkout.AppliedCoupon()
	require.NotNil(t, applied)
	assert.Equal(t, "WELCOME10", applied.Code)
	assert.Len(t, f.cart.Lines(), 2)
}

func TestCheckoutEmptyCartIsNoop(t *testing.T) {
	f := newFixture(t)

	placed := f.checkout.Checkout()

	assert.Nil(t, placed)
	assert.Empty(t, f.orders.List())
}

func TestCheckoutFreezesTotalAndClearsCart(t *testing.T) {
	f := newFixture(t)
	f.fillCart()

	_, err := f.checkout.ApplyCoupon("WELCOME10")
	require.NoError(t, err)

	placed := f.checkout.Checkout()
	require.NotNil(t, placed)

	assert.Equal(t, order.StatusPending, placed.Status)
	assert.Equal(t, int64(21999), placed.SubtotalAmount)
	assert.Equal(t, int64(2200), placed.DiscountAmount)
	assert.Equal(t, int64(19799), placed.TotalAmount)
	assert.Equal(t, "WELCOME10", placed.CouponCode)
	require.Len(t, placed.Items, 2)
	assert.Equal(t, 2, placed.Items[1].Quantity)

	assert.True(t, f.cart.IsEmpty(), "checkout clears the cart")
	require.Len(t, f.orders.List(), 1)

	// The applied coupon is not tied to the order; it survives checkout
	require.NotNil(t, f.checkout.AppliedCoupon())

	// Later coupon changes never touch the frozen total
	f.checkout.RemoveCoupon()
	f.coupons.Delete("WELCOME10")

	o, err := f.orders.Get(placed.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(19799), o.TotalAmount)
}

func TestOrderSnapshotIsIndependentOfCatalogEdits(t *testing.T) {
	f := newFixture(t)

	catalogSvc := catalog.NewService()
	p := catalogSvc.Insert(catalog.Product{Name: "Headphones", Price: 12999})
	f.cart.Add(p)

	placed := f.checkout.Checkout()
	require.NotNil(t, placed)

	// Deleting the product from the catalog must not reach into the
	// placed order's frozen snapshot
	catalogSvc.Delete(p.ID)

	o, err := f.orders.Get(placed.ID)
	require.NoError(t, err)
	require.Len(t, o.Items, 1)
	assert.Equal(t, "Headphones", o.Items[0].Name)
	assert.Equal(t, int64(12999), o.TotalAmount)
}

func TestCheckoutAgainAfterRefill(t *testing.T) {
	f := newFixture(t)
	f.fillCart()

	first := f.checkout.Checkout()
	require.NotNil(t, first)

	// Empty cart after checkout: a second checkout is a no-op
	assert.Nil(t, f.checkout.Checkout())

	f.cart.Add(catalog.Product{ID: 3, Name: "Pot", Price: 1250})
	second := f.checkout.Checkout()
	require.NotNil(t, second)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, f.orders.List(), 2)
}
