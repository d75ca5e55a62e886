// internal/domain/checkout/service.go
package checkout

import (
	"sync"

	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/coupon"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/pricing"
)

// Service coordinates the checkout flow for the session: it owns the
// applied coupon, recomputes totals on every read, and turns the live cart
// into a frozen order.
type Service struct {
	mu           sync.Mutex
	applied      *coupon.Applied
	cartService  *cart.Service
	couponSvc    *coupon.Service
	orderService *order.Service
}

// NewService creates a new checkout service
func NewService(cartService *cart.Service, couponSvc *coupon.Service, orderService *order.Service) *Service {
	return &Service{
		cartService:  cartService,
		couponSvc:    couponSvc,
		orderService: orderService,
	}
}

// ApplyCoupon validates the code against the registry and, on success,
// stores the snapshot as the session's applied coupon. A fresh apply
// replaces a previous one. On failure the previous applied coupon is kept.
func (s *Service) ApplyCoupon(code string) (coupon.Applied, error) {
	applied, err := s.couponSvc.Validate(code)
	if err != nil {
		return coupon.Applied{}, err
	}

	s.mu.Lock()
	s.applied = &applied
	s.mu.Unlock()

	return applied, nil
}

// RemoveCoupon clears the session's applied coupon. This is the only way
// it goes away: checkout and registry edits leave it in place.
func (s *Service) RemoveCoupon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applied = nil
}

// AppliedCoupon returns the session's applied coupon snapshot, if any
func (s *Service) AppliedCoupon() *coupon.Applied {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.applied == nil {
		return nil
	}
	snapshot := *s.applied
	return &snapshot
}

// Totals recomputes pricing from the live cart and the applied coupon
func (s *Service) Totals() pricing.Totals {
	return pricing.Compute(s.cartService.Lines(), s.AppliedCoupon())
}

// Checkout places an order from the current cart. An empty cart is a
// silent no-op returning a nil order. Otherwise the cart is drained
// atomically, totals are computed from the drained snapshot, and a pending
// order is prepended to the ledger. The applied coupon survives checkout;
// only an explicit RemoveCoupon clears it.
func (s *Service) Checkout() *order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.cartService.Drain()
	if len(lines) == 0 {
		return nil
	}

	totals := pricing.Compute(lines, s.applied)

	items := make([]order.Item, len(lines))
	for i, line := range lines {
		items[i] = order.Item{
			ProductID:  line.Product.ID,
			Name:       line.Product.Name,
			Category:   line.Product.Category,
			Quantity:   line.Quantity,
			Price:      line.Product.Price,
			TotalPrice: line.LineTotal(),
		}
	}

	couponCode := ""
	if s.applied != nil {
		couponCode = s.applied.Code
	}

	return s.orderService.Create(items, totals.SubTotal, totals.DiscountAmount, totals.TotalAmount, couponCode)
}
