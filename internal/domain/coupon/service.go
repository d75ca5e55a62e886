// internal/domain/coupon/service.go
package coupon

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Service handles the coupon registry. Lookups are case-insensitive: codes
// are normalized to upper case on the way in.
type Service struct {
	mu      sync.Mutex
	coupons map[string]Coupon
}

// NewService creates a new coupon service
func NewService() *Service {
	return &Service{
		coupons: make(map[string]Coupon),
	}
}

// Normalize returns the canonical form of a coupon code
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Register inserts a new active coupon. The discount percent is stored as
// given; values above 100 are tolerated here and clamped by the pricing
// engine instead.
func (s *Service) Register(code string, discountPercent int) (Coupon, error) {
	if discountPercent < 0 {
		return Coupon{}, fmt.Errorf("discount percent must not be negative")
	}

	canonical := Normalize(code)
	if canonical == "" {
		return Coupon{}, fmt.Errorf("coupon code must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.coupons[canonical]; exists {
		return Coupon{}, fmt.Errorf("coupon %s already exists", canonical)
	}

	c := Coupon{
		Code:            canonical,
		DiscountPercent: discountPercent,
		Active:          true,
		CreatedAt:       time.Now().UTC(),
	}
	s.coupons[canonical] = c
	return c, nil
}

// SetActive toggles a coupon's active flag
func (s *Service) SetActive(code string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	canonical := Normalize(code)
	c, ok := s.coupons[canonical]
	if !ok {
		return fmt.Errorf("coupon %s not found", canonical)
	}
	c.Active = active
	s.coupons[canonical] = c
	return nil
}

// Delete removes a coupon from the registry. Deleting an unknown code is a
// no-op. An Applied snapshot already held by the session stays valid.
func (s *Service) Delete(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.coupons, Normalize(code))
}

// List returns all registered coupons sorted by code
func (s *Service) List() []Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Coupon, 0, len(s.coupons))
	for _, c := range s.coupons {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Validate checks an input code against the registry. It succeeds only for
// a matching, active coupon and returns an immutable snapshot; any other
// outcome is ErrInvalidCoupon.
func (s *Service) Validate(input string) (Applied, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.coupons[Normalize(input)]
	if !ok || !c.Active {
		return Applied{}, ErrInvalidCoupon
	}

	return Applied{
		Code:            c.Code,
		DiscountPercent: c.DiscountPercent,
		AppliedAt:       time.Now().UTC(),
	}, nil
}
