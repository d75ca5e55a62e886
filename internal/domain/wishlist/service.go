// internal/domain/wishlist/service.go
package wishlist

import (
	"sort"
	"sync"
)

// Service handles the session wishlist: a plain set of product IDs with no
// interaction with cart, pricing or order state.
type Service struct {
	mu  sync.Mutex
	ids map[uint]struct{}
}

// NewService creates a new wishlist service
func NewService() *Service {
	return &Service{ids: make(map[uint]struct{})}
}

// Toggle flips membership of the product ID and reports whether the
// product is in the wishlist afterwards.
func (s *Service) Toggle(productID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[productID]; ok {
		delete(s.ids, productID)
		return false
	}
	s.ids[productID] = struct{}{}
	return true
}

// Contains reports whether the product ID is in the wishlist
func (s *Service) Contains(productID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.ids[productID]
	return ok
}

// List returns the wishlist product IDs in ascending order
func (s *Service) List() []uint {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]uint, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
