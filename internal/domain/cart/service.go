// internal/domain/cart/service.go
package cart

import (
	"sync"
	"time"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// Service handles cart business logic for the session. Lines are kept in
// insertion order; at most one line exists per product ID and a line's
// quantity never drops below 1.
type Service struct {
	mu     sync.Mutex
	lines  []Line
	notify func(Event)
}

// NewService creates a new cart service
func NewService() *Service {
	return &Service{}
}

// SetNotifier installs the attention-signal callback. The callback is
// invoked synchronously once per Add call; a nil callback disables it.
func (s *Service) SetNotifier(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notify = fn
}

// Add puts one unit of the product into the cart. If a line for the
// product already exists its quantity is incremented, otherwise a new line
// is appended after the existing ones.
func (s *Service) Add(p catalog.Product) {
	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].Product.ID == p.ID {
			s.lines[i].Quantity++
			notify := s.notify
			s.mu.Unlock()
			s.fire(notify, p)
			return
		}
	}
	s.lines = append(s.lines, Line{
		Product:  p,
		Quantity: 1,
		AddedAt:  time.Now().UTC(),
	})
	notify := s.notify
	s.mu.Unlock()
	s.fire(notify, p)
}

func (s *Service) fire(notify func(Event), p catalog.Product) {
	if notify == nil {
		return
	}
	notify(Event{ProductID: p.ID, Name: p.Name, At: time.Now().UTC()})
}

// Remove deletes the line for the given product ID. Removing an absent
// product is a no-op.
func (s *Service) Remove(productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity adjusts a line's quantity by delta, which may be
// negative. The quantity floors at 1: decrementing a single-unit line is a
// no-op rather than a removal. Unknown product IDs are ignored.
func (s *Service) UpdateQuantity(productID uint, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			q := s.lines[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			s.lines[i].Quantity = q
			return
		}
	}
}

// Clear removes all lines from the cart
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Lines returns a copy of the current cart lines in insertion order
func (s *Service) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Drain atomically snapshots the cart lines and clears the cart. Checkout
// uses this so the order snapshot and the cart reset happen as one step.
func (s *Service) Drain() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.lines
	s.lines = nil
	return lines
}

// IsEmpty reports whether the cart has no lines
func (s *Service) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) == 0
}
