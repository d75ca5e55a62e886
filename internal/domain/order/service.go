// internal/domain/order/service.go
package order

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no order matches the given ID
	ErrNotFound = errors.New("order not found")
	// ErrNotReturnable is returned by the customer return action when the
	// order has not been delivered yet (or was already returned)
	ErrNotReturnable = errors.New("order can only be returned after delivery")
)

// Service handles the order ledger. Orders are prepended so the ledger
// reads newest first; they are never deleted.
type Service struct {
	mu       sync.Mutex
	orders   []*Order
	sequence int
	currency string
}

// NewService creates a new order service
func NewService(currency string) *Service {
	return &Service{currency: currency}
}

// Create places a new pending order with the given frozen snapshot and
// amounts, and prepends it to the ledger.
func (s *Service) Create(items []Item, subtotal, discount, total int64, couponCode string) *Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	s.sequence++

	o := &Order{
		ID:             uuid.New(),
		Number:         fmt.Sprintf("ORD-%s-%05d", now.Format("20060102"), s.sequence),
		Status:         StatusPending,
		Items:          items,
		SubtotalAmount: subtotal,
		DiscountAmount: discount,
		TotalAmount:    total,
		CouponCode:     couponCode,
		Currency:       s.currency,
		CreatedAt:      now,
	}
	o.addHistory(StatusPending, "Order placed", now)

	s.orders = append([]*Order{o}, s.orders...)

	snapshot := *o
	return &snapshot
}

// Get returns a copy of the order with the given ID
func (s *Service) Get(id uuid.UUID) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := s.find(id)
	if o == nil {
		return Order{}, ErrNotFound
	}
	return *o, nil
}

// List returns copies of all orders, newest first
func (s *Service) List() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = *o
	}
	return out
}

// SetStatus is the administrative entry point of the status machine. Any
// override between known statuses is permitted here; only the customer
// Return action is gated.
func (s *Service) SetStatus(id uuid.UUID, status Status, comment string) (Order, error) {
	if !status.Valid() {
		return Order{}, fmt.Errorf("unknown order status: %s", status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o := s.find(id)
	if o == nil {
		return Order{}, ErrNotFound
	}

	now := time.Now().UTC()
	o.Status = status
	switch status {
	case StatusShipped:
		o.ShippedAt = &now
	case StatusDelivered:
		o.DeliveredAt = &now
	case StatusReturned:
		o.ReturnedAt = &now
	}
	o.addHistory(status, comment, now)

	return *o, nil
}

// Return is the customer-facing entry point of the status machine. It only
// succeeds while the order is in the delivered state.
func (s *Service) Return(id uuid.UUID) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := s.find(id)
	if o == nil {
		return Order{}, ErrNotFound
	}
	if !o.CanBeReturned() {
		return Order{}, ErrNotReturnable
	}

	now := time.Now().UTC()
	o.Status = StatusReturned
	o.ReturnedAt = &now
	o.addHistory(StatusReturned, "Return requested by customer", now)

	return *o, nil
}

func (s *Service) find(id uuid.UUID) *Order {
	for _, o := range s.orders {
		if o.ID == id {
			return o
		}
	}
	return nil
}

func (o *Order) addHistory(status Status, comment string, at time.Time) {
	o.StatusHistory = append(o.StatusHistory, StatusChange{
		Status:    status,
		Comment:   comment,
		CreatedAt: at,
	})
}
