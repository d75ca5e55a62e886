// internal/domain/catalog/service.go
package catalog

import (
	"fmt"
	"sync"
)

// Service handles catalog business logic. Products are held in process
// memory in insertion order; there is no backing store.
type Service struct {
	mu       sync.Mutex
	products []Product
	index    map[uint]int
	nextID   uint
}

// NewService creates a new catalog service
func NewService() *Service {
	return &Service{
		index:  make(map[uint]int),
		nextID: 1,
	}
}

// List returns all products in insertion order
func (s *Service) List() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the product with the given ID
func (s *Service) Get(id uint) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return Product{}, fmt.Errorf("product %d not found", id)
	}
	return s.products[i], nil
}

// Insert adds a product to the catalog and assigns its ID
func (s *Service) Insert(p Product) Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextID
	s.nextID++
	s.index[p.ID] = len(s.products)
	s.products = append(s.products, p)
	return p
}

// Delete removes a product from the catalog. Deleting an unknown ID is a
// no-op; orders placed earlier keep their own copies of product data.
func (s *Service) Delete(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return
	}
	s.products = append(s.products[:i], s.products[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.products); j++ {
		s.index[s.products[j].ID] = j
	}
}
