package state

import (
	"sync"

	"github.com/pzielke/trolley/internal/shop"
)

// Store owns the authoritative in-memory product cache. Mutations are applied
// only after the corresponding API call has been confirmed; the store never
// holds a record the server has not also accepted.
type Store struct {
	mu       sync.RWMutex
	products []shop.Product
}

// Load replaces the entire cache with the given list, preserving its order.
func (s *Store) Load(products []shop.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = cloneProducts(products)
}

// Append adds a newly created product at the end of the cache. The id is
// assigned by the server and is guaranteed not to collide with cached records.
func (s *Store) Append(product shop.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, product)
}

// Replace swaps the cached record with a matching id for the given product,
// keeping its position. A missing id is a silent no-op.
func (s *Store) Replace(product shop.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == product.ID {
			s.products[i] = product
			return
		}
	}
}

// Remove deletes the record with the given id. A missing id is a silent no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return
		}
	}
}

// Get returns the cached record with the given id, if present.
func (s *Store) Get(id string) (shop.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return shop.Product{}, false
}

// Products returns a copy of the cache in insertion order.
func (s *Store) Products() []shop.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProducts(s.products)
}

// Summary reports the total number of cached products and how many of them
// are marked purchased.
func (s *Store) Summary() (total, purchased int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total = len(s.products)
	for _, p := range s.products {
		if p.Purchased {
			purchased++
		}
	}
	return total, purchased
}

func cloneProducts(products []shop.Product) []shop.Product {
	if len(products) == 0 {
		return nil
	}
	dup := make([]shop.Product, len(products))
	copy(dup, products)
	return dup
}
