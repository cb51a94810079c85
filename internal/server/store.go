package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/pzielke/trolley/internal/shop"
)

// Store is an in-memory product store that preserves insertion order.
// The order of the slice is the order clients see; updates happen in place.
type Store struct {
	mu       sync.RWMutex
	products []shop.Product
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// NewSeededStore creates a store pre-filled with a small demo list.
func NewSeededStore() *Store {
	s := NewStore()
	seed := []shop.Product{
		{Name: "Apples", Quantity: "6", Category: shop.CategoryFruitsVeg},
		{Name: "Sourdough bread", Quantity: "1", Category: shop.CategoryBakery},
		{Name: "Milk", Quantity: "2", Category: shop.CategoryDairy},
		{Name: "Chicken breast", Quantity: "1", Category: shop.CategoryMeat, Purchased: true},
		{Name: "Orange juice", Quantity: "1", Category: shop.CategoryDrinks},
	}
	for _, p := range seed {
		s.Create(p)
	}
	return s
}

// List returns all products in insertion order.
func (s *Store) List() []shop.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dup := make([]shop.Product, len(s.products))
	copy(dup, s.products)
	return dup
}

// Create assigns a fresh id to the draft and appends it.
func (s *Store) Create(draft shop.Product) shop.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft.ID = uuid.NewString()
	s.products = append(s.products, draft)
	return draft
}

// Update replaces the product with a matching id in place, keeping its
// position. Returns false when no product has that id.
func (s *Store) Update(product shop.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == product.ID {
			s.products[i] = product
			return true
		}
	}
	return false
}

// Delete removes the product with the given id. Returns false when no
// product has that id.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true
		}
	}
	return false
}
