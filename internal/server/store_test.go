package server

import (
	"testing"

	"github.com/pzielke/trolley/internal/shop"
)

func TestStore_CreatePreservesInsertionOrder(t *testing.T) {
	t.Parallel()
	s := NewStore()

	a := s.Create(shop.Product{Name: "A"})
	b := s.Create(shop.Product{Name: "B"})
	c := s.Create(shop.Product{Name: "C"})

	ids := []string{a.ID, b.ID, c.ID}
	for i, p := range s.List() {
		if p.ID != ids[i] {
			t.Fatalf("List()[%d].ID = %q, want %q", i, p.ID, ids[i])
		}
	}
}

func TestStore_CreateAssignsUniqueIDs(t *testing.T) {
	t.Parallel()
	s := NewStore()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		p := s.Create(shop.Product{Name: "X"})
		if p.ID == "" {
			t.Fatal("Create assigned empty id")
		}
		if seen[p.ID] {
			t.Fatalf("duplicate id %q", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestStore_UpdateKeepsPosition(t *testing.T) {
	t.Parallel()
	s := NewStore()

	a := s.Create(shop.Product{Name: "A"})
	s.Create(shop.Product{Name: "B"})

	a.Name = "A2"
	if !s.Update(a) {
		t.Fatal("Update returned false for existing id")
	}
	if got := s.List()[0].Name; got != "A2" {
		t.Fatalf("List()[0].Name = %q, want %q", got, "A2")
	}
}

func TestStore_UpdateUnknownIDReturnsFalse(t *testing.T) {
	t.Parallel()
	s := NewStore()

	if s.Update(shop.Product{ID: "nope", Name: "Ghost"}) {
		t.Fatal("Update returned true for unknown id")
	}
}

func TestStore_DeleteRemovesOnlyTarget(t *testing.T) {
	t.Parallel()
	s := NewStore()

	a := s.Create(shop.Product{Name: "A"})
	b := s.Create(shop.Product{Name: "B"})

	if !s.Delete(a.ID) {
		t.Fatal("Delete returned false for existing id")
	}
	remaining := s.List()
	if len(remaining) != 1 || remaining[0].ID != b.ID {
		t.Fatalf("List() = %+v, want only %s", remaining, b.ID)
	}
	if s.Delete(a.ID) {
		t.Fatal("second Delete of same id returned true")
	}
}

func TestStore_ListReturnsCopy(t *testing.T) {
	t.Parallel()
	s := NewStore()
	s.Create(shop.Product{Name: "A"})

	list := s.List()
	list[0].Name = "mutated"
	if got := s.List()[0].Name; got != "A" {
		t.Fatalf("store mutated through List() result: Name = %q", got)
	}
}

func TestNewSeededStore(t *testing.T) {
	t.Parallel()
	s := NewSeededStore()

	products := s.List()
	if len(products) == 0 {
		t.Fatal("seeded store is empty")
	}
	for _, p := range products {
		if p.ID == "" {
			t.Fatalf("seeded product %q has empty id", p.Name)
		}
	}
}
