package filter

import (
	"testing"

	"github.com/pzielke/trolley/internal/shop"
)

func sampleProducts() []shop.Product {
	return []shop.Product{
		{ID: "p1", Name: "Milk", Category: shop.CategoryDairy},
		{ID: "p2", Name: "Sourdough", Category: shop.CategoryBakery},
		{ID: "p3", Name: "Almond milk", Category: shop.CategoryDrinks},
		{ID: "p4", Name: "Cheddar", Category: shop.CategoryDairy, Purchased: true},
	}
}

func TestApply_DefaultPassesEverything(t *testing.T) {
	got := Apply(sampleProducts(), Default())
	if len(got) != 4 {
		t.Fatalf("Apply with default state = %d products, want 4", len(got))
	}
}

func TestApply_CategoryAndSearchCombine(t *testing.T) {
	products := sampleProducts()

	got := Apply(products, State{ActiveCategory: shop.CategoryDairy})
	if len(got) != 2 || got[0].ID != "p1" || got[1].ID != "p4" {
		t.Fatalf("dairy filter = %#v, want [p1 p4]", got)
	}

	// Search is a case-insensitive substring match on the name.
	got = Apply(products, State{ActiveCategory: CategoryAll, SearchQuery: "MILK"})
	if len(got) != 2 || got[0].ID != "p1" || got[1].ID != "p3" {
		t.Fatalf("search filter = %#v, want [p1 p3]", got)
	}

	// Both predicates must hold.
	got = Apply(products, State{ActiveCategory: shop.CategoryDrinks, SearchQuery: "milk"})
	if len(got) != 1 || got[0].ID != "p3" {
		t.Fatalf("combined filter = %#v, want [p3]", got)
	}

	got = Apply(products, State{ActiveCategory: shop.CategoryMeat, SearchQuery: "milk"})
	if len(got) != 0 {
		t.Fatalf("disjoint filter = %#v, want empty", got)
	}
}

func TestApply_PreservesCacheOrder(t *testing.T) {
	products := sampleProducts()

	got := Apply(products, State{ActiveCategory: CategoryAll, SearchQuery: "d"})
	// "Sourdough" and "Cheddar" contain a "d"; "Almond milk" too.
	want := []string{"p2", "p3", "p4"}
	if len(got) != len(want) {
		t.Fatalf("Apply = %#v, want ids %v", got, want)
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("Apply[%d].ID = %q, want %q (cache order)", i, got[i].ID, id)
		}
	}

	// Soundness: every survivor satisfies both predicates.
	s := State{ActiveCategory: shop.CategoryDairy, SearchQuery: "e"}
	for _, p := range Apply(products, s) {
		if !s.Matches(p) {
			t.Fatalf("Apply returned non-matching product %#v", p)
		}
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	products := sampleProducts()
	_ = Apply(products, State{ActiveCategory: shop.CategoryDairy})
	if products[1].ID != "p2" {
		t.Fatalf("Apply mutated input: %#v", products)
	}
}
