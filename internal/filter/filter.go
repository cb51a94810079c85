// Package filter derives the visible subset of the product cache from the
// current filter state.
//
// Apply is a pure function and is recomputed in full on every render. At
// shopping-list scale there is nothing to be gained from memoization, so the
// package deliberately has none.
package filter

import (
	"strings"

	"github.com/pzielke/trolley/internal/shop"
)

// CategoryAll is the sentinel category that matches every product.
const CategoryAll = "all"

// State holds the transient filter parameters. The zero value is not useful;
// use Default.
type State struct {
	ActiveCategory string
	SearchQuery    string
}

// Default returns the initial filter state: all categories, empty search.
func Default() State {
	return State{ActiveCategory: CategoryAll}
}

// Matches reports whether a single product satisfies the filter.
func (s State) Matches(p shop.Product) bool {
	if s.ActiveCategory != CategoryAll && p.Category != s.ActiveCategory {
		return false
	}
	if s.SearchQuery == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), strings.ToLower(s.SearchQuery))
}

// Apply returns the ordered subsequence of products matching the filter
// state. The input slice is never mutated.
func Apply(products []shop.Product, s State) []shop.Product {
	var filtered []shop.Product
	for _, p := range products {
		if s.Matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
