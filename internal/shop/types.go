package shop

// Product is a single shopping-list record as exchanged with the API.
type Product struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quantity  string `json:"quantity"`
	Category  string `json:"category"`
	Purchased bool   `json:"purchased"`
}

// Category keys understood by the filter tabs and the form selector.
// Unknown values round-trip through storage untouched and render as "Other".
const (
	CategoryFruitsVeg = "fruits_veg"
	CategoryBakery    = "bakery"
	CategoryDairy     = "dairy"
	CategoryMeat      = "meat"
	CategoryDrinks    = "drinks"
	CategoryOther     = "other"
)

var categoryOrder = []string{
	CategoryFruitsVeg,
	CategoryBakery,
	CategoryDairy,
	CategoryMeat,
	CategoryDrinks,
	CategoryOther,
}

var categoryLabels = map[string]string{
	CategoryFruitsVeg: "Fruits & vegetables",
	CategoryBakery:    "Bakery",
	CategoryDairy:     "Dairy",
	CategoryMeat:      "Meat & fish",
	CategoryDrinks:    "Drinks",
	CategoryOther:     "Other",
}

// Categories returns the category keys in display order.
func Categories() []string {
	dup := make([]string, len(categoryOrder))
	copy(dup, categoryOrder)
	return dup
}

// CategoryLabel returns the display label for a category key, falling back to
// the "Other" label for unrecognized values.
func CategoryLabel(key string) string {
	if label, ok := categoryLabels[key]; ok {
		return label
	}
	return categoryLabels[CategoryOther]
}

// KnownCategory reports whether key is one of the fixed category keys.
func KnownCategory(key string) bool {
	_, ok := categoryLabels[key]
	return ok
}

// WithPurchased returns a copy of the product with only the purchased flag
// changed.
func (p Product) WithPurchased(purchased bool) Product {
	p.Purchased = purchased
	return p
}
