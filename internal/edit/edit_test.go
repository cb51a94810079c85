package edit

import (
	"errors"
	"testing"

	"github.com/pzielke/trolley/internal/shop"
)

func noCache(string) (shop.Product, bool) {
	return shop.Product{}, false
}

func TestController_StartsIdleWithDefaults(t *testing.T) {
	c := New()

	if _, editing := c.Editing(); editing {
		t.Fatalf("new controller is editing, want idle")
	}
	if form := c.Form(); form.Name != "" || form.Quantity != "1" || form.Category != shop.CategoryOther {
		t.Fatalf("default form = %#v, want empty name, quantity 1, category other", form)
	}
}

func TestStartEdit_SeedsFormWithFallbacks(t *testing.T) {
	c := New()

	c.StartEdit(shop.Product{ID: "p7", Name: "Milk", Quantity: "", Category: ""})

	id, editing := c.Editing()
	if !editing || id != "p7" {
		t.Fatalf("Editing() = %q, %v; want p7, true", id, editing)
	}
	form := c.Form()
	if form.Name != "Milk" || form.Quantity != "1" || form.Category != shop.CategoryOther {
		t.Fatalf("seeded form = %#v, want fallbacks applied", form)
	}
}

func TestReset_ReturnsToIdleAndClearsForm(t *testing.T) {
	c := New()
	c.StartEdit(shop.Product{ID: "p7", Name: "Milk", Quantity: "3", Category: shop.CategoryDairy})

	c.Reset()

	if _, editing := c.Editing(); editing {
		t.Fatalf("Editing() = true after Reset, want idle")
	}
	if form := c.Form(); form != DefaultForm() {
		t.Fatalf("form after Reset = %#v, want defaults", form)
	}
}

func TestSubmission_EmptyNameIsValidationError(t *testing.T) {
	c := New()

	_, _, err := c.Submission(Form{Name: "   "}, noCache)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Submission error = %v, want *ValidationError", err)
	}
	if verr.Field != "name" {
		t.Fatalf("ValidationError.Field = %q, want name", verr.Field)
	}
	// A rejected submission must not change the mode.
	if _, editing := c.Editing(); editing {
		t.Fatalf("controller left idle mode on validation failure")
	}
}

func TestSubmission_IdleBuildsNormalizedDraft(t *testing.T) {
	c := New()

	record, isUpdate, err := c.Submission(Form{Name: "  Eggs  ", Quantity: "  ", Category: ""}, noCache)
	if err != nil {
		t.Fatalf("Submission returned error: %v", err)
	}
	if isUpdate {
		t.Fatalf("Submission isUpdate = true, want create in idle mode")
	}
	want := shop.Product{Name: "Eggs", Quantity: "1", Category: shop.CategoryOther}
	if record != want {
		t.Fatalf("draft = %#v, want %#v", record, want)
	}
}

func TestSubmission_EditCarriesCachedPurchased(t *testing.T) {
	c := New()
	c.StartEdit(shop.Product{ID: "p2", Name: "Bread", Quantity: "1", Category: shop.CategoryBakery})

	cached := func(id string) (shop.Product, bool) {
		if id == "p2" {
			return shop.Product{ID: "p2", Name: "Bread", Purchased: true}, true
		}
		return shop.Product{}, false
	}

	record, isUpdate, err := c.Submission(Form{Name: "Rye bread", Quantity: "2", Category: shop.CategoryBakery}, cached)
	if err != nil {
		t.Fatalf("Submission returned error: %v", err)
	}
	if !isUpdate {
		t.Fatalf("Submission isUpdate = false, want update in edit mode")
	}
	want := shop.Product{ID: "p2", Name: "Rye bread", Quantity: "2", Category: shop.CategoryBakery, Purchased: true}
	if record != want {
		t.Fatalf("record = %#v, want %#v", record, want)
	}
}

func TestSubmission_EditFallsBackToUnpurchasedWhenRecordGone(t *testing.T) {
	c := New()
	c.StartEdit(shop.Product{ID: "gone", Name: "Milk"})

	record, isUpdate, err := c.Submission(Form{Name: "Milk"}, noCache)
	if err != nil {
		t.Fatalf("Submission returned error: %v", err)
	}
	if !isUpdate || record.ID != "gone" {
		t.Fatalf("record = %#v, want update for id gone", record)
	}
	if record.Purchased {
		t.Fatalf("record.Purchased = true, want false fallback for evicted record")
	}
}

func TestNormalize_AppliesAllDefaults(t *testing.T) {
	got := Normalize(Form{Name: "Milk"})
	if got.Quantity != "1" || got.Category != shop.CategoryOther {
		t.Fatalf("Normalize = %#v, want quantity 1 and category other", got)
	}

	// Unrecognized categories are preserved verbatim, not normalized away.
	got = Normalize(Form{Name: "Milk", Quantity: "2", Category: "charcuterie"})
	if got.Quantity != "2" || got.Category != "charcuterie" {
		t.Fatalf("Normalize = %#v, want values kept", got)
	}
}
