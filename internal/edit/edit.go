// Package edit implements the form-mode state machine: whether the product
// form represents a brand new product or an in-progress edit, and how raw
// form values become a record ready to send.
//
// The package is deliberately network-free. Submission builds the record and
// says whether it is a create or an update; issuing the call and applying the
// result on success belong to the caller, so that a failed call can leave
// both the machine and the form exactly as they were for a retry.
package edit

import (
	"fmt"
	"strings"

	"github.com/pzielke/trolley/internal/shop"
)

// Form holds the raw values of the product form.
type Form struct {
	Name     string
	Quantity string
	Category string
}

// DefaultForm returns the cleared form: empty name, quantity "1", category
// preselected to "other".
func DefaultForm() Form {
	return Form{Quantity: defaultQuantity, Category: shop.CategoryOther}
}

const defaultQuantity = "1"

// ValidationError reports a form value that blocks submission. No network
// call is issued for a submission that fails validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Controller tracks whether the form is creating a new product (idle) or
// editing an existing one. The zero value is idle with a cleared form.
type Controller struct {
	editingID string
	form      Form
}

// New returns an idle controller with a cleared form.
func New() *Controller {
	return &Controller{form: DefaultForm()}
}

// Editing returns the id under edit and whether the controller is in edit
// mode.
func (c *Controller) Editing() (string, bool) {
	return c.editingID, c.editingID != ""
}

// Form returns the current form values.
func (c *Controller) Form() Form {
	return c.form
}

// StartEdit switches to edit mode for the given product and seeds the form
// from it, applying the quantity and category fallbacks.
func (c *Controller) StartEdit(p shop.Product) {
	c.editingID = p.ID
	c.form = Normalize(Form{
		Name:     p.Name,
		Quantity: p.Quantity,
		Category: p.Category,
	})
}

// Reset returns to idle and clears the form to defaults.
func (c *Controller) Reset() {
	c.editingID = ""
	c.form = DefaultForm()
}

// Submission validates the given form values and builds the record to send.
// In idle mode it returns a draft (no id) for a create; in edit mode it
// returns the full record for an update, carrying the purchased flag of the
// currently cached record (false when the record is gone from the cache).
//
// The controller state is not advanced here: call Reset after the network
// call succeeds so a failure keeps mode and form intact for a retry.
func (c *Controller) Submission(values Form, cached func(id string) (shop.Product, bool)) (shop.Product, bool, error) {
	name := strings.TrimSpace(values.Name)
	if name == "" {
		return shop.Product{}, false, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	normalized := Normalize(Form{
		Name:     name,
		Quantity: values.Quantity,
		Category: values.Category,
	})
	record := shop.Product{
		Name:     normalized.Name,
		Quantity: normalized.Quantity,
		Category: normalized.Category,
	}

	id, editing := c.Editing()
	if !editing {
		return record, false, nil
	}

	record.ID = id
	if original, ok := cached(id); ok {
		record.Purchased = original.Purchased
	}
	return record, true, nil
}

// Normalize applies the submission defaults in one place: trimmed quantity
// falling back to "1", category falling back to "other".
func Normalize(f Form) Form {
	f.Quantity = strings.TrimSpace(f.Quantity)
	if f.Quantity == "" {
		f.Quantity = defaultQuantity
	}
	if strings.TrimSpace(f.Category) == "" {
		f.Category = shop.CategoryOther
	}
	return f
}
