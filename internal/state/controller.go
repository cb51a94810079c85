package state

import (
	"context"
	"errors"
	"log"

	"github.com/pzielke/trolley/internal/edit"
	"github.com/pzielke/trolley/internal/shop"
)

// User-facing failure copy, one message per operation.
const (
	noticeLoadFailed   = "Failed to load products."
	noticeSaveFailed   = "Something went wrong while saving the product."
	noticeUpdateFailed = "Something went wrong while updating the product."
	noticeDeleteFailed = "Something went wrong while deleting the product."
	noticeNameRequired = "Please enter a product name."
)

// Failure is an operation error carrying the notice to show the user.
type Failure struct {
	Notice string
	Err    error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return f.Notice + ": " + f.Err.Error()
	}
	return f.Notice
}

func (f *Failure) Unwrap() error { return f.Err }

// Controller drives every mutation of the product cache. Each operation is
// one API round trip followed, only on success, by the matching cache
// mutation; on failure the cache is untouched and a *Failure with the
// operation's notice is returned.
type Controller struct {
	client shop.API
	store  *Store
	edit   *edit.Controller
}

// NewController builds a controller around the given API client.
func NewController(client shop.API, store *Store) *Controller {
	return &Controller{
		client: client,
		store:  store,
		edit:   edit.New(),
	}
}

// Store exposes the product cache for view derivation.
func (c *Controller) Store() *Store { return c.store }

// Edit exposes the form-mode state machine.
func (c *Controller) Edit() *edit.Controller { return c.edit }

// Load replaces the entire cache with the server's collection.
func (c *Controller) Load(ctx context.Context) error {
	products, err := c.client.ListProducts(ctx)
	if err != nil {
		return c.fail(noticeLoadFailed, err)
	}
	c.store.Load(products)
	return nil
}

// StartEdit switches the form to edit mode seeded from the given product.
func (c *Controller) StartEdit(p shop.Product) {
	c.edit.StartEdit(p)
}

// ResetForm abandons any in-progress edit and clears the form.
func (c *Controller) ResetForm() {
	c.edit.Reset()
}

// Submit validates the form values and performs the create or update the
// current mode calls for. Validation failures block the network call
// entirely and leave the mode unchanged. On success the cache is updated and
// the form returns to idle; on network failure mode and form stay as they
// are so the user can retry.
func (c *Controller) Submit(ctx context.Context, values edit.Form) error {
	record, isUpdate, err := c.edit.Submission(values, c.store.Get)
	if err != nil {
		var verr *edit.ValidationError
		if errors.As(err, &verr) {
			return &Failure{Notice: noticeNameRequired, Err: err}
		}
		return &Failure{Notice: noticeSaveFailed, Err: err}
	}

	if isUpdate {
		if err := c.client.UpdateProduct(ctx, record); err != nil {
			return c.fail(noticeUpdateFailed, err)
		}
		c.store.Replace(record)
		c.edit.Reset()
		return nil
	}

	id, err := c.client.CreateProduct(ctx, record)
	if err != nil {
		return c.fail(noticeSaveFailed, err)
	}
	record.ID = id
	c.store.Append(record)
	c.edit.Reset()
	return nil
}

// Toggle flips the purchased flag of the cached product with the given id.
// It does not touch the edit state. Unknown ids are ignored.
func (c *Controller) Toggle(ctx context.Context, id string) error {
	p, ok := c.store.Get(id)
	if !ok {
		return nil
	}
	updated := p.WithPurchased(!p.Purchased)
	if err := c.client.UpdateProduct(ctx, updated); err != nil {
		return c.fail(noticeUpdateFailed, err)
	}
	c.store.Replace(updated)
	return nil
}

// Delete removes the record with the given id from the server and then the
// cache. Confirmation is the caller's responsibility.
func (c *Controller) Delete(ctx context.Context, id string) error {
	if err := c.client.DeleteProduct(ctx, id); err != nil {
		return c.fail(noticeDeleteFailed, err)
	}
	c.store.Remove(id)
	return nil
}

func (c *Controller) fail(notice string, err error) error {
	log.Printf("%s: %v", notice, err)
	return &Failure{Notice: notice, Err: err}
}
