package ports

import (
	"context"

	"babyjournal/internal/core/domain/model/gallery"
	"babyjournal/internal/core/domain/model/kernel"
)

// ItemRepository persists gallery items.
type ItemRepository interface {
	// Add stores a new item. The item keeps whatever order it was built with.
	Add(ctx context.Context, item *gallery.Item) error

	// Update rewrites the descriptive fields of an item. It never writes the order.
	Update(ctx context.Context, item *gallery.Item) error

	// Get loads one item or returns errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*gallery.Item, error)

	// ListByKind returns every item of kind in no particular order.
	ListByKind(ctx context.Context, kind gallery.Kind) ([]*gallery.Item, error)

	// SetOrders writes every (id, order) pair. An unknown id fails the call;
	// run it inside a unit of work so that a failure leaves no pair applied.
	SetOrders(ctx context.Context, updates []gallery.OrderUpdate) error

	// Delete removes an item. Remaining orders are not renumbered.
	Delete(ctx context.Context, id kernel.UUID) error
}
