package reorder

import (
	"context"

	"babyjournal/internal/core/domain/model/gallery"
)

// Store is the backing store seen by a Coordinator.
type Store interface {
	// ListItems returns every item of kind, in no particular order.
	ListItems(ctx context.Context, kind gallery.Kind) ([]*gallery.Item, error)

	// BulkSetOrder writes all pairs or none of them.
	BulkSetOrder(ctx context.Context, updates []gallery.OrderUpdate) error
}
