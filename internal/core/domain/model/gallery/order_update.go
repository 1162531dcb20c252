package gallery

import (
	"fmt"

	"babyjournal/internal/core/domain/model/kernel"
	"babyjournal/internal/pkg/errs"
)

// OrderUpdate assigns a display order to one item as part of a bulk write.
// A batch is applied in one transaction: if any id is unknown, none of the
// orders change.
//
// Example:
//
//	updates := []gallery.OrderUpdate{
//	    {ID: a.ID(), Order: 0},
//	    {ID: c.ID(), Order: 1},
//	}
//	if err := gallery.ValidateOrderUpdates(updates); err != nil {
//	    return err
//	}
type OrderUpdate struct {
	ID    kernel.UUID
	Order int
}

// Validate checks a single pair.
func (u OrderUpdate) Validate() error {
	if err := u.ID.Validate(); err != nil {
		return err
	}
	if u.Order < 0 {
		return errs.NewValueIsInvalidErrorWithCause("order", fmt.Errorf("%d is negative", u.Order))
	}
	return nil
}

// ValidateOrderUpdates checks a whole batch: it must be non-empty, every pair
// must be valid, and no item may appear twice.
func ValidateOrderUpdates(updates []OrderUpdate) error {
	if len(updates) == 0 {
		return errs.NewValueIsRequiredError("order updates")
	}

	seen := make(map[kernel.UUID]struct{}, len(updates))
	for _, u := range updates {
		if err := u.Validate(); err != nil {
			return err
		}
		if _, dup := seen[u.ID]; dup {
			return errs.NewValueIsInvalidErrorWithCause("order updates", fmt.Errorf("item %s appears twice", u.ID))
		}
		seen[u.ID] = struct{}{}
	}
	return nil
}
