package commands

import (
	"errors"
	"slices"

	"babyjournal/internal/core/domain/model/gallery"
	"babyjournal/internal/pkg/guard"
)

var (
	ErrSetItemOrderCommandIsNotConstructed = errors.New(
		"SetItemOrderCommand must be created via NewSetItemOrderCommand constructor",
	)
)

// SetItemOrderCommand is the bulk "set order" write: every (id, order) pair
// of one reorder gesture, applied together.
type SetItemOrderCommand struct {
	updates []gallery.OrderUpdate

	guard guard.ConstructorGuard
}

// NewSetItemOrderCommand rejects an empty batch, negative orders and repeated ids.
func NewSetItemOrderCommand(updates []gallery.OrderUpdate) (SetItemOrderCommand, error) {
	if err := gallery.ValidateOrderUpdates(updates); err != nil {
		return SetItemOrderCommand{}, err
	}

	return SetItemOrderCommand{
		updates: slices.Clone(updates),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SetItemOrderCommand) Validate() error {
	return c.guard.Validate(ErrSetItemOrderCommandIsNotConstructed)
}

func (c SetItemOrderCommand) Updates() []gallery.OrderUpdate {
	return slices.Clone(c.updates)
}
