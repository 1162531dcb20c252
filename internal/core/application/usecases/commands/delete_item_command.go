package commands

import (
	"errors"

	"babyjournal/internal/core/domain/model/kernel"
	"babyjournal/internal/pkg/guard"
)

var (
	ErrDeleteItemCommandIsNotConstructed = errors.New(
		"DeleteItemCommand must be created via NewDeleteItemCommand constructor",
	)
)

// DeleteItemCommand removes one item. The orders of the remaining items are
// left as they are, so a deletion leaves a gap in the numbering.
type DeleteItemCommand struct {
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteItemCommand(itemID kernel.UUID) (DeleteItemCommand, error) {
	if err := itemID.Validate(); err != nil {
		return DeleteItemCommand{}, err
	}
	return DeleteItemCommand{itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteItemCommandIsNotConstructed)
}

func (c DeleteItemCommand) ItemID() kernel.UUID {
	return c.itemID
}
