package commands

import (
	"context"

	"babyjournal/internal/core/ports"
)

// DeleteItemCommandHandler removes items without renumbering their siblings.
type DeleteItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

func NewDeleteItemCommandHandler(uowFactory ItemUoWFactory) DeleteItemCommandHandler {
	return DeleteItemCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteItemCommandHandler) Handle(ctx context.Context, cmd DeleteItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runInUoW(ctx, h.uowFactory, func(repo ports.ItemRepository) error {
		return repo.Delete(ctx, cmd.ItemID())
	})
}
