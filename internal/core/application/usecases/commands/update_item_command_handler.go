package commands

import (
	"context"

	"babyjournal/internal/core/ports"
)

// UpdateItemCommandHandler loads an item, revises it and writes it back.
type UpdateItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

func NewUpdateItemCommandHandler(uowFactory ItemUoWFactory) UpdateItemCommandHandler {
	return UpdateItemCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateItemCommandHandler) Handle(ctx context.Context, cmd UpdateItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runInUoW(ctx, h.uowFactory, func(repo ports.ItemRepository) error {
		item, err := repo.Get(ctx, cmd.ItemID())
		if err != nil {
			return err
		}

		if err = item.Revise(cmd.Payload(), cmd.Date(), cmd.Tags()); err != nil {
			return err
		}

		return repo.Update(ctx, item)
	})
}
