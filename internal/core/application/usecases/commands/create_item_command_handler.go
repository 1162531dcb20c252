package commands

import (
	"context"

	"babyjournal/internal/core/domain/model/gallery"
	"babyjournal/internal/core/ports"
)

// CreateItemCommandHandler stores new gallery items.
type CreateItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

func NewCreateItemCommandHandler(uowFactory ItemUoWFactory) CreateItemCommandHandler {
	return CreateItemCommandHandler{uowFactory: uowFactory}
}

// Handle builds the item and adds it in its own transaction.
func (h *CreateItemCommandHandler) Handle(ctx context.Context, cmd CreateItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := gallery.NewItem(cmd.ItemID(), cmd.Kind(), cmd.Payload(), cmd.Date(), cmd.Tags())
	if err != nil {
		return err
	}

	return runInUoW(ctx, h.uowFactory, func(repo ports.ItemRepository) error {
		return repo.Add(ctx, item)
	})
}
