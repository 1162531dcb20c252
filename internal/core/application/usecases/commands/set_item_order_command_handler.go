package commands

import (
	"context"

	"babyjournal/internal/core/ports"
)

// SetItemOrderCommandHandler applies a bulk order write in one transaction.
// If any pair fails (for example an item deleted meanwhile) the transaction
// is rolled back and no order changes.
type SetItemOrderCommandHandler struct {
	uowFactory ItemUoWFactory
}

func NewSetItemOrderCommandHandler(uowFactory ItemUoWFactory) SetItemOrderCommandHandler {
	return SetItemOrderCommandHandler{uowFactory: uowFactory}
}

func (h *SetItemOrderCommandHandler) Handle(ctx context.Context, cmd SetItemOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runInUoW(ctx, h.uowFactory, func(repo ports.ItemRepository) error {
		return repo.SetOrders(ctx, cmd.Updates())
	})
}
