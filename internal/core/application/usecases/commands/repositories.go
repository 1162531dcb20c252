// Package commands contains the write operations of the gallery: creating,
// editing and deleting items, and the bulk order write behind drag-and-drop.
// Every command is validated, then executed inside one unit of work.
package commands

import (
	"context"

	"babyjournal/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ItemRepoFactory provides the item repository bound to the transaction.
	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	// ItemUoW is the unit of work used by every item command.
	//
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//   err = uow.ItemRepository().SetOrders(ctx, updates)
	//   err = uow.Commit(ctx)
	ItemUoW interface {
		TxManager
		ItemRepoFactory
	}

	// ItemUoWFactory creates a fresh ItemUoW per command.
	ItemUoWFactory interface {
		Create() ItemUoW
	}
)

// runInUoW executes fn with the item repository of a new transaction and
// commits when fn succeeds. The deferred rollback is a no-op after commit.
func runInUoW(ctx context.Context, factory ItemUoWFactory, fn func(repo ports.ItemRepository) error) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow.ItemRepository()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
