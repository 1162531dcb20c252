// Package gallerystore backs a reorder.Coordinator with the gallery's own
// list query and bulk order command.
package gallerystore

import (
	"context"
	"fmt"

	"babyjournal/internal/core/application/usecases/commands"
	"babyjournal/internal/core/application/usecases/queries"
	"babyjournal/internal/core/domain/model/gallery"
)

type ItemLister interface {
	Handle(ctx context.Context, query queries.ListItemsQuery) ([]queries.ListItemsQueryResponse, error)
}

type OrderWriter interface {
	Handle(ctx context.Context, cmd commands.SetItemOrderCommand) error
}

type Store struct {
	lister ItemLister
	writer OrderWriter
}

func New(lister ItemLister, writer OrderWriter) *Store {
	return &Store{lister: lister, writer: writer}
}

func (s *Store) ListItems(ctx context.Context, kind gallery.Kind) ([]*gallery.Item, error) {
	query, err := queries.NewListItemsQuery(kind)
	if err != nil {
		return nil, err
	}

	rows, err := s.lister.Handle(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s items: %w", kind, err)
	}

	items := make([]*gallery.Item, 0, len(rows))
	for _, row := range rows {
		item, err := row.Item()
		if err != nil {
			return nil, fmt.Errorf("restore item %s: %w", row.ID, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *Store) BulkSetOrder(ctx context.Context, updates []gallery.OrderUpdate) error {
	cmd, err := commands.NewSetItemOrderCommand(updates)
	if err != nil {
		return err
	}
	return s.writer.Handle(ctx, cmd)
}
