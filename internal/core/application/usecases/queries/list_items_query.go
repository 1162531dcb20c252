// Package queries contains the read operations of the gallery. Queries read
// straight from the database and never go through a unit of work.
package queries

import (
	"errors"
	"time"

	"babyjournal/internal/core/domain/model/gallery"
	"babyjournal/internal/core/domain/model/kernel"
	"babyjournal/internal/pkg/guard"
)

var (
	ErrListItemsQueryIsNotConstructed = errors.New(
		"ListItemsQuery must be created via NewListItemsQuery constructor",
	)
)

// ListItemsQuery is the store's "list items" operation for one kind.
//
//	query, err := NewListItemsQuery(gallery.Photo)
//	items, err := handler.Handle(ctx, query)
type ListItemsQuery struct {
	kind gallery.Kind

	guard guard.ConstructorGuard
}

func NewListItemsQuery(kind gallery.Kind) (ListItemsQuery, error) {
	if err := kind.Validate(); err != nil {
		return ListItemsQuery{}, err
	}
	return ListItemsQuery{kind: kind, guard: guard.NewConstructorGuard()}, nil
}

func (q ListItemsQuery) Validate() error {
	return q.guard.Validate(ErrListItemsQueryIsNotConstructed)
}

func (q ListItemsQuery) Kind() gallery.Kind {
	return q.kind
}

// ListItemsQueryResponse is one row of the gallery read model. Order is nil
// for items that were never reordered.
type ListItemsQueryResponse struct {
	ID      kernel.UUID
	Kind    gallery.Kind
	Title   string
	Content string
	Media   []string
	Date    time.Time
	Tags    []string
	Order   *int
}

// Item rebuilds the domain item described by the row.
func (r ListItemsQueryResponse) Item() (*gallery.Item, error) {
	return gallery.RestoreItem(
		r.ID,
		r.Kind,
		gallery.Payload{Title: r.Title, Content: r.Content, Media: r.Media},
		r.Date,
		r.Tags,
		r.Order,
	)
}
