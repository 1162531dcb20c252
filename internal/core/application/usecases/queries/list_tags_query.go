package queries

import (
	"errors"

	"babyjournal/internal/core/domain/model/gallery"
	"babyjournal/internal/pkg/guard"
)

var (
	ErrListTagsQueryIsNotConstructed = errors.New(
		"ListTagsQuery must be created via NewListTagsQuery constructor",
	)
)

// ListTagsQuery returns the distinct tags used by one kind, for the filter bar.
type ListTagsQuery struct {
	kind gallery.Kind

	guard guard.ConstructorGuard
}

func NewListTagsQuery(kind gallery.Kind) (ListTagsQuery, error) {
	if err := kind.Validate(); err != nil {
		return ListTagsQuery{}, err
	}
	return ListTagsQuery{kind: kind, guard: guard.NewConstructorGuard()}, nil
}

func (q ListTagsQuery) Validate() error {
	return q.guard.Validate(ErrListTagsQueryIsNotConstructed)
}

func (q ListTagsQuery) Kind() gallery.Kind {
	return q.kind
}
