package queries_test

import (
	"testing"

	"babyjournal/internal/core/application/usecases/queries"
	"babyjournal/internal/core/domain/model/gallery"
	"babyjournal/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListItemsQuery_Valid(t *testing.T) {
	query, err := queries.NewListItemsQuery(gallery.Milestone)
	require.NoError(t, err)

	require.NoError(t, query.Validate())
	assert.Equal(t, gallery.Milestone, query.Kind())
}

func TestNewListItemsQuery_UnknownKind(t *testing.T) {
	_, err := queries.NewListItemsQuery(gallery.UnknownKind)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestListItemsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListItemsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListItemsQueryIsNotConstructed)
}

func TestNewListTagsQuery_Valid(t *testing.T) {
	query, err := queries.NewListTagsQuery(gallery.Photo)
	require.NoError(t, err)

	require.NoError(t, query.Validate())
	assert.Equal(t, gallery.Photo, query.Kind())
}

func TestListTagsQuery_NotConstructedViaConstructor(t *testing.T) {
	err := queries.ListTagsQuery{}.Validate()
	assert.ErrorIs(t, err, queries.ErrListTagsQueryIsNotConstructed)
}
