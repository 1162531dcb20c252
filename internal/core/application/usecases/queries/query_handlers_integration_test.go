package queries_test

import (
	"context"
	"testing"
	"time"

	"babyjournal/internal/adapters/out/postgres"
	"babyjournal/internal/adapters/out/postgres/itemrepo"
	"babyjournal/internal/adapters/out/postgres/pgtest"
	"babyjournal/internal/core/application/usecases/queries"
	"babyjournal/internal/core/domain/model/gallery"
	"babyjournal/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
)

type QueryHandlersTestSuite struct {
	suite.Suite
	pg   *pgtest.Database
	repo *itemrepo.GormItemRepository

	items queries.ListItemsQueryHandler
	tags  queries.ListTagsQueryHandler
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg

	suite.Require().NoError(postgres.Migrate(pg.DB))

	suite.repo = itemrepo.NewGormItemRepository(pg.DB)
	suite.items = queries.NewListItemsQueryHandler(pg.DB)
	suite.tags = queries.NewListTagsQueryHandler(pg.DB)
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Stop(context.Background()))
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
}

func (suite *QueryHandlersTestSuite) TestListItems_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.items.Handle(context.Background(), suite.itemsQuery(gallery.Photo))

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *QueryHandlersTestSuite) TestListItems_AllOrdered_SortsByOrder() {
	day := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	suite.save(gallery.Photo, "A", day, nil, 2)
	suite.save(gallery.Photo, "B", day.AddDate(0, 0, 1), nil, 0)
	suite.save(gallery.Photo, "C", day.AddDate(0, 0, 2), nil, 1)

	result, err := suite.items.Handle(context.Background(), suite.itemsQuery(gallery.Photo))

	suite.Require().NoError(err)
	suite.Equal([]string{"B", "C", "A"}, titles(result))
	suite.Require().NotNil(result[0].Order)
	suite.Equal(0, *result[0].Order)
}

func (suite *QueryHandlersTestSuite) TestListItems_SomeUnordered_SortsByDateDescending() {
	day := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	suite.save(gallery.Photo, "Oldest", day, nil, 0)
	suite.save(gallery.Photo, "Newest", day.AddDate(0, 0, 2), nil, -1)
	suite.save(gallery.Photo, "Middle", day.AddDate(0, 0, 1), nil, 1)

	result, err := suite.items.Handle(context.Background(), suite.itemsQuery(gallery.Photo))

	suite.Require().NoError(err)
	suite.Equal([]string{"Newest", "Middle", "Oldest"}, titles(result))
	suite.Nil(result[0].Order)
}

func (suite *QueryHandlersTestSuite) TestListItems_OnlyRequestedKind() {
	now := time.Now()
	suite.save(gallery.Photo, "Beach", now, nil, -1)
	suite.save(gallery.Milestone, "First steps", now, nil, -1)
	suite.save(gallery.Record, "Height 80cm", now, nil, -1)

	result, err := suite.items.Handle(context.Background(), suite.itemsQuery(gallery.Milestone))

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("First steps", result[0].Title)
	suite.Equal(gallery.Milestone, result[0].Kind)

	item, err := result[0].Item()
	suite.Require().NoError(err)
	suite.Equal(gallery.Milestone, item.Kind())
}

func (suite *QueryHandlersTestSuite) TestListItems_InvalidQuery_ReturnsError() {
	result, err := suite.items.Handle(context.Background(), queries.ListItemsQuery{})

	suite.Require().ErrorIs(err, queries.ErrListItemsQueryIsNotConstructed)
	suite.Nil(result)
}

func (suite *QueryHandlersTestSuite) TestListTags_DistinctAndSorted() {
	now := time.Now()
	suite.save(gallery.Photo, "A", now, []string{"travel", "family"}, -1)
	suite.save(gallery.Photo, "B", now, []string{"family", "beach"}, -1)
	suite.save(gallery.Photo, "C", now, nil, -1)
	suite.save(gallery.Milestone, "D", now, []string{"health"}, -1)

	query, err := queries.NewListTagsQuery(gallery.Photo)
	suite.Require().NoError(err)

	result, err := suite.tags.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal([]string{"beach", "family", "travel"}, result)
}

func (suite *QueryHandlersTestSuite) TestListTags_ContextCancelled() {
	query, err := queries.NewListTagsQuery(gallery.Photo)
	suite.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.tags.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *QueryHandlersTestSuite) itemsQuery(kind gallery.Kind) queries.ListItemsQuery {
	query, err := queries.NewListItemsQuery(kind)
	suite.Require().NoError(err)
	return query
}

// save stores an item; a negative order leaves it unordered.
func (suite *QueryHandlersTestSuite) save(
	kind gallery.Kind,
	title string,
	date time.Time,
	tags []string,
	order int,
) {
	item, err := gallery.NewItem(kernel.NewUUID(), kind, gallery.Payload{Title: title}, date, tags)
	suite.Require().NoError(err)
	if order >= 0 {
		item, err = item.WithOrder(order)
		suite.Require().NoError(err)
	}
	suite.Require().NoError(suite.repo.Add(context.Background(), item))
}

func titles(rows []queries.ListItemsQueryResponse) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Title)
	}
	return out
}

func TestQueryHandlersTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}
	suite.Run(t, new(QueryHandlersTestSuite))
}
