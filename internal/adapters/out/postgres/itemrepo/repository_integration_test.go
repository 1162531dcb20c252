package itemrepo_test

import (
	"context"
	"testing"
	"time"

	"babyjournal/internal/adapters/out/postgres"
	"babyjournal/internal/adapters/out/postgres/itemrepo"
	"babyjournal/internal/adapters/out/postgres/pgtest"
	"babyjournal/internal/core/domain/model/gallery"
	"babyjournal/internal/core/domain/model/kernel"
	"babyjournal/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// ItemRepositoryIntegrationTestSuite runs the repository against a real
// PostgreSQL container.
type ItemRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *itemrepo.GormItemRepository
}

func (suite *ItemRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg

	suite.Require().NoError(postgres.Migrate(pg.DB))
}

func (suite *ItemRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
	suite.repository = itemrepo.NewGormItemRepository(suite.pg.DB)
}

func (suite *ItemRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Stop(context.Background()))
}

func (suite *ItemRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	taken := time.Date(2025, time.May, 2, 8, 0, 0, 0, time.UTC)
	item, err := gallery.NewItem(kernel.NewUUID(), gallery.Photo, gallery.Payload{
		Title:   "Park",
		Content: "first swing",
		Media:   []string{"park/1.jpg", "park/2.jpg"},
	}, taken, []string{"outdoor", "family"})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, item))

	got, err := suite.repository.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.True(got.IsEqual(item))
	suite.Equal(gallery.Photo, got.Kind())
	suite.Equal(item.Payload(), got.Payload())
	suite.Equal([]string{"outdoor", "family"}, got.Tags())
	suite.True(taken.Equal(got.Date()))

	_, ordered := got.Order()
	suite.False(ordered)
}

func (suite *ItemRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ItemRepositoryIntegrationTestSuite) TestUpdate_DoesNotTouchOrder() {
	ctx := context.Background()
	item := suite.addItem(gallery.Photo, "Before", 3)

	suite.Require().NoError(item.Revise(gallery.Payload{Title: "After"}, item.Date(), []string{"edited"}))
	suite.Require().NoError(suite.repository.Update(ctx, item))

	got, err := suite.repository.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal("After", got.Title())
	suite.Equal([]string{"edited"}, got.Tags())

	order, ok := got.Order()
	suite.True(ok)
	suite.Equal(3, order)
}

func (suite *ItemRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	item := suite.newItem(gallery.Photo, "Ghost")

	err := suite.repository.Update(context.Background(), item)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ItemRepositoryIntegrationTestSuite) TestListByKind_FiltersKind() {
	ctx := context.Background()
	suite.addItem(gallery.Photo, "A", -1)
	suite.addItem(gallery.Photo, "B", -1)
	suite.addItem(gallery.Milestone, "Crawling", -1)

	photos, err := suite.repository.ListByKind(ctx, gallery.Photo)
	suite.Require().NoError(err)
	suite.Len(photos, 2)

	milestones, err := suite.repository.ListByKind(ctx, gallery.Milestone)
	suite.Require().NoError(err)
	suite.Len(milestones, 1)

	_, err = suite.repository.ListByKind(ctx, gallery.UnknownKind)
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *ItemRepositoryIntegrationTestSuite) TestSetOrders_WritesEveryPair() {
	ctx := context.Background()
	a := suite.addItem(gallery.Photo, "A", -1)
	b := suite.addItem(gallery.Photo, "B", -1)

	err := suite.repository.SetOrders(ctx, []gallery.OrderUpdate{
		{ID: b.ID(), Order: 0},
		{ID: a.ID(), Order: 1},
	})
	suite.Require().NoError(err)

	suite.assertOrder(a.ID(), 1)
	suite.assertOrder(b.ID(), 0)
}

func (suite *ItemRepositoryIntegrationTestSuite) TestSetOrders_UnknownID() {
	a := suite.addItem(gallery.Photo, "A", -1)

	err := suite.repository.SetOrders(context.Background(), []gallery.OrderUpdate{
		{ID: a.ID(), Order: 0},
		{ID: kernel.NewUUID(), Order: 1},
	})

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ItemRepositoryIntegrationTestSuite) TestDelete_LeavesGap() {
	ctx := context.Background()
	a := suite.addItem(gallery.Photo, "A", 0)
	b := suite.addItem(gallery.Photo, "B", 1)
	c := suite.addItem(gallery.Photo, "C", 2)

	suite.Require().NoError(suite.repository.Delete(ctx, b.ID()))

	suite.assertOrder(a.ID(), 0)
	suite.assertOrder(c.ID(), 2)

	err := suite.repository.Delete(ctx, b.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ItemRepositoryIntegrationTestSuite) newItem(kind gallery.Kind, title string) *gallery.Item {
	item, err := gallery.NewItem(kernel.NewUUID(), kind, gallery.Payload{Title: title}, time.Now(), nil)
	suite.Require().NoError(err)
	return item
}

// addItem stores a new item; a negative order leaves it unordered.
func (suite *ItemRepositoryIntegrationTestSuite) addItem(kind gallery.Kind, title string, order int) *gallery.Item {
	item := suite.newItem(kind, title)
	if order >= 0 {
		var err error
		item, err = item.WithOrder(order)
		suite.Require().NoError(err)
	}
	suite.Require().NoError(suite.repository.Add(context.Background(), item))
	return item
}

func (suite *ItemRepositoryIntegrationTestSuite) assertOrder(id kernel.UUID, want int) {
	got, err := suite.repository.Get(context.Background(), id)
	suite.Require().NoError(err)

	order, ok := got.Order()
	suite.True(ok)
	suite.Equal(want, order)
}

func TestItemRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}
	suite.Run(t, new(ItemRepositoryIntegrationTestSuite))
}
