package cmd

import (
	"log/slog"
	"sync"

	httpin "babyjournal/internal/adapters/in/http"
	"babyjournal/internal/adapters/out/gallerystore"
	"babyjournal/internal/adapters/out/postgres"
	"babyjournal/internal/core/application/reorder"
	"babyjournal/internal/core/application/usecases/commands"
	"babyjournal/internal/core/application/usecases/queries"
	"babyjournal/internal/core/domain/model/gallery"
	"babyjournal/internal/jobs"

	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	galleriesOnce sync.Once
	galleries     map[gallery.Kind]*reorder.Coordinator
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	return &CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

// OpenDatabase connects gorm to the configured PostgreSQL.
func OpenDatabase(configs Config) (*gorm.DB, error) {
	return gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
}

func (c *CompositionRoot) itemUoWFactory() commands.ItemUoWFactory {
	return FuncItemUoWFactory(func() commands.ItemUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateItemCommandHandler() commands.CreateItemCommandHandler {
	return commands.NewCreateItemCommandHandler(c.itemUoWFactory())
}

func (c *CompositionRoot) CreateUpdateItemCommandHandler() commands.UpdateItemCommandHandler {
	return commands.NewUpdateItemCommandHandler(c.itemUoWFactory())
}

func (c *CompositionRoot) CreateDeleteItemCommandHandler() commands.DeleteItemCommandHandler {
	return commands.NewDeleteItemCommandHandler(c.itemUoWFactory())
}

func (c *CompositionRoot) CreateSetItemOrderCommandHandler() commands.SetItemOrderCommandHandler {
	return commands.NewSetItemOrderCommandHandler(c.itemUoWFactory())
}

func (c *CompositionRoot) CreateListItemsQueryHandler() queries.ListItemsQueryHandler {
	return queries.NewListItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListTagsQueryHandler() queries.ListTagsQueryHandler {
	return queries.NewListTagsQueryHandler(c.gormDB)
}

// CreateGalleryStore is the store the coordinators and the audit job read
// and write through.
func (c *CompositionRoot) CreateGalleryStore() *gallerystore.Store {
	setOrder := c.CreateSetItemOrderCommandHandler()
	return gallerystore.New(c.CreateListItemsQueryHandler(), &setOrder)
}

func (c *CompositionRoot) retryPolicy() reorder.RetryPolicy {
	policy := reorder.DefaultRetryPolicy()
	policy.MaxRetries = c.configs.PersistRetries
	return policy
}

// CreateGallery returns a standalone coordinator, for one-off commands.
func (c *CompositionRoot) CreateGallery(kind gallery.Kind) *reorder.Coordinator {
	return reorder.NewCoordinator(
		c.CreateGalleryStore(),
		kind,
		c.logger,
		reorder.WithRetryPolicy(c.retryPolicy()),
	)
}

// Galleries returns the process-wide admin coordinators, one per kind.
func (c *CompositionRoot) Galleries() map[gallery.Kind]*reorder.Coordinator {
	c.galleriesOnce.Do(func() {
		c.galleries = make(map[gallery.Kind]*reorder.Coordinator, len(gallery.Kinds()))
		for _, kind := range gallery.Kinds() {
			c.galleries[kind] = c.CreateGallery(kind)
		}
	})
	return c.galleries
}

// WaitGalleries blocks until pending order writes have finished.
func (c *CompositionRoot) WaitGalleries() {
	for _, coordinator := range c.Galleries() {
		coordinator.Wait()
	}
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	createItem := c.CreateCreateItemCommandHandler()
	updateItem := c.CreateUpdateItemCommandHandler()
	deleteItem := c.CreateDeleteItemCommandHandler()
	setItemOrder := c.CreateSetItemOrderCommandHandler()

	return httpin.NewServer(
		&createItem,
		&updateItem,
		&deleteItem,
		&setItemOrder,
		c.CreateListItemsQueryHandler(),
		c.CreateListTagsQueryHandler(),
		c.Galleries(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGalleryStore(), c.configs.AuditSchedule, c.logger)
}

type FuncItemUoWFactory func() commands.ItemUoW

func (f FuncItemUoWFactory) Create() commands.ItemUoW {
	return f()
}
