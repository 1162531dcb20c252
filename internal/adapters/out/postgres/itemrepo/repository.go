package itemrepo

import (
	"context"
	"errors"

	"babyjournal/internal/core/domain/model/gallery"
	"babyjournal/internal/core/domain/model/kernel"
	"babyjournal/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormItemRepository implements ports.ItemRepository on top of GORM.
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository binds the repository to db, which may be a
// transaction handle.
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

func (r *GormItemRepository) Add(ctx context.Context, item *gallery.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes the descriptive columns only; kind and position are never
// touched by an edit.
func (r *GormItemRepository) Update(ctx context.Context, item *gallery.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).
		Model(&ItemDTO{}).
		Where("id = ?", dto.ID).
		Select("title", "content", "media", "date", "tags").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item", item.ID().String())
	}
	return nil
}

func (r *GormItemRepository) Get(ctx context.Context, id kernel.UUID) (*gallery.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormItemRepository) ListByKind(ctx context.Context, kind gallery.Kind) ([]*gallery.Item, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "kind = ?", int(kind)).Error; err != nil {
		return nil, err
	}

	items := make([]*gallery.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *GormItemRepository) SetOrders(ctx context.Context, updates []gallery.OrderUpdate) error {
	if err := gallery.ValidateOrderUpdates(updates); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	for _, u := range updates {
		result := db.Model(&ItemDTO{}).Where("id = ?", u.ID.Bytes()).Update("position", u.Order)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("item", u.ID.String())
		}
	}
	return nil
}

func (r *GormItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item", id.String())
	}
	return nil
}
