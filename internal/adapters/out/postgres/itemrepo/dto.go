package itemrepo

import (
	"time"

	"babyjournal/internal/core/domain/model/gallery"
	"babyjournal/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ItemDTO is the gallery_items row. The display order lives in the
// "position" column because ORDER is reserved in SQL.
type ItemDTO struct {
	ID       uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Kind     int            `gorm:"not null;index"`
	Title    string         `gorm:"not null"`
	Content  string         `gorm:"type:text"`
	Media    pq.StringArray `gorm:"type:text[]"`
	Date     time.Time      `gorm:"not null;index"`
	Tags     pq.StringArray `gorm:"type:text[]"`
	Position *int           `gorm:"index"`
}

func (ItemDTO) TableName() string {
	return "gallery_items"
}

func fromDomain(item *gallery.Item) ItemDTO {
	payload := item.Payload()

	var position *int
	if order, ok := item.Order(); ok {
		position = &order
	}

	return ItemDTO{
		ID:       item.ID().Bytes(),
		Kind:     int(item.Kind()),
		Title:    payload.Title,
		Content:  payload.Content,
		Media:    pq.StringArray(payload.Media),
		Date:     item.Date(),
		Tags:     pq.StringArray(item.Tags()),
		Position: position,
	}
}

func toDomain(dto ItemDTO) (*gallery.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return gallery.RestoreItem(
		id,
		gallery.Kind(dto.Kind),
		gallery.Payload{
			Title:   dto.Title,
			Content: dto.Content,
			Media:   []string(dto.Media),
		},
		dto.Date,
		[]string(dto.Tags),
		dto.Position,
	)
}
