package queries

import (
	"context"
	"time"

	"babyjournal/internal/core/domain/model/gallery"
	"babyjournal/internal/core/domain/model/kernel"
	"babyjournal/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ListItemsQueryHandler reads every item of a kind in display order: by
// order when the whole list is ordered, newest first otherwise.
type ListItemsQueryHandler struct {
	db *gorm.DB
}

func NewListItemsQueryHandler(db *gorm.DB) ListItemsQueryHandler {
	return ListItemsQueryHandler{db: db}
}

func (h ListItemsQueryHandler) Handle(
	ctx context.Context,
	query ListItemsQuery,
) ([]ListItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			content,
			media,
			date,
			tags,
			position
		FROM gallery_items
		WHERE kind = ?
		ORDER BY date DESC, id
	`, int(query.Kind())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*gallery.Item, 0)
	for rows.Next() {
		var (
			id             uuid.UUID
			title, content string
			media, tags    pq.StringArray
			date           time.Time
			position       *int
		)

		if err = rows.Scan(&id, &title, &content, &media, &date, &tags, &position); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		item, itemErr := gallery.RestoreItem(
			itemID,
			query.Kind(),
			gallery.Payload{Title: title, Content: content, Media: media},
			date,
			tags,
			position,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	sorted := services.SortForDisplay(items)
	responses := make([]ListItemsQueryResponse, 0, len(sorted))
	for _, item := range sorted {
		responses = append(responses, toResponse(item))
	}
	return responses, nil
}

func toResponse(item *gallery.Item) ListItemsQueryResponse {
	payload := item.Payload()
	resp := ListItemsQueryResponse{
		ID:      item.ID(),
		Kind:    item.Kind(),
		Title:   payload.Title,
		Content: payload.Content,
		Media:   payload.Media,
		Date:    item.Date(),
		Tags:    item.Tags(),
	}
	if order, ok := item.Order(); ok {
		resp.Order = &order
	}
	return resp
}
