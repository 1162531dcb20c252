package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListTagsQueryHandler unnests the tag arrays of a kind.
type ListTagsQueryHandler struct {
	db *gorm.DB
}

func NewListTagsQueryHandler(db *gorm.DB) ListTagsQueryHandler {
	return ListTagsQueryHandler{db: db}
}

// Handle returns the sorted distinct tags.
func (h ListTagsQueryHandler) Handle(ctx context.Context, query ListTagsQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tags := make([]string, 0)
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT tag
		FROM gallery_items, unnest(tags) AS tag
		WHERE kind = ?
		ORDER BY tag
	`, int(query.Kind())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var tag string
		if err = rows.Scan(&tag); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return tags, nil
}
