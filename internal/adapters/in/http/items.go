package http

import (
	"net/http"

	"babyjournal/internal/core/application/usecases/commands"
	"babyjournal/internal/core/application/usecases/queries"
	"babyjournal/internal/core/domain/model/gallery"
	"babyjournal/internal/core/domain/model/kernel"
	"babyjournal/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListItems handles GET /api/v1/items - the items of one kind in display order.
func (s *Server) ListItems(ctx echo.Context, params servers.ListItemsParams) error {
	kind, err := gallery.ParseKind(string(params.Kind))
	if err != nil {
		return failure(ctx, err, "Invalid kind")
	}

	query, err := queries.NewListItemsQuery(kind)
	if err != nil {
		return failure(ctx, err, "Invalid query")
	}

	rows, err := s.listItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failure(ctx, err, "Failed to retrieve items")
	}

	response := make([]servers.Item, len(rows))
	for i, row := range rows {
		response[i] = servers.Item{
			Id:      row.ID.Bytes(),
			Kind:    servers.ItemKind(row.Kind.String()),
			Title:   row.Title,
			Content: row.Content,
			Media:   orEmpty(row.Media),
			Date:    row.Date,
			Tags:    orEmpty(row.Tags),
			Order:   row.Order,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateItem handles POST /api/v1/items. The id is assigned here.
func (s *Server) CreateItem(ctx echo.Context) error {
	var body servers.NewItem
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	kind, err := gallery.ParseKind(string(body.Kind))
	if err != nil {
		return failure(ctx, err, "Invalid kind")
	}

	payload := gallery.Payload{
		Title:   body.Title,
		Content: deref(body.Content),
		Media:   deref(body.Media),
	}
	cmd, err := commands.NewCreateItemCommand(kernel.NewUUID(), kind, payload, body.Date, deref(body.Tags))
	if err != nil {
		return failure(ctx, err, "Invalid item data")
	}

	if err = s.createItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failure(ctx, err, "Failed to create item")
	}

	created, err := gallery.NewItem(cmd.ItemID(), cmd.Kind(), cmd.Payload(), cmd.Date(), cmd.Tags())
	if err != nil {
		return failure(ctx, err, "Failed to create item")
	}
	return ctx.JSON(http.StatusCreated, toItem(created))
}

// UpdateItem handles PUT /api/v1/items/{id}. The order is left alone.
func (s *Server) UpdateItem(ctx echo.Context, id openapi_types.UUID) error {
	itemID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return failure(ctx, err, "Invalid item id")
	}

	var body servers.ItemUpdate
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	payload := gallery.Payload{
		Title:   body.Title,
		Content: deref(body.Content),
		Media:   deref(body.Media),
	}
	cmd, err := commands.NewUpdateItemCommand(itemID, payload, body.Date, deref(body.Tags))
	if err != nil {
		return failure(ctx, err, "Invalid item data")
	}

	if err = s.updateItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failure(ctx, err, "Failed to update item")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteItem handles DELETE /api/v1/items/{id}. Other items keep their order.
func (s *Server) DeleteItem(ctx echo.Context, id openapi_types.UUID) error {
	itemID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return failure(ctx, err, "Invalid item id")
	}

	cmd, err := commands.NewDeleteItemCommand(itemID)
	if err != nil {
		return failure(ctx, err, "Invalid item id")
	}

	if err = s.deleteItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failure(ctx, err, "Failed to delete item")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetItemOrder handles PUT /api/v1/items/order - one bulk order write.
func (s *Server) SetItemOrder(ctx echo.Context) error {
	var body servers.SetItemOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	updates := make([]gallery.OrderUpdate, 0, len(body))
	for _, u := range body {
		id, err := kernel.UUIDFromBytes(u.Id[:])
		if err != nil {
			return failure(ctx, err, "Invalid item id")
		}
		updates = append(updates, gallery.OrderUpdate{ID: id, Order: u.Order})
	}

	cmd, err := commands.NewSetItemOrderCommand(updates)
	if err != nil {
		return failure(ctx, err, "Invalid order data")
	}

	if err = s.setItemOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failure(ctx, err, "Failed to set item order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListTags handles GET /api/v1/tags.
func (s *Server) ListTags(ctx echo.Context, params servers.ListTagsParams) error {
	kind, err := gallery.ParseKind(string(params.Kind))
	if err != nil {
		return failure(ctx, err, "Invalid kind")
	}

	query, err := queries.NewListTagsQuery(kind)
	if err != nil {
		return failure(ctx, err, "Invalid query")
	}

	tags, err := s.listTagsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failure(ctx, err, "Failed to retrieve tags")
	}

	return ctx.JSON(http.StatusOK, orEmpty(tags))
}

func toItem(item *gallery.Item) servers.Item {
	payload := item.Payload()
	out := servers.Item{
		Id:      item.ID().Bytes(),
		Kind:    servers.ItemKind(item.Kind().String()),
		Title:   payload.Title,
		Content: payload.Content,
		Media:   orEmpty(payload.Media),
		Date:    item.Date(),
		Tags:    orEmpty(item.Tags()),
	}
	if order, ok := item.Order(); ok {
		out.Order = &order
	}
	return out
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
