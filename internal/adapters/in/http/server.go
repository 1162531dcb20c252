package http

import (
	"context"
	"errors"
	"net/http"

	"babyjournal/internal/core/application/reorder"
	"babyjournal/internal/core/application/usecases/commands"
	"babyjournal/internal/core/application/usecases/queries"
	"babyjournal/internal/core/domain/model/gallery"
	"babyjournal/internal/generated/servers"
	"babyjournal/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type (
	CreateItemHandler interface {
		Handle(ctx context.Context, cmd commands.CreateItemCommand) error
	}
	UpdateItemHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateItemCommand) error
	}
	DeleteItemHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteItemCommand) error
	}
	SetItemOrderHandler interface {
		Handle(ctx context.Context, cmd commands.SetItemOrderCommand) error
	}
	ListItemsHandler interface {
		Handle(ctx context.Context, query queries.ListItemsQuery) ([]queries.ListItemsQueryResponse, error)
	}
	ListTagsHandler interface {
		Handle(ctx context.Context, query queries.ListTagsQuery) ([]string, error)
	}
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createItemHandler   CreateItemHandler
	updateItemHandler   UpdateItemHandler
	deleteItemHandler   DeleteItemHandler
	setItemOrderHandler SetItemOrderHandler

	// Query handlers
	listItemsHandler ListItemsHandler
	listTagsHandler  ListTagsHandler

	// One admin gallery per kind, alive for the whole process.
	galleries map[gallery.Kind]*reorder.Coordinator
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createItemHandler CreateItemHandler,
	updateItemHandler UpdateItemHandler,
	deleteItemHandler DeleteItemHandler,
	setItemOrderHandler SetItemOrderHandler,
	listItemsHandler ListItemsHandler,
	listTagsHandler ListTagsHandler,
	galleries map[gallery.Kind]*reorder.Coordinator,
) *Server {
	return &Server{
		createItemHandler:   createItemHandler,
		updateItemHandler:   updateItemHandler,
		deleteItemHandler:   deleteItemHandler,
		setItemOrderHandler: setItemOrderHandler,
		listItemsHandler:    listItemsHandler,
		listTagsHandler:     listTagsHandler,
		galleries:           galleries,
	}
}

// failure writes err as a servers.Error. Validation errors carry their own
// message; anything unexpected is reported with fallback only.
func failure(ctx echo.Context, err error, fallback string) error {
	status := http.StatusInternalServerError
	message := fallback

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, reorder.ErrNotReady):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, reorder.ErrFetchFailed):
		status = http.StatusServiceUnavailable
		message = err.Error()
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: message,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
