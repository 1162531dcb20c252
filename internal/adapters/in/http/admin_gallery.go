package http

import (
	"net/http"

	"babyjournal/internal/core/application/reorder"
	"babyjournal/internal/core/domain/model/gallery"
	"babyjournal/internal/generated/servers"
	"babyjournal/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetGalleryView handles GET /api/v1/admin/gallery/{kind}. The first request
// for a kind loads its list.
func (s *Server) GetGalleryView(ctx echo.Context, kind servers.Kind, params servers.GetGalleryViewParams) error {
	coordinator, err := s.coordinator(kind)
	if err != nil {
		return failure(ctx, err, "Invalid kind")
	}

	s.ensureLoaded(ctx, coordinator)
	return ctx.JSON(http.StatusOK, toGalleryView(coordinator.View(deref(params.Tag))))
}

// RefreshGallery handles POST /api/v1/admin/gallery/{kind}/refresh. A failed
// reload still answers 200; the view carries the error flag.
func (s *Server) RefreshGallery(ctx echo.Context, kind servers.Kind) error {
	coordinator, err := s.coordinator(kind)
	if err != nil {
		return failure(ctx, err, "Invalid kind")
	}

	_ = coordinator.FetchAll(ctx.Request().Context())
	return ctx.JSON(http.StatusOK, toGalleryView(coordinator.View("")))
}

// DragGalleryItem handles POST /api/v1/admin/gallery/{kind}/drag. The answer
// already shows the moved item; the write finishes in the background.
func (s *Server) DragGalleryItem(ctx echo.Context, kind servers.Kind) error {
	coordinator, err := s.coordinator(kind)
	if err != nil {
		return failure(ctx, err, "Invalid kind")
	}

	var body servers.Drag
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	s.ensureLoaded(ctx, coordinator)

	// Nothing was ever loaded, so any index would be out of range.
	if view := coordinator.View(""); view.Failed && len(view.Items) == 0 {
		return failure(ctx, view.Err, "Gallery list is unavailable")
	}

	drag := reorder.Drag{
		Tag:         deref(body.Tag),
		Source:      body.Source,
		Destination: body.Destination,
	}
	if err = coordinator.ApplyDrag(ctx.Request().Context(), drag); err != nil {
		return failure(ctx, err, "Failed to apply drag")
	}

	return ctx.JSON(http.StatusOK, toGalleryView(coordinator.View(drag.Tag)))
}

func (s *Server) coordinator(kind servers.Kind) (*reorder.Coordinator, error) {
	k, err := gallery.ParseKind(string(kind))
	if err != nil {
		return nil, err
	}

	coordinator, ok := s.galleries[k]
	if !ok {
		return nil, errs.NewObjectNotFoundError("gallery", k.String())
	}
	return coordinator, nil
}

func (s *Server) ensureLoaded(ctx echo.Context, coordinator *reorder.Coordinator) {
	if coordinator.State() == reorder.Idle {
		_ = coordinator.FetchAll(ctx.Request().Context())
	}
}

func toGalleryView(view reorder.View) servers.GalleryView {
	items := make([]servers.Item, len(view.Items))
	for i, item := range view.Items {
		items[i] = toItem(item)
	}

	out := servers.GalleryView{
		Kind:  servers.ItemKind(view.Kind.String()),
		State: servers.GalleryViewState(view.State.String()),
		Error: view.Failed,
		Items: items,
		Tags:  orEmpty(view.Tags),
	}
	if view.Err != nil {
		message := view.Err.Error()
		out.ErrorMessage = &message
	}
	return out
}
