// Package reorder implements the drag-and-drop ordering of the admin gallery.
//
// A Coordinator owns the in-memory list of one kind. It is loaded with
// FetchAll, reordered with ApplyDrag and read with View:
//
//	c := reorder.NewCoordinator(store, gallery.Photo, logger)
//	if err := c.FetchAll(ctx); err != nil {
//		// the previous list is still shown, View reports Failed
//	}
//	dst := 3
//	err := c.ApplyDrag(ctx, reorder.Drag{Source: 1, Destination: &dst})
//
// # Persistence
//
// A drag is applied to the in-memory list before ApplyDrag returns. The new
// dense numbering of the displayed list is then written to the Store in one
// bulk call from a background goroutine, retried with exponential backoff.
// If every attempt fails the list is not reverted; the coordinator reloads
// the whole list from the Store instead.
//
// Overlapping drags are not serialized. Each starts its own write and the
// last one to reach the Store wins.
//
// # Tag filter
//
// Under a tag filter only the matching items are renumbered (0..k-1). Items
// outside the filter keep their stored order, so two items of the full list
// may end up sharing an order value. That state is left as is; the order
// audit job reports it.
package reorder
