package services

import (
	"cmp"
	"slices"

	"babyjournal/internal/core/domain/model/gallery"
	"babyjournal/internal/pkg/errs"
)

// SortForDisplay returns a sorted copy of items. When every item carries an
// order the list is ascending by order; otherwise it falls back to the item
// date, newest first. Both sorts are stable.
func SortForDisplay(items []*gallery.Item) []*gallery.Item {
	sorted := slices.Clone(items)

	if allOrdered(sorted) {
		slices.SortStableFunc(sorted, func(a, b *gallery.Item) int {
			oa, _ := a.Order()
			ob, _ := b.Order()
			return cmp.Compare(oa, ob)
		})
		return sorted
	}

	slices.SortStableFunc(sorted, func(a, b *gallery.Item) int {
		return b.Date().Compare(a.Date())
	})
	return sorted
}

func allOrdered(items []*gallery.Item) bool {
	for _, item := range items {
		if _, ok := item.Order(); !ok {
			return false
		}
	}
	return true
}

// Splice removes the element at source and inserts it at destination of the
// remaining n-1 elements. Elements between the two positions shift by one;
// nothing else moves. The input slice is left untouched.
func Splice[T any](list []T, source, destination int) ([]T, error) {
	n := len(list)
	if source < 0 || source >= n {
		return nil, errs.NewValueIsOutOfRangeError("source", source, 0, n-1)
	}
	if destination < 0 || destination >= n {
		return nil, errs.NewValueIsOutOfRangeError("destination", destination, 0, n-1)
	}

	moved := list[source]
	out := make([]T, 0, n)
	out = append(out, list[:source]...)
	out = append(out, list[source+1:]...)
	out = slices.Insert(out, destination, moved)
	return out, nil
}

// DenseOrders assigns order := position to every item of the list.
func DenseOrders(items []*gallery.Item) []gallery.OrderUpdate {
	updates := make([]gallery.OrderUpdate, len(items))
	for i, item := range items {
		updates[i] = gallery.OrderUpdate{ID: item.ID(), Order: i}
	}
	return updates
}

// FilterByTag keeps the items carrying tag, in their current relative order.
// An empty tag keeps everything.
func FilterByTag(items []*gallery.Item, tag string) []*gallery.Item {
	if tag == "" {
		return slices.Clone(items)
	}

	filtered := make([]*gallery.Item, 0, len(items))
	for _, item := range items {
		if item.HasTag(tag) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// DistinctTags returns every tag used by items, sorted.
func DistinctTags(items []*gallery.Item) []string {
	tags := make([]string, 0)
	for _, item := range items {
		tags = append(tags, item.Tags()...)
	}
	slices.Sort(tags)
	return slices.Compact(tags)
}
