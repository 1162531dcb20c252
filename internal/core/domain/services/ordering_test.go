package services_test

import (
	"testing"
	"time"

	"babyjournal/internal/core/domain/model/gallery"
	"babyjournal/internal/core/domain/model/kernel"
	"babyjournal/internal/core/domain/services"
	"babyjournal/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func item(t *testing.T, title string, daysAgo int, order *int, tags ...string) *gallery.Item {
	t.Helper()
	it, err := gallery.RestoreItem(
		kernel.NewUUID(),
		gallery.Photo,
		gallery.Payload{Title: title},
		base.AddDate(0, 0, -daysAgo),
		tags,
		order,
	)
	require.NoError(t, err)
	return it
}

func ptr(i int) *int { return &i }

func titles(items []*gallery.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title()
	}
	return out
}

func TestSortForDisplay(t *testing.T) {
	t.Run("ascending by order when all ordered", func(t *testing.T) {
		items := []*gallery.Item{
			item(t, "C", 0, ptr(2)),
			item(t, "A", 5, ptr(0)),
			item(t, "B", 1, ptr(1)),
		}

		assert.Equal(t, []string{"A", "B", "C"}, titles(services.SortForDisplay(items)))
		assert.Equal(t, []string{"C", "A", "B"}, titles(items), "input must not be reordered")
	})

	t.Run("date descending when any order is missing", func(t *testing.T) {
		items := []*gallery.Item{
			item(t, "old", 10, ptr(0)),
			item(t, "new", 0, nil),
			item(t, "mid", 3, ptr(1)),
		}

		assert.Equal(t, []string{"new", "mid", "old"}, titles(services.SortForDisplay(items)))
	})

	t.Run("duplicate orders keep fetch order", func(t *testing.T) {
		items := []*gallery.Item{
			item(t, "first", 0, ptr(0)),
			item(t, "second", 0, ptr(0)),
		}

		assert.Equal(t, []string{"first", "second"}, titles(services.SortForDisplay(items)))
	})
}

func TestSplice(t *testing.T) {
	list := []string{"A", "B", "C", "D"}

	tests := []struct {
		name        string
		source      int
		destination int
		want        []string
	}{
		{"move down", 1, 3, []string{"A", "C", "D", "B"}},
		{"move up", 3, 0, []string{"D", "A", "B", "C"}},
		{"neighbour", 0, 1, []string{"B", "A", "C", "D"}},
		{"same position", 2, 2, []string{"A", "B", "C", "D"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := services.Splice(list, tt.source, tt.destination)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.ElementsMatch(t, list, got)
		})
	}

	assert.Equal(t, []string{"A", "B", "C", "D"}, list)
}

func TestSplice_IsPermutationForAllPairs(t *testing.T) {
	list := []int{10, 11, 12, 13, 14}
	for s := range list {
		for d := range list {
			got, err := services.Splice(list, s, d)
			require.NoError(t, err)
			assert.ElementsMatch(t, list, got)
			assert.Equal(t, list[s], got[d])
		}
	}
}

func TestSplice_OutOfRange(t *testing.T) {
	_, err := services.Splice([]int{1, 2}, 2, 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = services.Splice([]int{1, 2}, 0, -1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = services.Splice([]int{}, 0, 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestDenseOrders(t *testing.T) {
	a, b, c, d := item(t, "A", 0, nil), item(t, "B", 0, nil), item(t, "C", 0, nil), item(t, "D", 0, nil)

	moved, err := services.Splice([]*gallery.Item{a, b, c, d}, 1, 3)
	require.NoError(t, err)

	updates := services.DenseOrders(moved)
	require.Len(t, updates, 4)

	want := map[string]int{"A": 0, "C": 1, "D": 2, "B": 3}
	for i, it := range moved {
		assert.True(t, updates[i].ID.IsEqual(it.ID()))
		assert.Equal(t, want[it.Title()], updates[i].Order)
	}

	assert.Equal(t, updates, services.DenseOrders(moved), "same arrangement yields same orders")
}

func TestFilterByTagAndDistinctTags(t *testing.T) {
	items := []*gallery.Item{
		item(t, "A", 0, nil, "home"),
		item(t, "B", 0, nil),
		item(t, "C", 0, nil, "travel", "beach"),
		item(t, "D", 0, nil, "travel"),
	}

	assert.Equal(t, []string{"C", "D"}, titles(services.FilterByTag(items, "travel")))
	assert.Len(t, services.FilterByTag(items, ""), 4)
	assert.Empty(t, services.FilterByTag(items, "school"))
	assert.Equal(t, []string{"beach", "home", "travel"}, services.DistinctTags(items))
	assert.Empty(t, services.DistinctTags(nil))
}
