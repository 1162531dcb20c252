package reorder_test

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"babyjournal/internal/core/domain/model/gallery"
	"babyjournal/internal/core/domain/model/kernel"
	"babyjournal/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

var errUnreachable = errors.New("store unreachable")

// fakeStore keeps items in memory. Lists come back in reverse insertion
// order so the coordinator has to sort them.
type fakeStore struct {
	mu sync.Mutex

	ids   []kernel.UUID
	items map[kernel.UUID]*gallery.Item

	listErr    error
	failWrites int // the next failWrites bulk writes fail
	writeErr   error
	gate       chan struct{}
	writes     [][]gallery.OrderUpdate
	listCalls  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: make(map[kernel.UUID]*gallery.Item)}
}

func (s *fakeStore) ListItems(_ context.Context, kind gallery.Kind) ([]*gallery.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}

	out := make([]*gallery.Item, 0, len(s.ids))
	for i := len(s.ids) - 1; i >= 0; i-- {
		item := s.items[s.ids[i]]
		if item.Kind() == kind {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *fakeStore) BulkSetOrder(_ context.Context, updates []gallery.OrderUpdate) error {
	s.mu.Lock()
	gate := s.gate
	s.mu.Unlock()
	if gate != nil {
		<-gate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.writes = append(s.writes, updates)
	if s.failWrites > 0 {
		s.failWrites--
		if s.writeErr != nil {
			return s.writeErr
		}
		return errUnreachable
	}

	for _, u := range updates {
		if _, ok := s.items[u.ID]; !ok {
			return errs.NewObjectNotFoundError("id", u.ID)
		}
	}
	for _, u := range updates {
		next, err := s.items[u.ID].WithOrder(u.Order)
		if err != nil {
			return err
		}
		s.items[u.ID] = next
	}
	return nil
}

func (s *fakeStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.writes)
}

func (s *fakeStore) listCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listCalls
}

func (s *fakeStore) lastWrite() []gallery.OrderUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.writes) == 0 {
		return nil
	}
	return s.writes[len(s.writes)-1]
}

func (s *fakeStore) storedItems() []*gallery.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*gallery.Item, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, s.items[id])
	}
	return out
}

func (s *fakeStore) set(fn func(s *fakeStore)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s)
}

// seed adds one ordered photo per title, numbered in the given sequence.
func (s *fakeStore) seed(t *testing.T, titles []string, tags map[string][]string) {
	t.Helper()

	day := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range titles {
		item := s.add(t, title, day.AddDate(0, 0, i), tags[title])

		item, err := item.WithOrder(i)
		require.NoError(t, err)
		s.items[item.ID()] = item
	}
}

// seedUnordered adds photos without an order, the first title the newest.
func (s *fakeStore) seedUnordered(t *testing.T, titles []string) {
	t.Helper()

	day := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	for i, title := range titles {
		s.add(t, title, day.AddDate(0, 0, -i), nil)
	}
}

func (s *fakeStore) add(t *testing.T, title string, date time.Time, tags []string) *gallery.Item {
	t.Helper()

	item, err := gallery.NewItem(kernel.NewUUID(), gallery.Photo, gallery.Payload{Title: title}, date, tags)
	require.NoError(t, err)

	s.ids = append(s.ids, item.ID())
	s.items[item.ID()] = item
	return item
}

// labels renders items as "title:order".
func labels(items []*gallery.Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, label(item.Title(), item))
	}
	return out
}

func label(title string, item *gallery.Item) string {
	order, ok := item.Order()
	if !ok {
		return title + ":-"
	}
	return title + ":" + strconv.Itoa(order)
}

// writeLabels renders a bulk write as "title:order" using the store's titles.
func (s *fakeStore) writeLabels(updates []gallery.OrderUpdate) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(updates))
	for _, u := range updates {
		out = append(out, s.items[u.ID].Title()+":"+strconv.Itoa(u.Order))
	}
	return out
}
