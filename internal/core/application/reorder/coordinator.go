package reorder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"babyjournal/internal/core/domain/model/gallery"
	"babyjournal/internal/core/domain/services"

	"github.com/cenkalti/backoff/v4"
)

var (
	// ErrFetchFailed wraps a failed list load. The previous list is kept.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrPersistFailed is logged when a bulk write gives up. It is never
	// returned to a caller; the coordinator reloads instead.
	ErrPersistFailed = errors.New("persist failed")

	// ErrNotReady is returned by ApplyDrag before the first list is loaded
	// or while a load is running.
	ErrNotReady = errors.New("gallery list is not loaded")
)

// Drag is one drag-and-drop gesture. Source and Destination index the list
// displayed under Tag; an empty Tag is the unfiltered list. A nil Destination
// is a drop outside the list.
type Drag struct {
	Tag         string
	Source      int
	Destination *int
}

// View is a snapshot of a coordinator, filtered by tag.
type View struct {
	Kind   gallery.Kind
	State  State
	Failed bool
	Err    error
	Items  []*gallery.Item
	Tags   []string
}

type Option func(*Coordinator)

// WithRetryPolicy replaces DefaultRetryPolicy for bulk writes.
func WithRetryPolicy(policy RetryPolicy) Option {
	return func(c *Coordinator) {
		c.retry = policy
	}
}

// Coordinator owns the ordered list of one kind. It is safe for concurrent
// use; the store is never called with the lock held.
type Coordinator struct {
	store  Store
	kind   gallery.Kind
	logger *slog.Logger
	retry  RetryPolicy

	mu       sync.Mutex
	state    State
	items    []*gallery.Item
	tags     []string
	failed   bool
	lastErr  error
	pending  int
	fetchSeq uint64
	// stale is set when a list was read while writes were pending; the
	// last of those writes reloads it.
	stale bool

	inflight sync.WaitGroup
}

func NewCoordinator(store Store, kind gallery.Kind, logger *slog.Logger, opts ...Option) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Coordinator{
		store:  store,
		kind:   kind,
		logger: logger.With("component", "reorder_coordinator", "kind", kind.String()),
		retry:  DefaultRetryPolicy(),
		state:  Idle,
		items:  make([]*gallery.Item, 0),
		tags:   make([]string, 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Coordinator) Kind() gallery.Kind {
	return c.kind
}

// FetchAll replaces the list with the store's. On failure the previous list
// stays in place, the view is flagged and the error wraps ErrFetchFailed.
//
// A list read while bulk writes are pending may predate them. It is shown
// as is and reloaded once the last of those writes succeeds.
func (c *Coordinator) FetchAll(ctx context.Context) error {
	c.mu.Lock()
	c.state = Fetching
	c.fetchSeq++
	seq := c.fetchSeq
	c.mu.Unlock()

	items, err := c.store.ListItems(ctx, c.kind)

	c.mu.Lock()
	defer c.mu.Unlock()

	// A newer fetch started meanwhile and owns the outcome.
	if seq != c.fetchSeq {
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFetchFailed, err)
		}
		return nil
	}

	if err != nil {
		err = fmt.Errorf("%w: %w", ErrFetchFailed, err)
		c.failed = true
		c.lastErr = err
		c.state = Error
		c.logger.WarnContext(ctx, "Gallery fetch failed, keeping previous list",
			"error", err, "items", len(c.items))
		return err
	}

	c.items = services.SortForDisplay(items)
	c.tags = services.DistinctTags(c.items)
	c.failed = false
	c.lastErr = nil
	c.stale = c.pending > 0
	if c.pending > 0 {
		c.state = Persisting
	} else {
		c.state = Ready
	}
	return nil
}

// ApplyDrag moves the item at drag.Source to drag.Destination of the list
// shown under drag.Tag and starts persisting the new numbering. The
// in-memory list is updated before it returns. A nil destination changes
// nothing.
func (c *Coordinator) ApplyDrag(ctx context.Context, drag Drag) error {
	if drag.Destination == nil {
		return nil
	}

	c.mu.Lock()
	if !c.state.acceptsDrags() {
		state := c.state
		c.mu.Unlock()
		return fmt.Errorf("%w: coordinator is %s", ErrNotReady, state)
	}

	displayed := services.FilterByTag(c.items, drag.Tag)
	moved, err := services.Splice(displayed, drag.Source, *drag.Destination)
	if err != nil {
		c.mu.Unlock()
		return err
	}

	renumbered, err := renumber(moved)
	if err != nil {
		c.mu.Unlock()
		return err
	}

	if drag.Tag == "" {
		c.items = renumbered
	} else {
		c.items = replaceSlots(c.items, drag.Tag, renumbered)
	}

	updates := services.DenseOrders(renumbered)
	c.state = Persisting
	c.pending++
	c.inflight.Add(1)
	c.mu.Unlock()

	go c.persist(context.WithoutCancel(ctx), updates)
	return nil
}

// View returns the list displayed under tag. The returned slices are copies.
func (c *Coordinator) View(tag string) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	return View{
		Kind:   c.kind,
		State:  c.state,
		Failed: c.failed,
		Err:    c.lastErr,
		Items:  services.FilterByTag(c.items, tag),
		Tags:   slices.Clone(c.tags),
	}
}

func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Wait blocks until every write started so far, and any reload it
// triggered, has finished.
func (c *Coordinator) Wait() {
	c.inflight.Wait()
}

func (c *Coordinator) persist(ctx context.Context, updates []gallery.OrderUpdate) {
	defer c.inflight.Done()

	op := func() error {
		return retryable(c.store.BulkSetOrder(ctx, updates))
	}
	notify := func(err error, next time.Duration) {
		c.logger.WarnContext(ctx, "Bulk order write failed, retrying",
			"error", err, "retry_in", next, "items", len(updates))
	}
	err := backoff.RetryNotify(op, c.retry.backOff(ctx), notify)

	c.mu.Lock()
	c.pending--
	if err == nil {
		reload := c.stale && c.pending == 0
		if reload {
			c.stale = false
		} else if c.state == Persisting && c.pending == 0 {
			c.state = Ready
		}
		c.mu.Unlock()

		if reload {
			c.logger.InfoContext(ctx, "List was read before the last write landed, reloading")
			_ = c.FetchAll(ctx)
		}
		return
	}
	c.mu.Unlock()

	c.logger.ErrorContext(ctx, "Bulk order write gave up, reloading list",
		"error", fmt.Errorf("%w: %w", ErrPersistFailed, err))

	// The reload records its own failure in the view.
	_ = c.FetchAll(ctx)
}

func renumber(items []*gallery.Item) ([]*gallery.Item, error) {
	out := make([]*gallery.Item, len(items))
	for i, item := range items {
		next, err := item.WithOrder(i)
		if err != nil {
			return nil, err
		}
		out[i] = next
	}
	return out, nil
}

// replaceSlots puts filtered back into the positions of all that match tag,
// in sequence. Items outside the filter do not move.
func replaceSlots(all []*gallery.Item, tag string, filtered []*gallery.Item) []*gallery.Item {
	out := slices.Clone(all)
	next := 0
	for i, item := range out {
		if item.HasTag(tag) {
			out[i] = filtered[next]
			next++
		}
	}
	return out
}
