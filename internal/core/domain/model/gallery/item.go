package gallery

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"babyjournal/internal/core/domain/model/kernel"
	"babyjournal/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item did not come from
	// NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Payload is the descriptive part of an item. The ordering logic never looks
// inside it.
type Payload struct {
	Title   string
	Content string
	Media   []string
}

// Item is a single entry of the journal gallery: a photo, a milestone or a
// record.
//
// Its identity is a kernel.UUID assigned on creation. The display order is
// optional. Items created through the API start unordered and only receive
// an order when an admin drag renumbers their list; legacy items may never
// get one. A list in which every item is ordered is displayed by ascending
// order, otherwise by date, newest first.
//
// An Item is never mutated by the reorder flow: WithOrder returns a copy, so
// a list handed out to a reader stays stable while a later reorder builds its
// own items. Revise is used by the edit flow on a freshly loaded item.
//
// Example:
//
//	item, err := gallery.NewItem(kernel.NewUUID(), gallery.Photo,
//	    gallery.Payload{Title: "First steps", Media: []string{"steps.jpg"}},
//	    takenAt, []string{"family"})
//	if err != nil {
//	    return err
//	}
//
//	placed, err := item.WithOrder(0) // item itself stays unordered
type Item struct {
	id      kernel.UUID
	kind    Kind
	payload Payload
	date    time.Time
	tags    []string
	order   *int

	isConstructed bool
}

// NewItem creates an unordered item. The title and date are required; tags
// are trimmed and de-duplicated. All validation errors are returned together,
// joined with errors.Join.
func NewItem(id kernel.UUID, kind Kind, payload Payload, date time.Time, tags []string) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setKind(kind),
		item.setPayload(payload),
		item.setDate(date),
	); err != nil {
		return nil, err
	}
	item.tags = normalizeTags(tags)

	return item, nil
}

// RestoreItem rebuilds an item read from storage, including its order.
func RestoreItem(
	id kernel.UUID,
	kind Kind,
	payload Payload,
	date time.Time,
	tags []string,
	order *int,
) (*Item, error) {
	item, err := NewItem(id, kind, payload, date, tags)
	if err != nil {
		return nil, err
	}

	if order != nil {
		if err = item.setOrder(*order); err != nil {
			return nil, err
		}
	}
	return item, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) Kind() Kind {
	return i.kind
}

func (i *Item) Payload() Payload {
	p := i.payload
	p.Media = slices.Clone(i.payload.Media)
	return p
}

func (i *Item) Title() string {
	return i.payload.Title
}

func (i *Item) Date() time.Time {
	return i.date
}

func (i *Item) Tags() []string {
	return slices.Clone(i.tags)
}

// HasTag reports whether the item carries tag. The empty tag matches every item.
func (i *Item) HasTag(tag string) bool {
	if tag == "" {
		return true
	}
	return slices.Contains(i.tags, tag)
}

// Order returns the display order and whether one is set.
func (i *Item) Order() (int, bool) {
	if i.order == nil {
		return 0, false
	}
	return *i.order, true
}

// IsEqual compares identity only.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// WithOrder returns a copy of the item placed at order. A negative order is
// rejected with a ValueIsInvalid error and the receiver is left as is.
func (i *Item) WithOrder(order int) (*Item, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}

	cp := *i
	cp.tags = slices.Clone(i.tags)
	cp.payload.Media = slices.Clone(i.payload.Media)
	if err := cp.setOrder(order); err != nil {
		return nil, err
	}
	return &cp, nil
}

// Revise replaces the descriptive fields of the item. The order is kept as is.
func (i *Item) Revise(payload Payload, date time.Time, tags []string) error {
	if err := i.Validate(); err != nil {
		return err
	}

	next := *i
	if err := errors.Join(next.setPayload(payload), next.setDate(date)); err != nil {
		return err
	}
	next.tags = normalizeTags(tags)

	*i = next
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	i.kind = kind
	return nil
}

func (i *Item) setPayload(payload Payload) error {
	if strings.TrimSpace(payload.Title) == "" {
		return errs.NewValueIsRequiredError("title")
	}

	media := make([]string, 0, len(payload.Media))
	for _, m := range payload.Media {
		if m = strings.TrimSpace(m); m != "" {
			media = append(media, m)
		}
	}

	i.payload = Payload{
		Title:   strings.TrimSpace(payload.Title),
		Content: payload.Content,
		Media:   media,
	}
	return nil
}

func (i *Item) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	i.date = date.UTC()
	return nil
}

func (i *Item) setOrder(order int) error {
	if order < 0 {
		return errs.NewValueIsInvalidErrorWithCause("order", fmt.Errorf("%d is negative", order))
	}
	i.order = &order
	return nil
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || slices.Contains(out, tag) {
			continue
		}
		out = append(out, tag)
	}
	return out
}
