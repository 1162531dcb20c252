package commands

import (
	"errors"
	"time"

	"babyjournal/internal/core/domain/model/gallery"
	"babyjournal/internal/core/domain/model/kernel"
	"babyjournal/internal/pkg/errs"
	"babyjournal/internal/pkg/guard"
)

var (
	ErrCreateItemCommandIsNotConstructed = errors.New(
		"CreateItemCommand must be created via NewCreateItemCommand constructor",
	)
)

// CreateItemCommand adds a photo, milestone or record to the gallery. New
// items are unordered until the first reorder of their list.
//
//	cmd, err := NewCreateItemCommand(kernel.NewUUID(), gallery.Photo, payload, takenAt, []string{"travel"})
//	if err != nil {
//	    return fmt.Errorf("invalid item: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateItemCommand struct { //nolint:recvcheck //using for validation
	itemID  kernel.UUID
	kind    gallery.Kind
	payload gallery.Payload
	date    time.Time
	tags    []string

	guard guard.ConstructorGuard
}

// NewCreateItemCommand validates the id, kind, title and date.
func NewCreateItemCommand(
	itemID kernel.UUID,
	kind gallery.Kind,
	payload gallery.Payload,
	date time.Time,
	tags []string,
) (CreateItemCommand, error) {
	cmd := CreateItemCommand{
		tags:    tags,
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setKind(kind),
		cmd.setDate(date),
		validateTitle(payload.Title),
	); err != nil {
		return CreateItemCommand{}, err
	}

	return cmd, nil
}

func (c CreateItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateItemCommandIsNotConstructed)
}

func (c CreateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c CreateItemCommand) Kind() gallery.Kind {
	return c.kind
}

func (c CreateItemCommand) Payload() gallery.Payload {
	return c.payload
}

func (c CreateItemCommand) Date() time.Time {
	return c.date
}

func (c CreateItemCommand) Tags() []string {
	return c.tags
}

func (c *CreateItemCommand) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.itemID = id
	return nil
}

func (c *CreateItemCommand) setKind(kind gallery.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

func (c *CreateItemCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	c.date = date
	return nil
}

func validateTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	return nil
}
