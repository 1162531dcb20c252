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
	ErrUpdateItemCommandIsNotConstructed = errors.New(
		"UpdateItemCommand must be created via NewUpdateItemCommand constructor",
	)
)

// UpdateItemCommand edits the descriptive fields of an item. It carries no
// order: edits keep the item where it is.
type UpdateItemCommand struct { //nolint:recvcheck //using for validation
	itemID  kernel.UUID
	payload gallery.Payload
	date    time.Time
	tags    []string

	guard guard.ConstructorGuard
}

func NewUpdateItemCommand(
	itemID kernel.UUID,
	payload gallery.Payload,
	date time.Time,
	tags []string,
) (UpdateItemCommand, error) {
	cmd := UpdateItemCommand{
		payload: payload,
		tags:    tags,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setDate(date),
		validateTitle(payload.Title),
	); err != nil {
		return UpdateItemCommand{}, err
	}

	return cmd, nil
}

func (c UpdateItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemCommandIsNotConstructed)
}

func (c UpdateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c UpdateItemCommand) Payload() gallery.Payload {
	return c.payload
}

func (c UpdateItemCommand) Date() time.Time {
	return c.date
}

func (c UpdateItemCommand) Tags() []string {
	return c.tags
}

func (c *UpdateItemCommand) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.itemID = id
	return nil
}

func (c *UpdateItemCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	c.date = date
	return nil
}
