package kernel

import (
	"fmt"

	"babyjournal/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not built through one of
// the constructor functions. Validate returns it for the zero value and for
// the nil UUID, which would otherwise collide across items.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes",
)

// UUID is the immutable identifier of a gallery item. It wraps
// github.com/google/uuid so that the zero value can be rejected and the
// domain does not depend on the library's API directly.
//
// The zero value is invalid. Build a UUID with NewUUID for new items, with
// UUIDFromString for identifiers received over HTTP, or with UUIDFromBytes
// for identifiers read back from storage.
//
// UUID is a comparable value and safe for concurrent use.
//
// Example:
//
//	// a new item
//	id := kernel.NewUUID()
//	item, err := gallery.NewItem(id, gallery.Photo, payload, takenAt, tags)
//
//	// an id from a request path
//	id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    // answer 400
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) identifier. Item ids are assigned
// by the server on create, never by the client.
//
// Example:
//
//	id := kernel.NewUUID()
//	fmt.Println(id) // e.g. "7c9e6679-7425-40de-944b-e07fc1f90ae7"
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses the canonical textual form, as received in API paths
// and request bodies.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}

	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

// UUIDFromBytes restores an identifier from its 16-byte storage form. The
// slice must be exactly 16 bytes long.
//
// Example:
//
//	var raw uuid.UUID // scanned from a uuid column
//	id, err := kernel.UUIDFromBytes(raw[:])
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}

	restored := UUID{id: id}
	if err = restored.Validate(); err != nil {
		return UUID{}, err
	}
	return restored, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying google UUID, used by the persistence and HTTP
// adapters.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both identifiers hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
