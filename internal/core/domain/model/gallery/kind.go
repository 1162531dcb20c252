package gallery

import (
	"fmt"
	"strings"

	"babyjournal/internal/pkg/errs"
)

// Kind is the subtype of a gallery item. Lists are always fetched for a
// single kind.
type Kind int

const (
	UnknownKind Kind = iota
	Photo
	Milestone
	Record
)

func kindNames() map[Kind]string {
	return map[Kind]string{
		Photo:     "photo",
		Milestone: "milestone",
		Record:    "record",
	}
}

// Kinds lists every valid kind in declaration order.
func Kinds() []Kind {
	return []Kind{Photo, Milestone, Record}
}

// ParseKind maps the lowercase API name of a kind back to its value.
func ParseKind(s string) (Kind, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames() {
		if name == needle {
			return k, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a valid kind", s))
}

// Validate rejects UnknownKind and values outside the enumeration.
func (k Kind) Validate() error {
	if _, ok := kindNames()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

func (k Kind) String() string {
	if name, ok := kindNames()[k]; ok {
		return name
	}
	return "unknown"
}
