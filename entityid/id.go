package entityid

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
)

// ID is a UUID bound at compile time to the entity kind K.
//
// K is never stored: an ID[K] has the size and layout of a uuid.UUID, and
// ids of different kinds are different Go types. IDs are comparable, so ==
// and map keys work and only look at the UUID.
//
// An ID has two textual forms. The public one, returned by String, is
// prefixed with the tag of K ("Cust_ec2ba151-...") and is what goes to JSON,
// URLs and logs. The database one, returned by DBID, is the bare UUID and is
// only meant for storage, where the kind is implied by the column.
type ID[K Kind] struct {
	raw uuid.UUID
}

// Wrap returns the id of kind K holding raw. Nothing is checked: the kind
// is given by the caller.
func Wrap[K Kind](raw uuid.UUID) ID[K] {
	return ID[K]{raw: raw}
}

// Parse parses the public form of an id, checking that its prefix is the
// tag of K. The prefix and the UUID are both case insensitive.
func Parse[K Kind](s string) (ID[K], error) {
	raw, err := parsePublic(TagOf[K](), s)
	if err != nil {
		return ID[K]{}, err
	}
	return ID[K]{raw: raw}, nil
}

// MustParse is like Parse but panics on error. Use it for constants and tests.
func MustParse[K Kind](s string) ID[K] {
	id, err := Parse[K](s)
	if err != nil {
		panic(err)
	}
	return id
}

// ParseRaw parses the database form of an id, a bare hyphenated UUID. The
// kind is not checked as it is not part of that form.
func ParseRaw[K Kind](s string) (ID[K], error) {
	raw, err := parseRaw(s)
	if err != nil {
		return ID[K]{}, err
	}
	return ID[K]{raw: raw}, nil
}

// UUID returns the underlying UUID.
func (id ID[K]) UUID() uuid.UUID {
	return id.raw
}

// Tag returns the tag of K.
func (id ID[K]) Tag() Tag {
	return TagOf[K]()
}

// String returns the public form of the id.
func (id ID[K]) String() string {
	return formatPublic(TagOf[K](), id.raw)
}

// DBID returns the bare UUID. Prefer binding the ID itself in queries.
func (id ID[K]) DBID() string {
	return id.raw.String()
}

func (id ID[K]) GoString() string {
	return fmt.Sprintf("entityid.ID[%s]{%s}", TagOf[K](), id.raw)
}

func (id ID[K]) IsZero() bool {
	return id.raw == uuid.Nil
}

// Compare orders ids by the bytes of their UUID. It returns -1, 0 or +1.
func (id ID[K]) Compare(other ID[K]) int {
	return bytes.Compare(id.raw[:], other.raw[:])
}

func (id ID[K]) Less(other ID[K]) bool {
	return id.Compare(other) < 0
}
