package entityid

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Union lists the tags a OneOf may hold. It is implemented by an empty type,
// the same way Kind is:
//
//	type PetID struct{}
//
//	func (PetID) Members() []entityid.Tag {
//		return []entityid.Tag{entityid.TagOf[Dog](), entityid.TagOf[Cat]()}
//	}
//
// Members are tried in order when parsing and the first matching tag wins.
type Union interface {
	Members() []Tag
}

// OneOf is an id whose kind is one of the members of U, known only once
// its public form has been parsed.
type OneOf[U Union] struct {
	tag Tag
	raw uuid.UUID
}

func membersOf[U Union]() []Tag {
	var u U
	return u.Members()
}

func expectedOf[U Union]() Tag {
	tags := membersOf[U]()
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = string(t)
	}
	return Tag(strings.Join(names, "|"))
}

// ParseOneOf parses a public id whose prefix is the tag of any member of U.
func ParseOneOf[U Union](s string) (OneOf[U], error) {
	prefix, value, ok := strings.Cut(s, string(Separator))
	if !ok {
		return OneOf[U]{}, &ParseError{Input: s, Expected: expectedOf[U](), Err: ErrMalformedValue}
	}
	for _, tag := range membersOf[U]() {
		if !tag.Matches(prefix) {
			continue
		}
		raw, ok := decodeRaw(value)
		if !ok {
			return OneOf[U]{}, &ParseError{Input: s, Expected: tag, Err: ErrMalformedValue}
		}
		return OneOf[U]{tag: tag, raw: raw}, nil
	}
	return OneOf[U]{}, &ParseError{Input: s, Expected: expectedOf[U](), Err: ErrPrefixMismatch}
}

// Lift converts a typed id, failing when K is not a member of U.
func Lift[U Union, K Kind](id ID[K]) (OneOf[U], error) {
	tag := TagOf[K]()
	for _, member := range membersOf[U]() {
		if member == tag {
			return OneOf[U]{tag: tag, raw: id.raw}, nil
		}
	}
	return OneOf[U]{}, fmt.Errorf("%w: %s is not one of %s", ErrPrefixMismatch, tag, expectedOf[U]())
}

// As returns the typed id held by o when its kind is K.
func As[K Kind, U Union](o OneOf[U]) (ID[K], bool) {
	if o.tag == "" || o.tag != TagOf[K]() {
		return ID[K]{}, false
	}
	return ID[K]{raw: o.raw}, true
}

func (o OneOf[U]) Tag() Tag {
	return o.tag
}

func (o OneOf[U]) UUID() uuid.UUID {
	return o.raw
}

func (o OneOf[U]) IsZero() bool {
	return o.tag == "" && o.raw == uuid.Nil
}

func (o OneOf[U]) String() string {
	return formatPublic(o.tag, o.raw)
}

func (o OneOf[U]) MarshalText() ([]byte, error) {
	if o.tag == "" {
		return nil, fmt.Errorf("%w: expected one of %s", ErrNoKind, expectedOf[U]())
	}
	return appendPublic(nil, o.tag, o.raw), nil
}

func (o *OneOf[U]) UnmarshalText(text []byte) error {
	parsed, err := ParseOneOf[U](string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

func (o OneOf[U]) MarshalJSON() ([]byte, error) {
	text, err := o.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

func (o *OneOf[U]) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &ParseError{Input: string(data), Expected: expectedOf[U](), Err: ErrMalformedValue}
	}
	return o.UnmarshalText([]byte(s))
}
