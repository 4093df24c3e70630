package entityid

import (
	"errors"
	"fmt"
)

var (
	// ErrPrefixMismatch is returned when the prefix of a public id is not the
	// tag of the expected kind.
	ErrPrefixMismatch = errors.New("entityid: prefix mismatch")
	// ErrMalformedValue is returned when the input is not a valid id.
	ErrMalformedValue = errors.New("entityid: malformed value")
	// ErrMissingIdentifierField is returned when an identified payload has no "id" field.
	ErrMissingIdentifierField = errors.New(`entityid: missing "id" field`)
	// ErrDuplicateIdentifierField is returned when a record already encodes an "id" field.
	ErrDuplicateIdentifierField = errors.New(`entityid: record already has an "id" field`)
	// ErrMissingColumn is returned when a storage row has no identifier column.
	ErrMissingColumn = errors.New("entityid: missing identifier column")
	// ErrInvalidTag is returned for tags that are empty or not alphanumeric.
	ErrInvalidTag = errors.New("entityid: invalid tag")
	// ErrDuplicateTag is returned when two kinds register the same tag.
	ErrDuplicateTag = errors.New("entityid: duplicate tag")
	// ErrNoKind is returned when encoding a zero OneOf, which names no member.
	ErrNoKind = errors.New("entityid: union id has no kind")
)

// ParseError describes a rejected textual id.
type ParseError struct {
	Input    string
	Expected Tag // empty when parsing a raw value
	Err      error
}

func (e *ParseError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("%v: %q", e.Err, e.Input)
	}
	return fmt.Sprintf("%v: %q is not a %s id", e.Err, e.Input, e.Expected)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// TagError describes a tag rejected by Validate or Register.
type TagError struct {
	Tag   Tag
	Other string // the type already holding the tag, for ErrDuplicateTag
	Err   error
}

func (e *TagError) Error() string {
	if e.Other != "" {
		return fmt.Sprintf("%v: %q is already used by %s", e.Err, string(e.Tag), e.Other)
	}
	return fmt.Sprintf("%v: %q", e.Err, string(e.Tag))
}

func (e *TagError) Unwrap() error {
	return e.Err
}
