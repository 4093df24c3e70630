package entityid

import (
	"strings"

	"github.com/google/uuid"
)

// Separator joins the tag and the UUID in the public form of an id.
const Separator = '_'

// length of a canonical hyphenated UUID
const rawLen = 36

func appendPublic(b []byte, tag Tag, raw uuid.UUID) []byte {
	b = append(b, tag...)
	b = append(b, Separator)
	return append(b, raw.String()...)
}

func formatPublic(tag Tag, raw uuid.UUID) string {
	return string(appendPublic(make([]byte, 0, len(tag)+1+rawLen), tag, raw))
}

// parsePublic checks the prefix of s against tag and decodes the UUID after
// the separator.
func parsePublic(tag Tag, s string) (uuid.UUID, error) {
	prefix, value, ok := strings.Cut(s, string(Separator))
	if !ok {
		return uuid.Nil, &ParseError{Input: s, Expected: tag, Err: ErrMalformedValue}
	}
	if !tag.Matches(prefix) {
		return uuid.Nil, &ParseError{Input: s, Expected: tag, Err: ErrPrefixMismatch}
	}
	raw, ok := decodeRaw(value)
	if !ok {
		return uuid.Nil, &ParseError{Input: s, Expected: tag, Err: ErrMalformedValue}
	}
	return raw, nil
}

func parseRaw(s string) (uuid.UUID, error) {
	raw, ok := decodeRaw(s)
	if !ok {
		return uuid.Nil, &ParseError{Input: s, Err: ErrMalformedValue}
	}
	return raw, nil
}

// decodeRaw only accepts the hyphenated form; uuid.Parse alone would also
// take urn, braced and unhyphenated inputs.
func decodeRaw(s string) (uuid.UUID, bool) {
	if len(s) != rawLen {
		return uuid.Nil, false
	}
	raw, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return raw, true
}
