package entityid

import (
	"bytes"
	"encoding/json"
	"fmt"
)

func (id ID[K]) MarshalText() ([]byte, error) {
	return appendPublic(nil, TagOf[K](), id.raw), nil
}

func (id *ID[K]) UnmarshalText(text []byte) error {
	parsed, err := Parse[K](string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalJSON encodes the public form of the id as a JSON string.
func (id ID[K]) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON decodes a public id. Unlike most decoders, null is rejected:
// use a *ID for optional ids.
func (id *ID[K]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return &ParseError{Input: "null", Expected: TagOf[K](), Err: ErrMalformedValue}
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &ParseError{Input: string(data), Expected: TagOf[K](), Err: ErrMalformedValue}
	}
	return id.UnmarshalText([]byte(s))
}

// MarshalJSON encodes the record as a JSON object with an additional "id"
// field holding the public id, placed first:
//
//	{"id":"Cust_ec2ba151-7acf-43a9-bb98-6f5331992f42","name":"Alfred"}
//
// The record must encode to an object without an "id" key of its own.
func (i Identified[K]) MarshalJSON() ([]byte, error) {
	record, err := json.Marshal(i.entity)
	if err != nil {
		return nil, err
	}
	if len(record) < 2 || record[0] != '{' {
		return nil, fmt.Errorf("entityid: %T does not encode to a JSON object", i.entity)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(record, &fields); err != nil {
		return nil, err
	}
	if _, ok := fields["id"]; ok {
		return nil, fmt.Errorf("%w: %T", ErrDuplicateIdentifierField, i.entity)
	}
	id, err := i.id.MarshalJSON()
	if err != nil {
		return nil, err
	}

	b := make([]byte, 0, len(record)+len(id)+7)
	b = append(b, `{"id":`...)
	b = append(b, id...)
	if len(fields) == 0 {
		return append(b, '}'), nil
	}
	b = append(b, ',')
	return append(b, record[1:]...), nil
}

// UnmarshalJSON requires a valid "id" field. The other fields are decoded
// into the record as json.Unmarshal would decode them into a bare K.
func (i *Identified[K]) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	rawID, ok := fields["id"]
	if !ok {
		return fmt.Errorf("%w in %s payload", ErrMissingIdentifierField, TagOf[K]())
	}
	var id ID[K]
	if err := id.UnmarshalJSON(rawID); err != nil {
		return err
	}

	delete(fields, "id")
	rest, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	var entity K
	if err := json.Unmarshal(rest, &entity); err != nil {
		return err
	}
	i.id, i.entity = id, entity
	return nil
}

// Bare is an ID whose text and JSON forms are the bare UUID, for payloads
// where the kind is already known from context.
type Bare[K Kind] ID[K]

func (b Bare[K]) ID() ID[K] {
	return ID[K](b)
}

func (b Bare[K]) String() string {
	return b.raw.String()
}

func (b Bare[K]) MarshalText() ([]byte, error) {
	return []byte(b.raw.String()), nil
}

func (b *Bare[K]) UnmarshalText(text []byte) error {
	raw, err := parseRaw(string(text))
	if err != nil {
		return err
	}
	b.raw = raw
	return nil
}

func (b Bare[K]) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.raw.String())
}

func (b *Bare[K]) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &ParseError{Input: string(data), Err: ErrMalformedValue}
	}
	return b.UnmarshalText([]byte(s))
}
