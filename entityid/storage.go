package entityid

import (
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/go-pg/pg/v10/types"
	"github.com/google/uuid"
)

var (
	_ types.ValueAppender = ID[nopKind]{}
	_ types.ValueScanner  = (*ID[nopKind])(nil)
	_ driver.Valuer       = ID[nopKind]{}
	_ sql.Scanner         = (*ID[nopKind])(nil)
)

type nopKind struct{}

func (nopKind) EntityTag() Tag { return "Nop" }

// AppendValue writes the bare UUID to a go-pg query. The tag is never stored:
// the kind of a column is given by the schema.
func (id ID[K]) AppendValue(b []byte, flags int) ([]byte, error) {
	return types.AppendString(b, id.raw.String(), flags), nil
}

// ScanValue reads a uuid column. The kind is not checked. NULL leaves the
// zero id.
func (id *ID[K]) ScanValue(rd types.Reader, n int) error {
	if n == -1 {
		*id = ID[K]{}
		return nil
	}
	s, err := types.ScanString(rd, n)
	if err != nil {
		return err
	}
	raw, err := parseRaw(s)
	if err != nil {
		return err
	}
	id.raw = raw
	return nil
}

// Value implements driver.Valuer with the bare UUID.
func (id ID[K]) Value() (driver.Value, error) {
	return id.raw.String(), nil
}

// Scan implements sql.Scanner. It accepts the text form of a uuid column and
// the 16 byte binary form some drivers return.
func (id *ID[K]) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		*id = ID[K]{}
		return nil
	case string:
		raw, err := parseRaw(src)
		if err != nil {
			return err
		}
		id.raw = raw
		return nil
	case []byte:
		if len(src) == 16 {
			raw, err := uuid.FromBytes(src)
			if err != nil {
				return &ParseError{Input: string(src), Err: ErrMalformedValue}
			}
			id.raw = raw
			return nil
		}
		return id.Scan(string(src))
	default:
		return fmt.Errorf("entityid: cannot scan %T into %s id", src, TagOf[K]())
	}
}
