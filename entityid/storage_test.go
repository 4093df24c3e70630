package entityid_test

import (
	"io"
	"testing"

	"github.com/DillonStreator/typedid/entityid"
	"github.com/go-pg/pg/v10/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// columnReader serves one column value the way go-pg hands it to scanners.
type columnReader struct {
	b   []byte
	pos int
}

var _ types.Reader = (*columnReader)(nil)

func newColumnReader(s string) (*columnReader, int) {
	return &columnReader{b: []byte(s)}, len(s)
}

func (r *columnReader) Buffered() int { return len(r.b) - r.pos }
func (r *columnReader) Bytes() []byte { return r.b[r.pos:] }

func (r *columnReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.b) {
		return 0, io.EOF
	}
	n := copy(p, r.b[r.pos:])
	r.pos += n
	return n, nil
}

func (r *columnReader) ReadByte() (byte, error) {
	if r.pos >= len(r.b) {
		return 0, io.EOF
	}
	c := r.b[r.pos]
	r.pos++
	return c, nil
}

func (r *columnReader) UnreadByte() error {
	r.pos--
	return nil
}

func (r *columnReader) ReadSlice(delim byte) ([]byte, error) {
	start := r.pos
	for r.pos < len(r.b) {
		c := r.b[r.pos]
		r.pos++
		if c == delim {
			return r.b[start:r.pos], nil
		}
	}
	return r.b[start:], io.EOF
}

func (r *columnReader) Discard(n int) (int, error) {
	if n > r.Buffered() {
		n = r.Buffered()
	}
	r.pos += n
	return n, nil
}

func (r *columnReader) ReadFull() ([]byte, error) {
	b := make([]byte, r.Buffered())
	copy(b, r.b[r.pos:])
	r.pos = len(r.b)
	return b, nil
}

func (r *columnReader) ReadFullTemp() ([]byte, error) {
	b := r.b[r.pos:]
	r.pos = len(r.b)
	return b, nil
}

func TestAppendValue(t *testing.T) {
	id := entityid.MustParse[Customer](customerPublic)

	b, err := id.AppendValue(nil, 0)
	require.NoError(t, err)
	assert.Equal(t, customerUUID, string(b))

	// 1 asks go-pg to quote the value.
	b, err = id.AppendValue([]byte("id = "), 1)
	require.NoError(t, err)
	assert.Equal(t, "id = '"+customerUUID+"'", string(b))
}

func TestScanValue(t *testing.T) {
	rd, n := newColumnReader(customerUUID)
	var id entityid.ID[Customer]
	require.NoError(t, id.ScanValue(rd, n))
	assert.Equal(t, customerPublic, id.String())

	// The column carries no kind: any uuid is accepted for any kind.
	rd, n = newColumnReader(customerUUID)
	var plan entityid.ID[Plan]
	require.NoError(t, plan.ScanValue(rd, n))
	assert.Equal(t, id.UUID(), plan.UUID())

	require.NoError(t, id.ScanValue(nil, -1))
	assert.True(t, id.IsZero())

	rd, n = newColumnReader(customerPublic)
	assert.ErrorIs(t, id.ScanValue(rd, n), entityid.ErrMalformedValue)
}

func TestStorageRoundTrip(t *testing.T) {
	for i := 0; i < 20; i++ {
		id := entityid.New[Plan]()
		b, err := id.AppendValue(nil, 0)
		require.NoError(t, err)

		rd, n := newColumnReader(string(b))
		var got entityid.ID[Plan]
		require.NoError(t, got.ScanValue(rd, n))
		assert.Equal(t, id, got)
	}
}

func TestSQLValuer(t *testing.T) {
	id := entityid.MustParse[Customer](customerPublic)

	v, err := id.Value()
	require.NoError(t, err)
	assert.Equal(t, customerUUID, v)

	raw := uuid.MustParse(customerUUID)
	for _, src := range []interface{}{customerUUID, []byte(customerUUID), raw[:]} {
		var got entityid.ID[Customer]
		require.NoError(t, got.Scan(src))
		assert.Equal(t, id, got)
	}

	var got entityid.ID[Customer]
	require.NoError(t, got.Scan(nil))
	assert.True(t, got.IsZero())
	assert.ErrorIs(t, got.Scan(customerPublic), entityid.ErrMalformedValue)
	assert.Error(t, got.Scan(42))
}
