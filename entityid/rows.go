package entityid

import (
	"fmt"

	"github.com/go-pg/pg/v10/orm"
	"github.com/go-pg/pg/v10/types"
)

// DefaultIDColumn is the column ScanRow and ScanRows read the id from.
const DefaultIDColumn = "id"

var (
	_ orm.HooklessModel = (*RowModel[nopKind])(nil)
	_ orm.HooklessModel = (*RowsModel[nopKind])(nil)
)

// rowScanner decodes the id column itself and hands every other column to
// the go-pg model of the record.
type rowScanner[K Kind] struct {
	dst    *Identified[K]
	column string
	record orm.ColumnScanner
	seen   bool
}

func newRowScanner[K Kind](dst *Identified[K], column string) (*rowScanner[K], error) {
	model, err := orm.NewModel(&dst.entity)
	if err != nil {
		return nil, err
	}
	if err := model.Init(); err != nil {
		return nil, err
	}
	return &rowScanner[K]{
		dst:    dst,
		column: column,
		record: model.NextColumnScanner(),
	}, nil
}

func (s *rowScanner[K]) ScanColumn(col types.ColumnInfo, rd types.Reader, n int) error {
	if col.Name == s.column {
		s.seen = true
		return s.dst.id.ScanValue(rd, n)
	}
	return s.record.ScanColumn(col, rd, n)
}

func (s *rowScanner[K]) reset() {
	s.seen = false
}

func (s *rowScanner[K]) done() error {
	if !s.seen {
		return fmt.Errorf("%w %q for %s", ErrMissingColumn, s.column, TagOf[K]())
	}
	return nil
}

// RowModel is a go-pg model scanning one row into an Identified.
//
//	var todo entityid.Identified[Todo]
//	_, err := db.QueryOneContext(ctx, entityid.ScanRow(&todo),
//		`SELECT id, title FROM todos WHERE id = ?`, id)
type RowModel[K Kind] struct {
	dst     *Identified[K]
	column  string
	scanner *rowScanner[K]
}

// ScanRow returns a model filling dst from a row holding an "id" column and
// the columns of K.
func ScanRow[K Kind](dst *Identified[K]) *RowModel[K] {
	return &RowModel[K]{dst: dst, column: DefaultIDColumn}
}

// IDColumn changes the name of the id column.
func (m *RowModel[K]) IDColumn(name string) *RowModel[K] {
	m.column = name
	return m
}

func (m *RowModel[K]) Init() error {
	s, err := newRowScanner(m.dst, m.column)
	if err != nil {
		return err
	}
	m.scanner = s
	return nil
}

func (m *RowModel[K]) NextColumnScanner() orm.ColumnScanner {
	m.scanner.reset()
	return m.scanner
}

func (m *RowModel[K]) AddColumnScanner(_ orm.ColumnScanner) error {
	return m.scanner.done()
}

// RowsModel is a go-pg model appending every row to a slice of Identified.
type RowsModel[K Kind] struct {
	dst     *[]Identified[K]
	column  string
	next    Identified[K]
	scanner *rowScanner[K]
}

// ScanRows returns a model replacing the content of dst with the rows of a
// query.
func ScanRows[K Kind](dst *[]Identified[K]) *RowsModel[K] {
	return &RowsModel[K]{dst: dst, column: DefaultIDColumn}
}

// IDColumn changes the name of the id column.
func (m *RowsModel[K]) IDColumn(name string) *RowsModel[K] {
	m.column = name
	return m
}

func (m *RowsModel[K]) Init() error {
	if *m.dst != nil {
		*m.dst = (*m.dst)[:0]
	}
	s, err := newRowScanner(&m.next, m.column)
	if err != nil {
		return err
	}
	m.scanner = s
	return nil
}

func (m *RowsModel[K]) NextColumnScanner() orm.ColumnScanner {
	m.next = Identified[K]{}
	m.scanner.reset()
	return m.scanner
}

func (m *RowsModel[K]) AddColumnScanner(_ orm.ColumnScanner) error {
	if err := m.scanner.done(); err != nil {
		return err
	}
	*m.dst = append(*m.dst, m.next)
	return nil
}
