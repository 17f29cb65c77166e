package models

import (
	"errors"
	"fmt"

	"github.com/tiendc/go-deepcopy"
)

// ErrColumnNotFound indicates a referenced column is absent from a table.
var ErrColumnNotFound = errors.New("column not found")

// ErrRowArity indicates a row or column with the wrong number of cells.
var ErrRowArity = errors.New("cell count mismatch")

// Table is an ordered collection of rows over named columns. A row's
// position in Rows is its identity; transforms that tag provenance carry
// this position into their output.
type Table struct {
	// Columns holds the column names, in order.
	Columns []string `json:"columns"`
	// Rows holds one cell slice per row, aligned with Columns.
	Rows [][]Cell `json:"rows"`
}

// New returns an empty table with the given columns.
func New(columns ...string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols}
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// ColumnIndex returns the position of the named column, or
// ErrColumnNotFound if the table has no such column.
func (t *Table) ColumnIndex(name string) (int, error) {
	for i, c := range t.Columns {
		if c == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}

// AppendRow adds a row to the table. The number of cells must match the
// number of columns.
func (t *Table) AppendRow(cells ...Cell) error {
	if len(cells) != len(t.Columns) {
		return fmt.Errorf("%w: got %d cells for %d columns", ErrRowArity, len(cells), len(t.Columns))
	}
	row := make([]Cell, len(cells))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
	return nil
}

// AppendColumn adds a column with one cell per existing row.
func (t *Table) AppendColumn(name string, cells []Cell) error {
	if len(cells) != len(t.Rows) {
		return fmt.Errorf("%w: got %d cells for %d rows", ErrRowArity, len(cells), len(t.Rows))
	}
	t.Columns = append(t.Columns, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], cells[i])
	}
	return nil
}

// Cell returns the cell at the given row position and column name.
func (t *Table) Cell(row int, column string) (Cell, error) {
	idx, err := t.ColumnIndex(column)
	if err != nil {
		return Cell{}, err
	}
	if row < 0 || row >= len(t.Rows) {
		return Cell{}, fmt.Errorf("row %d out of range (%d rows)", row, len(t.Rows))
	}
	return t.Rows[row][idx], nil
}

// SetCell replaces the cell at the given row position and column name.
func (t *Table) SetCell(row int, column string, c Cell) error {
	idx, err := t.ColumnIndex(column)
	if err != nil {
		return err
	}
	if row < 0 || row >= len(t.Rows) {
		return fmt.Errorf("row %d out of range (%d rows)", row, len(t.Rows))
	}
	t.Rows[row][idx] = c
	return nil
}

// Select returns a new table holding copies of the named columns, in the
// given order.
func (t *Table) Select(names ...string) (*Table, error) {
	idx := make([]int, len(names))
	for i, name := range names {
		j, err := t.ColumnIndex(name)
		if err != nil {
			return nil, err
		}
		idx[i] = j
	}
	out := New(names...)
	for _, row := range t.Rows {
		cells := make([]Cell, len(idx))
		for i, j := range idx {
			cells[i] = row[j]
		}
		out.Rows = append(out.Rows, cells)
	}
	return out, nil
}

// Drop returns a new table without the named columns. Every name must
// exist in the table.
func (t *Table) Drop(names ...string) (*Table, error) {
	drop := make(map[string]bool, len(names))
	for _, name := range names {
		if !t.HasColumn(name) {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
		}
		drop[name] = true
	}
	var keep []string
	for _, c := range t.Columns {
		if !drop[c] {
			keep = append(keep, c)
		}
	}
	return t.Select(keep...)
}

// Filter returns a new table holding copies of the rows for which keep
// returns true, in their original order.
func (t *Table) Filter(keep func(row []Cell) bool) *Table {
	out := New(t.Columns...)
	for _, row := range t.Rows {
		if keep(row) {
			cells := make([]Cell, len(row))
			copy(cells, row)
			out.Rows = append(out.Rows, cells)
		}
	}
	return out
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	var out Table
	if err := deepcopy.Copy(&out, t); err != nil {
		// Copying between identical concrete types cannot fail.
		panic(err)
	}
	return &out
}
