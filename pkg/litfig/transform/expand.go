package transform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mcantin/litfig-go/pkg/litfig/models"
)

// DefaultSeparator splits multi-valued cells: in the review spreadsheet,
// each value ends with a semicolon followed by a line break.
const DefaultSeparator = ";\n"

// DefaultIndexColumn names the output column holding the source row
// position in expanded tables.
const DefaultIndexColumn = "paper nb"

// ErrCellNotText indicates a cell that cannot be read as text.
var ErrCellNotText = errors.New("cell is not text")

// CellTypeError reports a cell whose kind prevents a transform.
type CellTypeError struct {
	Row    int
	Column string
	Err    error
}

func (e *CellTypeError) Error() string {
	return fmt.Sprintf("row %d, column %q: %v", e.Row, e.Column, e.Err)
}

func (e *CellTypeError) Unwrap() error {
	return e.Err
}

// ExpandOptions configures Expand.
type ExpandOptions struct {
	// Separator between the values of a multi-valued cell.
	// Empty means DefaultSeparator.
	Separator string
	// Lowercase controls whether split values are lowercased.
	// If nil, defaults to true.
	Lowercase *bool
	// IndexColumn names the output column holding the source row
	// position. Empty means DefaultIndexColumn.
	IndexColumn string
}

// ShouldLowercase returns whether split values are lowercased.
func (o ExpandOptions) ShouldLowercase() bool {
	if o.Lowercase != nil {
		return *o.Lowercase
	}
	return true
}

func (o ExpandOptions) separator() string {
	if o.Separator != "" {
		return o.Separator
	}
	return DefaultSeparator
}

func (o ExpandOptions) indexColumn() string {
	if o.IndexColumn != "" {
		return o.IndexColumn
	}
	return DefaultIndexColumn
}

// Expand splits a multi-valued column into one row per value.
//
// Some cells of the review tables hold several values for a single data
// item, e.g. a number-of-subjects cell of "15, 203, 23". Expand returns a
// new table with one row per value, each tagged with the source row
// position and verbatim copies of the refColumns cells, so every value
// stays traceable to the paper it came from.
//
// Output columns are [index column, refColumns..., column]. Rows keep the
// source row order and values keep their order within each cell; nothing
// is sorted, deduplicated, or dropped. Each value has its leading
// whitespace removed and is lowercased unless opts disables it. Empty
// values produced by leading or trailing separators are kept as empty
// text, and an empty or missing target cell yields a single empty-text
// row. A numeric target cell is a CellTypeError. The input table is never
// modified.
func Expand(t *models.Table, column string, refColumns []string, opts ExpandOptions) (*models.Table, error) {
	colIdx, err := t.ColumnIndex(column)
	if err != nil {
		return nil, err
	}
	refIdx := make([]int, len(refColumns))
	for i, name := range refColumns {
		j, err := t.ColumnIndex(name)
		if err != nil {
			return nil, err
		}
		refIdx[i] = j
	}

	sep := opts.separator()
	lower := opts.ShouldLowercase()

	outCols := make([]string, 0, len(refColumns)+2)
	outCols = append(outCols, opts.indexColumn())
	outCols = append(outCols, refColumns...)
	outCols = append(outCols, column)

	out := models.New(outCols...)
	for i, row := range t.Rows {
		text, err := cellText(row[colIdx])
		if err != nil {
			return nil, &CellTypeError{Row: i, Column: column, Err: err}
		}
		for _, value := range TrimLower(strings.Split(text, sep), lower) {
			cells := make([]models.Cell, 0, len(refIdx)+2)
			cells = append(cells, models.NumberCell(float64(i)))
			for _, j := range refIdx {
				cells = append(cells, row[j])
			}
			cells = append(cells, models.TextCell(value))
			if err := out.AppendRow(cells...); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// cellText reads a cell as text for splitting. Missing cells read as
// empty text; numeric cells are rejected.
func cellText(c models.Cell) (string, error) {
	switch c.Kind {
	case models.KindText:
		return c.Text, nil
	case models.KindMissing:
		return "", nil
	default:
		return "", ErrCellNotText
	}
}
