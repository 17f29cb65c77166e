package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAppendRowArity(t *testing.T) {
	tbl := New("a", "b")
	if err := tbl.AppendRow(TextCell("x"), TextCell("y")); err != nil {
		t.Fatalf("AppendRow failed: %v", err)
	}
	if err := tbl.AppendRow(TextCell("x")); !errors.Is(err, ErrRowArity) {
		t.Errorf("Expected ErrRowArity, got %v", err)
	}
	if tbl.NumRows() != 1 {
		t.Errorf("Expected 1 row, got %d", tbl.NumRows())
	}
}

func TestColumnIndex(t *testing.T) {
	tbl := New("a", "b")
	idx, err := tbl.ColumnIndex("b")
	if err != nil {
		t.Fatalf("ColumnIndex failed: %v", err)
	}
	if idx != 1 {
		t.Errorf("Expected index 1, got %d", idx)
	}
	if _, err := tbl.ColumnIndex("c"); !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("Expected ErrColumnNotFound, got %v", err)
	}
}

func TestAppendColumn(t *testing.T) {
	tbl := New("a")
	tbl.AppendRow(TextCell("x"))
	tbl.AppendRow(TextCell("y"))

	if err := tbl.AppendColumn("b", []Cell{NumberCell(1), NumberCell(2)}); err != nil {
		t.Fatalf("AppendColumn failed: %v", err)
	}
	c, err := tbl.Cell(1, "b")
	if err != nil {
		t.Fatalf("Cell failed: %v", err)
	}
	if v, ok := c.Number(); !ok || v != 2 {
		t.Errorf("Expected 2, got %v", c)
	}

	if err := tbl.AppendColumn("c", []Cell{NumberCell(1)}); !errors.Is(err, ErrRowArity) {
		t.Errorf("Expected ErrRowArity, got %v", err)
	}
}

func TestSelectAndDrop(t *testing.T) {
	tbl := New("a", "b", "c")
	tbl.AppendRow(TextCell("1"), TextCell("2"), TextCell("3"))

	sel, err := tbl.Select("c", "a")
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if diff := cmp.Diff([]string{"c", "a"}, sel.Columns); diff != "" {
		t.Errorf("Select columns mismatch (-want +got):\n%s", diff)
	}
	if c, _ := sel.Cell(0, "c"); c.Text != "3" {
		t.Errorf("Expected '3', got %q", c.Text)
	}

	dropped, err := tbl.Drop("b")
	if err != nil {
		t.Fatalf("Drop failed: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "c"}, dropped.Columns); diff != "" {
		t.Errorf("Drop columns mismatch (-want +got):\n%s", diff)
	}
	if _, err := tbl.Drop("nope"); !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("Expected ErrColumnNotFound, got %v", err)
	}
}

func TestFilterCopiesRows(t *testing.T) {
	tbl := New("a")
	tbl.AppendRow(NumberCell(1))
	tbl.AppendRow(NumberCell(2))

	kept := tbl.Filter(func(row []Cell) bool {
		v, _ := row[0].Number()
		return v > 1
	})
	if kept.NumRows() != 1 {
		t.Fatalf("Expected 1 row, got %d", kept.NumRows())
	}

	// Mutating the filtered table must not leak into the source.
	kept.SetCell(0, "a", NumberCell(99))
	if c, _ := tbl.Cell(1, "a"); c.Num != 2 {
		t.Errorf("Source table modified: %v", c)
	}
}

func TestCloneIndependence(t *testing.T) {
	tbl := New("a")
	tbl.AppendRow(TextCell("x"))

	clone := tbl.Clone()
	clone.SetCell(0, "a", TextCell("changed"))
	clone.Columns[0] = "renamed"

	if c, _ := tbl.Cell(0, "a"); c.Text != "x" {
		t.Errorf("Original cell modified: %q", c.Text)
	}
	if tbl.Columns[0] != "a" {
		t.Errorf("Original columns modified: %v", tbl.Columns)
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		cell     Cell
		expected string
	}{
		{TextCell("hello"), "hello"},
		{NumberCell(2017), "2017"},
		{NumberCell(0.85), "0.85"},
		{MissingCell(), ""},
	}

	for _, tt := range tests {
		if result := tt.cell.String(); result != tt.expected {
			t.Errorf("String() = %q, expected %q", result, tt.expected)
		}
	}
}

func TestCellJSON(t *testing.T) {
	tbl := New("a", "b", "c")
	tbl.AppendRow(TextCell("x"), NumberCell(1.5), MissingCell())

	data, err := json.Marshal(tbl)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"columns":["a","b","c"],"rows":[["x",1.5,null]]}`
	if string(data) != want {
		t.Errorf("Expected %s, got %s", want, data)
	}
}
