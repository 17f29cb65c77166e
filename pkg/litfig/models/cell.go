// Package models defines the tabular data structures shared by the
// litfig loaders and transforms.
package models

import (
	"encoding/json"
	"strconv"
)

// Kind identifies the type of value held by a Cell.
type Kind int

const (
	// KindMissing marks an absent value.
	KindMissing Kind = iota
	// KindText marks a textual value.
	KindText
	// KindNumber marks a numeric value.
	KindNumber
)

// Cell is a single table value: text, a number, or missing.
// The zero value is a missing cell.
type Cell struct {
	// Kind tags which of the value fields is meaningful.
	Kind Kind
	// Text is the value of a text cell.
	Text string
	// Num is the value of a number cell.
	Num float64
}

// TextCell returns a text cell holding s.
func TextCell(s string) Cell {
	return Cell{Kind: KindText, Text: s}
}

// NumberCell returns a number cell holding f.
func NumberCell(f float64) Cell {
	return Cell{Kind: KindNumber, Num: f}
}

// MissingCell returns a missing cell.
func MissingCell() Cell {
	return Cell{}
}

// IsMissing reports whether the cell holds no value.
func (c Cell) IsMissing() bool {
	return c.Kind == KindMissing
}

// Number returns the numeric value and whether the cell is a number.
func (c Cell) Number() (float64, bool) {
	return c.Num, c.Kind == KindNumber
}

// String returns the display form of the cell: the text itself, a number
// in its shortest decimal form, or the empty string for a missing cell.
func (c Cell) String() string {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		return strconv.FormatFloat(c.Num, 'g', -1, 64)
	default:
		return ""
	}
}

// MarshalJSON encodes the cell as its bare value: a string, a number, or
// null for a missing cell.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case KindText:
		return json.Marshal(c.Text)
	case KindNumber:
		return json.Marshal(c.Num)
	default:
		return []byte("null"), nil
	}
}
