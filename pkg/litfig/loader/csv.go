// Package loader reads the literature-review spreadsheet exports and
// cleans them into tables ready for figure generation.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mcantin/litfig-go/pkg/litfig/models"
	"github.com/mcantin/litfig-go/pkg/litfig/transform"
)

// ErrNoHeader indicates the input has no header row to read columns from.
var ErrNoHeader = errors.New("no header row")

// ReadTable parses CSV data into a table. skipLines grouping lines above
// the header row are discarded. Empty header cells are named
// "Unnamed: <position>" so they stay addressable, matching the naming
// the review's earlier tooling used for them.
func ReadTable(r io.Reader, skipLines int) (*models.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return tableFromRecords(records, skipLines)
}

// tableFromRecords builds a table from raw string records, the header
// sitting after skipLines grouping lines.
func tableFromRecords(records [][]string, skipLines int) (*models.Table, error) {
	if len(records) <= skipLines {
		return nil, ErrNoHeader
	}

	header := records[skipLines]
	columns := make([]string, len(header))
	for i, name := range header {
		name = transform.NormalizeText(name)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		columns[i] = name
	}

	t := models.New(columns...)
	for _, record := range records[skipLines+1:] {
		cells := make([]models.Cell, len(columns))
		for i := range columns {
			if i < len(record) {
				cells[i] = parseCell(record[i])
			} else {
				cells[i] = models.MissingCell()
			}
		}
		if err := t.AppendRow(cells...); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// parseCell types a raw field: parseable numbers become number cells,
// empty fields are missing, anything else is kept as text verbatim.
func parseCell(s string) models.Cell {
	if s == "" {
		return models.MissingCell()
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return models.NumberCell(f)
	}
	return models.TextCell(s)
}

// dropEmptyRows returns t without rows whose cells are all missing.
func dropEmptyRows(t *models.Table) *models.Table {
	return t.Filter(func(row []models.Cell) bool {
		for _, c := range row {
			if !c.IsMissing() {
				return true
			}
		}
		return false
	})
}
