package loader

import (
	"fmt"

	"github.com/mcantin/litfig-go/pkg/litfig/models"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Default sheet names in the review workbook.
const (
	DefaultItemsSheet   = "Data items"
	DefaultResultsSheet = "Reporting results"
)

// LoadWorkbook loads both review tables from a single xlsx workbook
// instead of separate CSV exports, applying the same cleaning pipelines.
func LoadWorkbook(path, itemsSheet, resultsSheet string, startYear int, logger *zap.Logger) (*models.ReviewData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	itemsRaw, err := sheetTable(f, itemsSheet, dataItemsSkipLines)
	if err != nil {
		return nil, err
	}
	items, err := cleanDataItems(itemsRaw, startYear, logger)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", itemsSheet, err)
	}

	resultsRaw, err := sheetTable(f, resultsSheet, 0)
	if err != nil {
		return nil, err
	}
	results, err := cleanReportedResults(resultsRaw, logger)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", resultsSheet, err)
	}

	return &models.ReviewData{Items: items, Results: results}, nil
}

// sheetTable converts one sheet into a table. Rows are trimmed to the
// bounding box of non-empty cells first, since workbook sheets often
// carry stray blank margins that a CSV export would not.
func sheetTable(f *excelize.File, sheet string, skipLines int) (*models.Table, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	rows = trimToBounds(rows)
	t, err := tableFromRecords(rows, skipLines)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	return t, nil
}

// trimToBounds slices rows down to the bounding box of non-empty cells.
// Returns nil when the sheet has no data.
func trimToBounds(rows [][]string) [][]string {
	minRow, maxRow, minCol, maxCol := dataBounds(rows)
	if minRow < 0 {
		return nil
	}

	out := make([][]string, 0, maxRow-minRow+1)
	for _, row := range rows[minRow : maxRow+1] {
		lo, hi := minCol, maxCol+1
		if lo > len(row) {
			lo = len(row)
		}
		if hi > len(row) {
			hi = len(row)
		}
		out = append(out, row[lo:hi])
	}
	return out
}

// dataBounds finds the bounding box of non-empty cells.
func dataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
