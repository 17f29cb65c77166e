package loader

import (
	"os"

	"github.com/mcantin/litfig-go/pkg/litfig/models"
	"github.com/mcantin/litfig-go/pkg/litfig/transform"
	"go.uber.org/zap"
)

// DataItemsFile is the default file name of the per-paper table export.
const DataItemsFile = "data_items.csv"

// dataItemsSkipLines accounts for the grouping line the data items sheet
// carries above its header row.
const dataItemsSkipLines = 1

// sparseColumnMinFrac is the minimum fraction of rows a column must have
// values in to survive cleaning.
const sparseColumnMinFrac = 0.1

// LoadDataItems loads and cleans the per-paper data items table: rows
// with no values and columns holding values for fewer than 10% of rows
// are dropped, papers published before startYear are filtered out, and
// the "Main domain" label column is derived.
func LoadDataItems(path string, startYear int, logger *zap.Logger) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := ReadTable(f, dataItemsSkipLines)
	if err != nil {
		return nil, err
	}
	return cleanDataItems(t, startYear, logger)
}

// cleanDataItems applies the data items cleaning pipeline to an already
// parsed table.
func cleanDataItems(t *models.Table, startYear int, logger *zap.Logger) (*models.Table, error) {
	raw := t.NumRows()
	t = dropEmptyRows(t)
	t = dropSparseColumns(t, sparseColumnMinFrac)

	t, err := filterByYear(t, startYear)
	if err != nil {
		return nil, err
	}

	t, err = transform.ExtractMainDomains(t)
	if err != nil {
		return nil, err
	}

	logger.Info("loaded data items",
		zap.Int("raw_rows", raw),
		zap.Int("rows", t.NumRows()),
		zap.Int("columns", len(t.Columns)),
		zap.Int("start_year", startYear))
	return t, nil
}

// dropSparseColumns returns t without columns whose non-missing cell
// count is below minFrac of the row count. A fully empty column is
// always dropped.
func dropSparseColumns(t *models.Table, minFrac float64) *models.Table {
	threshold := int(float64(t.NumRows()) * minFrac)
	if threshold < 1 {
		threshold = 1
	}

	var keep []string
	for j, name := range t.Columns {
		count := 0
		for _, row := range t.Rows {
			if !row[j].IsMissing() {
				count++
			}
		}
		if count >= threshold {
			keep = append(keep, name)
		}
	}

	// Every column known to exist, so Select cannot fail.
	out, _ := t.Select(keep...)
	return out
}

// filterByYear keeps rows whose "Year" cell is a number at or after
// startYear. Rows with a missing or non-numeric year are dropped.
func filterByYear(t *models.Table, startYear int) (*models.Table, error) {
	idx, err := t.ColumnIndex("Year")
	if err != nil {
		return nil, err
	}
	return t.Filter(func(row []models.Cell) bool {
		y, ok := row[idx].Number()
		return ok && y >= float64(startYear)
	}), nil
}
