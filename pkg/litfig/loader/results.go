package loader

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mcantin/litfig-go/pkg/litfig/models"
	"go.uber.org/zap"
)

// ReportedResultsFile is the default file name of the reported-results
// table export.
const ReportedResultsFile = "reporting_results.csv"

// ModelTypeColumn is the name of the derived model category column.
const ModelTypeColumn = "model_type"

// ErrUnknownModelType indicates a model identifier that maps to no
// reported category.
var ErrUnknownModelType = errors.New("model type not supported")

// resultsDropColumns are bookkeeping columns of the results sheet that
// figure generation never uses.
var resultsDropColumns = []string{"Unnamed: 0", "Title", "Comment"}

// LoadReportedResults loads and cleans the reported-results table:
// bookkeeping columns are dropped, the "Result" column is coerced to
// numbers, rows with any missing value are removed, and the model_type
// category is derived from the "Model" column.
func LoadReportedResults(path string, logger *zap.Logger) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := ReadTable(f, 0)
	if err != nil {
		return nil, err
	}
	return cleanReportedResults(t, logger)
}

// cleanReportedResults applies the results cleaning pipeline to an
// already parsed table.
func cleanReportedResults(t *models.Table, logger *zap.Logger) (*models.Table, error) {
	raw := t.NumRows()

	t, err := t.Drop(resultsDropColumns...)
	if err != nil {
		return nil, err
	}

	if err := coerceNumeric(t, "Result"); err != nil {
		return nil, err
	}
	t = t.Filter(func(row []models.Cell) bool {
		for _, c := range row {
			if c.IsMissing() {
				return false
			}
		}
		return true
	})

	modelIdx, err := t.ColumnIndex("Model")
	if err != nil {
		return nil, err
	}
	categories := make([]models.Cell, len(t.Rows))
	for i, row := range t.Rows {
		category, err := modelType(row[modelIdx].String())
		if err != nil {
			return nil, err
		}
		categories[i] = models.TextCell(category)
	}
	if err := t.AppendColumn(ModelTypeColumn, categories); err != nil {
		return nil, err
	}

	logger.Info("loaded reported results",
		zap.Int("raw_rows", raw),
		zap.Int("rows", t.NumRows()))
	return t, nil
}

// coerceNumeric rewrites a column in place so every cell is either a
// number or missing. Text that parses as a number is converted; text
// that does not becomes missing.
func coerceNumeric(t *models.Table, column string) error {
	idx, err := t.ColumnIndex(column)
	if err != nil {
		return err
	}
	for _, row := range t.Rows {
		if row[idx].Kind != models.KindText {
			continue
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(row[idx].Text), 64); err == nil {
			row[idx] = models.NumberCell(f)
		} else {
			row[idx] = models.MissingCell()
		}
	}
	return nil
}

// modelType maps a model identifier to its reported category. The sheet
// encodes the category in the identifier itself ("arch" for the paper's
// proposed architecture, "trad" and "dl" for the baselines).
func modelType(s string) (string, error) {
	switch {
	case strings.Contains(s, "arch"):
		return "Proposed", nil
	case strings.Contains(s, "trad"):
		return "Baseline (traditional)", nil
	case strings.Contains(s, "dl"):
		return "Baseline (deep learning)", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownModelType, s)
}
