package litfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mcantin/litfig-go/pkg/litfig/loader"
	"github.com/mcantin/litfig-go/pkg/litfig/models"
	"go.uber.org/zap"
)

// Prepare loads and cleans both review tables from a directory holding
// the CSV exports of the review spreadsheet.
func Prepare(dataDir string, opts Options, logger *zap.Logger) (*models.ReviewData, error) {
	itemsPath := filepath.Join(dataDir, opts.itemsFile())
	items, err := loader.LoadDataItems(itemsPath, opts.startYear(), logger)
	if err != nil {
		return nil, NewLoadError("data items", itemsPath, err)
	}

	resultsPath := filepath.Join(dataDir, opts.resultsFile())
	results, err := loader.LoadReportedResults(resultsPath, logger)
	if err != nil {
		return nil, NewLoadError("reported results", resultsPath, err)
	}

	return &models.ReviewData{
		Items:   items,
		Results: results,
	}, nil
}

// PrepareWorkbook loads and cleans both review tables from a single
// xlsx workbook instead of CSV exports.
func PrepareWorkbook(path string, opts Options, logger *zap.Logger) (*models.ReviewData, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := loader.LoadWorkbook(path, opts.itemsSheet(), opts.resultsSheet(), opts.startYear(), logger)
	if err != nil {
		return nil, NewLoadError("workbook", path, err)
	}
	return data, nil
}
