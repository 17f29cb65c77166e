// Package litfig prepares the literature-review dataset for figure
// generation.
package litfig

import "github.com/mcantin/litfig-go/pkg/litfig/loader"

// DefaultStartYear is the earliest publication year kept in the data
// items table.
const DefaultStartYear = 2010

// Options configures dataset preparation.
type Options struct {
	// StartYear drops papers published before it.
	// Zero means DefaultStartYear.
	StartYear int
	// ItemsFile overrides the data items file name inside the data
	// directory.
	ItemsFile string
	// ResultsFile overrides the reported-results file name inside the
	// data directory.
	ResultsFile string
	// ItemsSheet names the data items sheet when reading a workbook.
	ItemsSheet string
	// ResultsSheet names the reported-results sheet when reading a
	// workbook.
	ResultsSheet string
}

// DefaultOptions returns default preparation options.
func DefaultOptions() Options {
	return Options{
		StartYear: DefaultStartYear,
	}
}

func (o Options) startYear() int {
	if o.StartYear != 0 {
		return o.StartYear
	}
	return DefaultStartYear
}

func (o Options) itemsFile() string {
	if o.ItemsFile != "" {
		return o.ItemsFile
	}
	return loader.DataItemsFile
}

func (o Options) resultsFile() string {
	if o.ResultsFile != "" {
		return o.ResultsFile
	}
	return loader.ReportedResultsFile
}

func (o Options) itemsSheet() string {
	if o.ItemsSheet != "" {
		return o.ItemsSheet
	}
	return loader.DefaultItemsSheet
}

func (o Options) resultsSheet() string {
	if o.ResultsSheet != "" {
		return o.ResultsSheet
	}
	return loader.DefaultResultsSheet
}
