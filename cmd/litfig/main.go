// Package main provides the CLI entry point for litfig-go.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mcantin/litfig-go/pkg/litfig"
	"github.com/mcantin/litfig-go/pkg/litfig/config"
	"github.com/mcantin/litfig-go/pkg/litfig/models"
	"github.com/mcantin/litfig-go/pkg/litfig/output"
	"github.com/mcantin/litfig-go/pkg/litfig/transform"
)

var (
	outputPath string
	pretty     bool
	format     string
	workbook   string
	startYear  int
	expandCol  string
	refCols    []string
	separator  string
	noLower    bool
	tablesDir  string
	logLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "litfig [data-dir]",
		Short: "Prepare literature-review tables for figure generation",
		Long: `litfig-go loads the literature-review spreadsheet exports, cleans them
up, and outputs tables ready for figure generation.`,
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&format, "format", "json", "Output format for single tables: json, csv")
	rootCmd.Flags().StringVar(&workbook, "workbook", "", "Read one .xlsx workbook instead of CSV exports")
	rootCmd.Flags().IntVar(&startYear, "start-year", 0, "Drop papers published before this year")
	rootCmd.Flags().StringVar(&expandCol, "expand", "", "Expand this multi-valued column of the data items table")
	rootCmd.Flags().StringSliceVar(&refCols, "ref-col", []string{"Citation"}, "Identifier column(s) carried into expanded rows")
	rootCmd.Flags().StringVar(&separator, "sep", "", "Separator between values of a multi-valued cell")
	rootCmd.Flags().BoolVar(&noLower, "no-lower", false, "Keep the case of expanded values")
	rootCmd.Flags().StringVar(&tablesDir, "tables-dir", "", "Directory for per-table output files")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := config.InitLogger(logLevel)
	if err != nil {
		return err
	}
	defer config.Cleanup()

	cfg := config.Load(logger)
	dataDir := cfg.DataDir
	if len(args) > 0 {
		dataDir = args[0]
	}

	opts := litfig.Options{
		StartYear:    cfg.StartYear,
		ItemsFile:    cfg.ItemsFile,
		ResultsFile:  cfg.ResultsFile,
		ItemsSheet:   cfg.ItemsSheet,
		ResultsSheet: cfg.ResultsSheet,
	}
	if startYear > 0 {
		opts.StartYear = startYear
	}

	var data *models.ReviewData
	if workbook != "" {
		data, err = litfig.PrepareWorkbook(workbook, opts, logger)
	} else {
		data, err = litfig.Prepare(dataDir, opts, logger)
	}
	if err != nil {
		return fmt.Errorf("preparation failed: %w", err)
	}

	if expandCol != "" {
		expandOpts := transform.ExpandOptions{Separator: separator}
		if noLower {
			lower := false
			expandOpts.Lowercase = &lower
		}
		expanded, err := transform.Expand(data.Items, expandCol, refCols, expandOpts)
		if err != nil {
			return fmt.Errorf("expansion failed: %w", err)
		}
		return writeTable(expanded, outputPath)
	}

	if tablesDir != "" {
		if err := writeTableFiles(data, tablesDir); err != nil {
			return fmt.Errorf("failed to write table files: %w", err)
		}
		return nil
	}

	jsonData, err := output.ToJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if outputPath != "" {
		return os.WriteFile(outputPath, jsonData, 0644)
	}
	fmt.Println(string(jsonData))
	return nil
}

// writeTable writes a single table to path or stdout in the selected
// format.
func writeTable(t *models.Table, path string) error {
	switch format {
	case "csv":
		if path != "" {
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			defer f.Close()
			return output.WriteCSV(f, t)
		}
		return output.WriteCSV(os.Stdout, t)
	case "json":
		jsonData, err := output.TableToJSON(t, pretty)
		if err != nil {
			return err
		}
		if path != "" {
			return os.WriteFile(path, jsonData, 0644)
		}
		fmt.Println(string(jsonData))
		return nil
	default:
		return fmt.Errorf("invalid format: %s (must be json or csv)", format)
	}
}

// writeTableFiles writes one file per prepared table into dir.
func writeTableFiles(data *models.ReviewData, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	ext := "json"
	if format == "csv" {
		ext = "csv"
	}
	tables := map[string]*models.Table{
		"data_items":        data.Items,
		"reporting_results": data.Results,
	}
	for name, t := range tables {
		path := filepath.Join(dir, name+"."+ext)
		if err := writeTable(t, path); err != nil {
			return err
		}
	}
	return nil
}
