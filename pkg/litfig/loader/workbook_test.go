package loader

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/mcantin/litfig-go/pkg/litfig/transform"
)

func TestLoadWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	items := "Data items"
	if _, err := f.NewSheet(items); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	// Grouping line, header, two papers.
	f.SetCellValue(items, "A1", "Group")
	for i, name := range []string{"Citation", "Year", "Domain 1", "Domain 2", "Domain 3", "Domain 4"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(items, cell, name)
	}
	for i, v := range []interface{}{"A1", 2017, "Epilepsy", "Clinical", "BCI", "Sleep"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(items, cell, v)
	}
	for i, v := range []interface{}{"A2", 2015, "Clinical", "misc", "other", "thing"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		f.SetCellValue(items, cell, v)
	}

	results := "Reporting results"
	if _, err := f.NewSheet(results); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	for i, name := range []string{"", "Citation", "Title", "Model", "Result", "Comment"} {
		if name == "" {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(results, cell, name)
	}
	for i, v := range []interface{}{0, "A1", "Some paper", "arch-cnn", 0.85, "good"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(results, cell, v)
	}
	for i, v := range []interface{}{1, "A2", "Other paper", "trad-svm", 0.7} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(results, cell, v)
	}

	tmpFile := filepath.Join(t.TempDir(), "review.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	data, err := LoadWorkbook(tmpFile, items, results, 2010, zap.NewNop())
	if err != nil {
		t.Fatalf("LoadWorkbook failed: %v", err)
	}

	if data.Items.NumRows() != 2 {
		t.Errorf("Expected 2 data items rows, got %d", data.Items.NumRows())
	}
	c, err := data.Items.Cell(0, transform.MainDomainColumn)
	if err != nil {
		t.Fatalf("Cell failed: %v", err)
	}
	if c.Text != "Epilepsy" {
		t.Errorf("Expected 'Epilepsy', got %q", c.Text)
	}
	if c, _ := data.Items.Cell(1, transform.MainDomainColumn); c.Text != "Others" {
		t.Errorf("Expected 'Others', got %q", c.Text)
	}

	if data.Results.NumRows() != 2 {
		t.Fatalf("Expected 2 results rows, got %d", data.Results.NumRows())
	}
	if c, _ := data.Results.Cell(0, ModelTypeColumn); c.Text != "Proposed" {
		t.Errorf("Expected 'Proposed', got %q", c.Text)
	}
	if c, _ := data.Results.Cell(1, ModelTypeColumn); c.Text != "Baseline (traditional)" {
		t.Errorf("Expected 'Baseline (traditional)', got %q", c.Text)
	}
}

func TestTrimToBounds(t *testing.T) {
	rows := [][]string{
		{"", "", ""},
		{"", "a", "b"},
		{"", "c", ""},
		{"", "", ""},
	}

	got := trimToBounds(rows)
	if len(got) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(got))
	}
	if got[0][0] != "a" || got[0][1] != "b" {
		t.Errorf("Unexpected first row: %v", got[0])
	}
	if got[1][0] != "c" {
		t.Errorf("Unexpected second row: %v", got[1])
	}

	if got := trimToBounds([][]string{{"", ""}}); got != nil {
		t.Errorf("Expected nil for empty sheet, got %v", got)
	}
}
