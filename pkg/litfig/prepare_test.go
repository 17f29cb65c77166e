package litfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/mcantin/litfig-go/pkg/litfig/loader"
)

const itemsCSV = "Group,,,,,\n" +
	"Citation,Year,Domain 1,Domain 2,Domain 3,Domain 4\n" +
	"A1,2017,Epilepsy,Clinical,BCI,Sleep\n" +
	"A2,2015,Clinical,misc,other,thing\n"

const resultsCSV = ",Citation,Title,Model,Result,Comment\n" +
	"0,A1,Some paper,arch-cnn,0.85,good\n" +
	"1,A2,Other paper,trad-svm,0.7,ok\n"

func writeDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, loader.DataItemsFile), []byte(itemsCSV), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, loader.ReportedResultsFile), []byte(resultsCSV), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return dir
}

func TestPrepare(t *testing.T) {
	dir := writeDataDir(t)

	data, err := Prepare(dir, DefaultOptions(), zap.NewNop())
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}

	if data.Items.NumRows() != 2 {
		t.Errorf("Expected 2 data items rows, got %d", data.Items.NumRows())
	}
	if data.Results.NumRows() != 2 {
		t.Errorf("Expected 2 results rows, got %d", data.Results.NumRows())
	}
}

func TestPrepareStartYear(t *testing.T) {
	dir := writeDataDir(t)

	data, err := Prepare(dir, Options{StartYear: 2016}, zap.NewNop())
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	if data.Items.NumRows() != 1 {
		t.Errorf("Expected 1 data items row, got %d", data.Items.NumRows())
	}
}

func TestPrepareMissingFile(t *testing.T) {
	_, err := Prepare(t.TempDir(), DefaultOptions(), zap.NewNop())
	if err == nil {
		t.Fatal("Expected an error for an empty data directory")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Expected a LoadError, got %T", err)
	}
	if loadErr.Table != "data items" {
		t.Errorf("Expected the data items load to fail first, got %q", loadErr.Table)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected the missing-file cause to be preserved, got %v", err)
	}
}

func TestPrepareWorkbookMissingFile(t *testing.T) {
	_, err := PrepareWorkbook(filepath.Join(t.TempDir(), "nope.xlsx"), DefaultOptions(), zap.NewNop())
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("Expected ErrFileNotFound, got %v", err)
	}
}
