package output

import (
	"encoding/csv"
	"io"

	"github.com/mcantin/litfig-go/pkg/litfig/models"
)

// WriteCSV writes a table as CSV with a header row. Missing cells become
// empty fields; numbers are written in their shortest decimal form.
func WriteCSV(w io.Writer, t *models.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, c := range row {
			record[i] = c.String()
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
