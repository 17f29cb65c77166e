package transform

import (
	"github.com/mcantin/litfig-go/pkg/litfig/models"
)

// ReplaceMissing returns a copy of t with missing cells in the named
// column replaced by the given text. Figure code typically passes a
// single space so empty cells render as blank labels rather than
// disappearing. The input table is not modified.
func ReplaceMissing(t *models.Table, column, replaceBy string) (*models.Table, error) {
	j, err := t.ColumnIndex(column)
	if err != nil {
		return nil, err
	}
	out := t.Clone()
	for _, row := range out.Rows {
		if row[j].IsMissing() {
			row[j] = models.TextCell(replaceBy)
		}
	}
	return out, nil
}
