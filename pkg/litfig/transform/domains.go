package transform

import (
	"slices"

	"github.com/mcantin/litfig-go/pkg/litfig/models"
)

// MainDomains lists the research domains used for the "Main domain"
// label. The list was picked by inspecting the dataset; anything else
// maps to OtherDomain.
var MainDomains = []string{
	"Epilepsy",
	"Sleep",
	"BCI",
	"Affective",
	"Cognitive",
	"Improvement of processing tools",
	"Generation of data",
}

const (
	// MainDomainColumn is the name of the derived label column.
	MainDomainColumn = "Main domain"
	// OtherDomain labels rows matching none of the main domains.
	OtherDomain = "Others"
)

// domainColumns are scanned in order for a main-domain match.
var domainColumns = []string{"Domain 1", "Domain 2", "Domain 3", "Domain 4"}

// ExtractMainDomains returns a copy of t with a "Main domain" column
// appended. For each row, the first of the four domain columns whose
// value appears in MainDomains wins; rows with no match get OtherDomain.
// The input table is not modified.
func ExtractMainDomains(t *models.Table) (*models.Table, error) {
	idx := make([]int, len(domainColumns))
	for i, name := range domainColumns {
		j, err := t.ColumnIndex(name)
		if err != nil {
			return nil, err
		}
		idx[i] = j
	}

	labels := make([]models.Cell, len(t.Rows))
	for r, row := range t.Rows {
		label := OtherDomain
		for _, j := range idx {
			if row[j].Kind == models.KindText && slices.Contains(MainDomains, row[j].Text) {
				label = row[j].Text
				break
			}
		}
		labels[r] = models.TextCell(label)
	}

	out := t.Clone()
	if err := out.AppendColumn(MainDomainColumn, labels); err != nil {
		return nil, err
	}
	return out, nil
}
