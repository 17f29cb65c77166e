package models

// ReviewData bundles the two cleaned literature-review tables.
type ReviewData struct {
	// Items is the per-paper data items table.
	Items *Table `json:"items"`
	// Results is the reported-results table.
	Results *Table `json:"results"`
}
