// Package output serializes prepared review tables.
package output

import (
	"encoding/json"

	"github.com/mcantin/litfig-go/pkg/litfig/models"
)

// ToJSON serializes prepared review data to JSON.
func ToJSON(data *models.ReviewData, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(data, "", "  ")
	}
	return json.Marshal(data)
}

// TableToJSON serializes a single table to JSON.
func TableToJSON(t *models.Table, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(t, "", "  ")
	}
	return json.Marshal(t)
}
