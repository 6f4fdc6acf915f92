// Package models defines data structures for voice script reconciliation.
package models

// Row represents a single worksheet row that carries at least one cell value.
type Row struct {
	// R is the row number from the worksheet (1-based), 0 when the row has no r attribute.
	R int `json:"r"`
	// C maps column letter (e.g. "A") to the cell's string value.
	C map[string]string `json:"c"`
}

// Get returns the value stored under a column letter, or "" when absent.
func (r Row) Get(col string) string {
	return r.C[col]
}
