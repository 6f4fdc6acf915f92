package models

// Table represents the rows read from the first worksheet of a workbook.
type Table struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetPart is the archive part the rows were read from.
	SheetPart string `json:"sheet_part"`
	// Rows contains non-empty rows in document order.
	Rows []Row `json:"rows"`
	// Warnings lists non-fatal problems met while reading (e.g. an unreadable shared-string part).
	Warnings []string `json:"warnings,omitempty"`
}
