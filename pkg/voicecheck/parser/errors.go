package parser

import (
	"errors"
	"fmt"
)

// ErrPartNotFound indicates the archive has no entry with the requested name.
var ErrPartNotFound = errors.New("archive part not found")

// ErrNoWorksheet indicates no worksheet part could be located in the workbook.
var ErrNoWorksheet = errors.New("no worksheet in workbook")

// PartError represents a failure to read or decode one archive part.
type PartError struct {
	Part string // e.g. "xl/worksheets/sheet1.xml"
	Err  error
}

func (e *PartError) Error() string {
	return fmt.Sprintf("read part %q: %v", e.Part, e.Err)
}

func (e *PartError) Unwrap() error {
	return e.Err
}

func newPartError(part string, err error) *PartError {
	return &PartError{Part: part, Err: err}
}
