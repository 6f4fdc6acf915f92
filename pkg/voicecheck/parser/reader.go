// Package parser reads worksheet tables straight from xlsx archives.
package parser

import (
	"archive/zip"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ukaji3/voicecheck-go/pkg/voicecheck/models"
)

// ReadTable reads the first worksheet of an xlsx file into row records keyed by
// column letter.
//
// A missing or malformed shared-string part is not fatal: it is reported in
// Table.Warnings and every string-table reference resolves to "". Failure to
// open the archive or decode the worksheet fails the whole read.
func ReadTable(xlsxPath string) (*models.Table, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", xlsxPath, err)
	}
	defer r.Close()

	table, err := readTable(&r.Reader)
	if err != nil {
		return nil, err
	}
	table.BookName = filepath.Base(xlsxPath)
	return table, nil
}

func readTable(r *zip.Reader) (*models.Table, error) {
	parts := locateParts(r)
	table := &models.Table{SheetPart: parts.Worksheet}

	pool, err := readSharedStrings(r, parts.SharedStrings)
	if err != nil {
		table.Warnings = append(table.Warnings, err.Error())
		pool = nil
	}

	sheetXML, err := readZipFile(r, parts.Worksheet)
	if err != nil {
		if errors.Is(err, ErrPartNotFound) {
			err = ErrNoWorksheet
		}
		return nil, newPartError(parts.Worksheet, err)
	}

	rows, err := parseWorksheet(sheetXML, pool)
	if err != nil {
		return nil, newPartError(parts.Worksheet, err)
	}
	table.Rows = rows

	return table, nil
}

func readSharedStrings(r *zip.Reader, part string) (SharedStrings, error) {
	data, err := readZipFile(r, part)
	if err != nil {
		return nil, newPartError(part, err)
	}
	pool, err := parseSharedStrings(data)
	if err != nil {
		return nil, newPartError(part, err)
	}
	return pool, nil
}
