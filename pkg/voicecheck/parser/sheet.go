package parser

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/ukaji3/voicecheck-go/pkg/voicecheck/models"
	"github.com/xuri/excelize/v2"
)

// cellTypeSharedString marks a cell whose value is a shared-string index.
const cellTypeSharedString = "s"

// parseWorksheet decodes a worksheet part into rows of column-lettered values.
// Cells without a <v> node are omitted, and rows left without cells are dropped.
func parseWorksheet(data []byte, pool SharedStrings) ([]models.Row, error) {
	var rows []models.Row
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var (
		row     *models.Row
		prevCol int
	)

	for {
		token, err := decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			if ee, ok := token.(xml.EndElement); ok && ee.Name.Local == "row" && row != nil {
				if len(row.C) > 0 {
					rows = append(rows, *row)
				}
				row = nil
			}
			continue
		}

		switch se.Name.Local {
		case "row":
			row = &models.Row{C: make(map[string]string)}
			prevCol = 0
			if r, err := strconv.Atoi(attrValue(se, "r")); err == nil {
				row.R = r
			}
		case "c":
			if row == nil {
				continue
			}
			col := columnOf(attrValue(se, "r"), prevCol)
			if n, err := excelize.ColumnNameToNumber(col); err == nil {
				prevCol = n
			}
			value, hasValue, err := parseCell(decoder, attrValue(se, "t"), pool)
			if err != nil {
				return nil, err
			}
			if hasValue {
				row.C[col] = value
			}
		}
	}

	return rows, nil
}

// parseCell consumes a <c> element and returns its resolved value. hasValue is
// false when the cell has no <v> child.
func parseCell(decoder *xml.Decoder, cellType string, pool SharedStrings) (value string, hasValue bool, err error) {
	var raw string
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return "", false, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "v" && depth == 1 {
				text, err := readElementText(decoder)
				if err != nil {
					return "", false, err
				}
				raw = text
				hasValue = true
				continue
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}

	if !hasValue {
		return "", false, nil
	}
	if cellType == cellTypeSharedString {
		return pool.Resolve(raw), true, nil
	}
	return raw, true, nil
}

// columnOf derives the column letters of a cell reference such as "C12".
// A cell without a reference takes the column after prevCol.
func columnOf(ref string, prevCol int) string {
	if ref == "" {
		name, err := excelize.ColumnNumberToName(prevCol + 1)
		if err != nil {
			return ""
		}
		return name
	}
	if col, _, err := excelize.SplitCellName(ref); err == nil {
		return strings.ToUpper(col)
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, ref)
}

func attrValue(se xml.StartElement, local string) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}
