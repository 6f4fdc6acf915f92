package parser

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"
)

// SharedStrings is the workbook's shared-string pool.
type SharedStrings []string

// Resolve maps a cell's string-table index to its text. Indices that are not
// integers or fall outside the pool resolve to "".
func (s SharedStrings) Resolve(raw string) string {
	idx, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || idx < 0 || idx >= len(s) {
		return ""
	}
	return s[idx]
}

// parseSharedStrings decodes sharedStrings.xml. Each <si> contributes one entry:
// the concatenation of its <t> runs, excluding phonetic (<rPh>) runs.
func parseSharedStrings(data []byte) (SharedStrings, error) {
	var pool SharedStrings
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var (
		inItem   bool
		phonetic int
		current  strings.Builder
	)

	for {
		token, err := decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "si":
				inItem = true
				phonetic = 0
				current.Reset()
			case "rPh":
				phonetic++
			case "t":
				if !inItem || phonetic > 0 {
					continue
				}
				text, err := readElementText(decoder)
				if err != nil {
					return nil, err
				}
				current.WriteString(text)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "si":
				if inItem {
					pool = append(pool, current.String())
				}
				inItem = false
			case "rPh":
				if phonetic > 0 {
					phonetic--
				}
			}
		}
	}

	return pool, nil
}
