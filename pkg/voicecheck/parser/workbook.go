package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"path"
	"strings"
)

// Default part names used when workbook relationships cannot be resolved.
const (
	defaultWorksheetPart     = "xl/worksheets/sheet1.xml"
	defaultSharedStringsPart = "xl/sharedStrings.xml"
	workbookPart             = "xl/workbook.xml"
	workbookRelsPart         = "xl/_rels/workbook.xml.rels"
)

// workbookParts names the archive parts the table reader needs.
type workbookParts struct {
	Worksheet     string
	SharedStrings string
}

// sheetRef is a <sheet> element of workbook.xml.
type sheetRef struct {
	Name string
	RID  string
}

// relationship is a <Relationship> element of a .rels part.
type relationship struct {
	Type   string
	Target string
}

// locateParts resolves the first worksheet (in workbook order) and the shared-string
// part through the workbook relationships, falling back to the conventional names.
func locateParts(r *zip.Reader) workbookParts {
	parts := workbookParts{
		Worksheet:     defaultWorksheetPart,
		SharedStrings: defaultSharedStringsPart,
	}

	workbookXML, err := readZipFile(r, workbookPart)
	if err != nil {
		return parts
	}
	relsXML, err := readZipFile(r, workbookRelsPart)
	if err != nil {
		return parts
	}

	sheets := parseWorkbookSheets(workbookXML)
	rels := parseWorkbookRels(relsXML)

	if len(sheets) > 0 {
		if rel, ok := rels[sheets[0].RID]; ok && strings.Contains(strings.ToLower(rel.Type), "worksheet") {
			parts.Worksheet = resolveRelativePath(rel.Target, "xl")
		}
	}
	for _, rel := range rels {
		if strings.HasSuffix(rel.Type, "/sharedStrings") {
			parts.SharedStrings = resolveRelativePath(rel.Target, "xl")
			break
		}
	}

	return parts
}

// parseWorkbookSheets returns the <sheet> entries of workbook.xml in document order.
func parseWorkbookSheets(data []byte) []sheetRef {
	var result []sheetRef
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			var ref sheetRef
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "name":
					ref.Name = attr.Value
				case "id":
					ref.RID = attr.Value
				}
			}
			if ref.RID != "" {
				result = append(result, ref)
			}
		}
	}

	return result
}

// parseWorkbookRels maps relationship id to its type and target.
func parseWorkbookRels(data []byte) map[string]relationship {
	result := make(map[string]relationship)
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rID string
			var rel relationship
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rID = attr.Value
				case "Type":
					rel.Type = attr.Value
				case "Target":
					rel.Target = attr.Value
				}
			}
			if rID != "" && rel.Target != "" {
				result[rID] = rel
			}
		}
	}

	return result
}

// resolveRelativePath turns a relationship target into an archive part name.
// Absolute targets are rooted at the archive, relative ones at baseDir.
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return path.Clean(strings.TrimPrefix(target, "/"))
	}
	return path.Clean(path.Join(baseDir, target))
}

// readZipFile returns the contents of the named part, or ErrPartNotFound.
func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, ErrPartNotFound
}

// readElementText collects the character data of the current element, including
// nested elements, and consumes its end tag.
func readElementText(decoder *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return sb.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return sb.String(), nil
}
