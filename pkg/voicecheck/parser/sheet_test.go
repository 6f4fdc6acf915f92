package parser

import (
	"testing"
)

func TestColumnOf(t *testing.T) {
	tests := []struct {
		ref      string
		prevCol  int
		expected string
	}{
		{"A3", 0, "A"},
		{"C12", 2, "C"},
		{"AB100", 0, "AB"},
		{"", 0, "A"},
		{"", 2, "C"},
		{"Z$", 0, "Z"},
	}

	for _, tt := range tests {
		result := columnOf(tt.ref, tt.prevCol)
		if result != tt.expected {
			t.Errorf("columnOf(%q, %d) = %q, expected %q", tt.ref, tt.prevCol, result, tt.expected)
		}
	}
}

func TestParseWorksheetInfersMissingReferences(t *testing.T) {
	data := []byte(sheetXML(`<row><c><v>L001</v></c><c><v>ハル</v></c><c><v>台詞</v></c></row>`))

	rows, err := parseWorksheet(data, nil)
	if err != nil {
		t.Fatalf("parseWorksheet failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if rows[0].R != 0 {
		t.Errorf("Expected row number 0 without r attribute, got %d", rows[0].R)
	}
	for col, want := range map[string]string{"A": "L001", "B": "ハル", "C": "台詞"} {
		if got := rows[0].Get(col); got != want {
			t.Errorf("Column %s = %q, expected %q", col, got, want)
		}
	}
}

func TestParseWorksheetSkipsEmptyRows(t *testing.T) {
	data := []byte(sheetXML(
		`<row r="1"><c r="A1" s="1"/></row>` +
			`<row r="2"/>` +
			`<row r="3"><c r="A3"><v></v></c></row>`))

	rows, err := parseWorksheet(data, nil)
	if err != nil {
		t.Fatalf("parseWorksheet failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected only row 3 to survive, got %d rows", len(rows))
	}
	if v, ok := rows[0].C["A"]; !ok || v != "" {
		t.Errorf("Expected empty <v> to be kept as empty string, got %q (present=%v)", v, ok)
	}
}

func TestParseSharedStrings(t *testing.T) {
	data := []byte(`<sst ` + sheetNS + `>` +
		`<si><t>plain</t></si>` +
		`<si><r><t>rich </t></r><r><rPr><b/></rPr><t>text</t></r></si>` +
		`<si><t>漢字</t><rPh sb="0" eb="2"><t>かんじ</t></rPh></si>` +
		`<si/>` +
		`</sst>`)

	pool, err := parseSharedStrings(data)
	if err != nil {
		t.Fatalf("parseSharedStrings failed: %v", err)
	}
	expected := []string{"plain", "rich text", "漢字", ""}
	if len(pool) != len(expected) {
		t.Fatalf("Expected %d entries, got %d: %q", len(expected), len(pool), pool)
	}
	for i, want := range expected {
		if pool[i] != want {
			t.Errorf("pool[%d] = %q, expected %q", i, pool[i], want)
		}
	}
}

func TestSharedStringsResolve(t *testing.T) {
	pool := SharedStrings{"a", "b"}
	tests := []struct {
		raw      string
		expected string
	}{
		{"0", "a"},
		{"1", "b"},
		{" 1 ", "b"},
		{"2", ""},
		{"-1", ""},
		{"1.0", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := pool.Resolve(tt.raw); got != tt.expected {
			t.Errorf("Resolve(%q) = %q, expected %q", tt.raw, got, tt.expected)
		}
	}
}

func TestResolveRelativePath(t *testing.T) {
	tests := []struct {
		target   string
		expected string
	}{
		{"worksheets/sheet1.xml", "xl/worksheets/sheet1.xml"},
		{"/xl/worksheets/sheet2.xml", "xl/worksheets/sheet2.xml"},
		{"../xl/sharedStrings.xml", "xl/sharedStrings.xml"},
	}

	for _, tt := range tests {
		if got := resolveRelativePath(tt.target, "xl"); got != tt.expected {
			t.Errorf("resolveRelativePath(%q) = %q, expected %q", tt.target, got, tt.expected)
		}
	}
}
