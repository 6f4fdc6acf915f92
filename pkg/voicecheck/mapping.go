package voicecheck

import (
	"strings"

	"github.com/ukaji3/voicecheck-go/pkg/voicecheck/models"
	"github.com/ukaji3/voicecheck-go/pkg/voicecheck/parser"
)

// MappingEntry is one workbook script row.
type MappingEntry struct {
	ID      string
	Speaker string
	Text    string
}

// Mapping maps voice identifiers to their workbook script rows.
type Mapping struct {
	entries map[string]MappingEntry
	order   []string
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{entries: make(map[string]MappingEntry)}
}

// Add stores an entry. A later entry for the same identifier replaces the
// earlier one but keeps its position.
func (m *Mapping) Add(e MappingEntry) {
	if _, ok := m.entries[e.ID]; !ok {
		m.order = append(m.order, e.ID)
	}
	m.entries[e.ID] = e
}

// Len returns the number of identifiers in the mapping.
func (m *Mapping) Len() int { return len(m.entries) }

// Lookup returns the entry for an identifier.
func (m *Mapping) Lookup(id string) (MappingEntry, bool) {
	e, ok := m.entries[id]
	return e, ok
}

// Entries returns the entries in first-seen order.
func (m *Mapping) Entries() []MappingEntry {
	out := make([]MappingEntry, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.entries[id])
	}
	return out
}

// Inverse maps transcript text back to its identifier. When several rows share
// the same text the last one wins, so a fixer relying on it can redirect a line
// to the wrong identifier; DuplicateTexts reports those collisions.
func (m *Mapping) Inverse() map[string]string {
	inv := make(map[string]string, len(m.entries))
	for _, id := range m.order {
		inv[m.entries[id].Text] = id
	}
	return inv
}

// DuplicateTexts returns, for each text shared by more than one identifier,
// the identifiers in first-seen order.
func (m *Mapping) DuplicateTexts() map[string][]string {
	byText := make(map[string][]string)
	for _, id := range m.order {
		text := m.entries[id].Text
		byText[text] = append(byText[text], id)
	}
	for text, ids := range byText {
		if len(ids) < 2 {
			delete(byText, text)
		}
	}
	return byText
}

// BuildMapping turns workbook rows into a voice mapping. Rows numbered
// opts.HeaderRows or below are skipped; a row without a number is skipped by
// its position instead. An eligible row is kept when its trimmed id
// (column A) carries opts.Prefix and both id and trimmed text (column C) are
// non-empty.
func BuildMapping(rows []models.Row, opts MappingOptions) *Mapping {
	m := NewMapping()
	for i, row := range rows {
		if isHeaderRow(row, i, opts.HeaderRows) {
			continue
		}
		id := strings.TrimSpace(row.Get(ColumnID))
		text := strings.TrimSpace(row.Get(ColumnText))
		if id == "" || text == "" || !strings.HasPrefix(id, opts.Prefix) {
			continue
		}
		m.Add(MappingEntry{
			ID:      id,
			Speaker: strings.TrimSpace(row.Get(ColumnSpeaker)),
			Text:    text,
		})
	}
	return m
}

func isHeaderRow(row models.Row, pos, headerRows int) bool {
	if row.R > 0 {
		return row.R <= headerRows
	}
	return pos < headerRows
}

// LoadMapping reads the workbook at path and builds its voice mapping. Non-fatal
// reader problems are returned as warnings. On error the caller decides whether
// to continue with an empty mapping.
func LoadMapping(path string, opts MappingOptions) (*Mapping, []string, error) {
	table, err := parser.ReadTable(path)
	if err != nil {
		return nil, nil, &MappingError{Path: path, Err: err}
	}
	return BuildMapping(table.Rows, opts), table.Warnings, nil
}
