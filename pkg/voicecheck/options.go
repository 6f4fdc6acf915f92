// Package voicecheck reconciles a voice-acting script workbook with the voiced
// dialogue dataset.
package voicecheck

// Workbook column letters holding each field of a script row.
const (
	ColumnID      = "A"
	ColumnSpeaker = "B"
	ColumnText    = "C"
)

// MappingOptions configures how workbook rows become voice mapping entries.
type MappingOptions struct {
	// Prefix is the leading text every voice identifier must carry (e.g. "L").
	Prefix string
	// HeaderRows is the number of leading row records (title, column headers)
	// skipped before data rows begin.
	HeaderRows int
}

// DefaultMappingOptions returns the options matching the standard script layout.
func DefaultMappingOptions() MappingOptions {
	return MappingOptions{
		Prefix:     "L",
		HeaderRows: 2,
	}
}
