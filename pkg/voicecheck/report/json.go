package report

import (
	"fmt"
	"os"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// MarshalIndent encodes v as two-space indented JSON with non-ASCII text kept literal.
func MarshalIndent(v any) ([]byte, error) {
	return json.Marshal(v,
		jsontext.WithIndent("  "),
		jsontext.SpaceAfterColon(true),
	)
}

// WriteJSONIfNotEmpty writes items to path as an indented JSON array. Nothing
// is written when items is empty. It reports whether the file was written.
func WriteJSONIfNotEmpty[T any](path string, items []T) (bool, error) {
	if len(items) == 0 {
		return false, nil
	}
	data, err := MarshalIndent(items)
	if err != nil {
		return false, fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write report %s: %w", path, err)
	}
	return true, nil
}
