package report

const ellipsis = "..."

// Preview shortens s to at most limit characters, appending "..." when cut.
func Preview(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + ellipsis
}
