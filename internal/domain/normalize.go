package domain

import (
	"strings"
)

// NormalizeSearch prepares a free-text query: trims, compresses whitespace runs into
// one space and lowercases. Returns "" for blank input.
func NormalizeSearch(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

// SameDescription is the duplicate guard's comparison: case-insensitive exact match
// after trimming surrounding whitespace.
func SameDescription(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// EscapeLike escapes LIKE wildcards so user input matches literally.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
