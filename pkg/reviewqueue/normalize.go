package reviewqueue

import "strings"

// Normalize lowercases and collapses whitespace in a suggestion string,
// producing the form used for (doc_id, kind, suggestion) uniqueness and
// blocklist matching.
func Normalize(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	return strings.Join(fields, " ")
}
