package engine

import (
	"strings"
	"unicode/utf8"
)

// Tokenize lower-cases query, splits it on whitespace and drops tokens
// shorter than minLength runes. Duplicates are kept.
func Tokenize(query string, minLength int) []string {
	fields := strings.Fields(strings.ToLower(query))
	tokens := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) < minLength {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
