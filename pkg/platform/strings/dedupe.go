// Package strings provides list parsing helpers for configuration values.
package strings

import (
	"strings"
)

// SplitList splits a comma separated value, trimming each element and
// dropping blanks and repeats. Order is preserved.
//
// Example:
//
//	SplitList(" SM, ME ,,SM")
//	// Returns: []string{"SM", "ME"}
func SplitList(raw string) []string {
	return DedupeAndTrim(strings.Split(raw, ","))
}

// DedupeAndTrim removes duplicates and empty strings from values, trimming
// whitespace from each element. Order is preserved; nil stays nil.
func DedupeAndTrim(values []string) []string {
	return dedupe(values, strings.TrimSpace)
}

// DedupeAndTrimUpper is DedupeAndTrim with each element upper-cased, for
// case-insensitive identifiers such as phonebook storage names.
func DedupeAndTrimUpper(values []string) []string {
	return dedupe(values, func(s string) string {
		return strings.ToUpper(strings.TrimSpace(s))
	})
}

func dedupe(values []string, normalize func(string) string) []string {
	var result []string
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = normalize(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}
	return result
}
