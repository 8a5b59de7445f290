// Package strings provides small list-normalization helpers for code values.
package strings

import "strings"

// DedupeAndTrimUpper trims, uppercases and deduplicates the values, dropping
// entries that are empty after trimming. First-occurrence order is preserved.
// Bank and country codes are stored in uppercase compact form, so callers get
// directly comparable results.
func DedupeAndTrimUpper(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		code := strings.ToUpper(strings.TrimSpace(v))
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		result = append(result, code)
	}
	return result
}
