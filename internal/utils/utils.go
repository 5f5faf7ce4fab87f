package utils

import "strings"

// SplitAndTrim splits a line on sep and trims surrounding whitespace from
// every field. Trailing empty fields are dropped, so "a,b,," gives two
// fields and ",," gives none. A line without sep, including an empty
// line, yields a single field.
func SplitAndTrim(line, sep string) []string {
	fields := strings.Split(line, sep)
	if len(fields) > 1 {
		n := len(fields)
		for n > 0 && fields[n-1] == "" {
			n--
		}
		fields = fields[:n]
	}
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}
