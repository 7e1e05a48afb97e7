// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textnorm cleans extracted PDF text down to portable ASCII.
package textnorm

import (
	"regexp"
	"strings"
)

// nonASCII matches runs of characters outside the 7-bit ASCII range.
// Invalid UTF-8 bytes decode as U+FFFD and fall in the same class.
var nonASCII = regexp.MustCompile(`[^\x00-\x7F]+`)

// Clean replaces each run of non-ASCII characters with a single space,
// replaces NUL bytes with spaces, and trims surrounding whitespace.
// Clean is total and idempotent: Clean(Clean(s)) == Clean(s).
func Clean(s string) string {
	s = nonASCII.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "\x00", " ")
	return strings.TrimSpace(s)
}
