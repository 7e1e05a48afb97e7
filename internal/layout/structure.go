// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package layout recovers table structure from extracted page text.
//
// Text-based PDFs carry no explicit table markup, so layout works from
// whitespace alone: a run of two or more whitespace characters inside a
// line is treated as a column gap, and consecutive lines with a stable
// column count are grouped into candidate tables.
package layout

import (
	"regexp"
	"strings"

	"github.com/pdiddy/tableminer/internal/textnorm"
	"github.com/pdiddy/tableminer/pkg/types"
)

// columnGap matches a run of two or more whitespace characters, the
// heuristic separator between columns on the same line.
var columnGap = regexp.MustCompile(`\s{2,}`)

// StructurePages splits per-page text into lines and tokenizes each
// line into candidate column values. Pages are numbered from 1. Lines
// that clean down to nothing are dropped; page order and in-page line
// order are preserved.
func StructurePages(pages []string) []types.Line {
	var lines []types.Line
	for pageNum, text := range pages {
		for _, raw := range strings.Split(text, "\n") {
			cleaned := textnorm.Clean(raw)
			if cleaned == "" {
				continue
			}
			lines = append(lines, types.Line{
				Text:  cleaned,
				Parts: columnGap.Split(cleaned, -1),
				Page:  pageNum + 1,
			})
		}
	}
	return lines
}
