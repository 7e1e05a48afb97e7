// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import (
	"github.com/pdiddy/tableminer/internal/textnorm"
	"github.com/pdiddy/tableminer/pkg/types"
)

// DetectTables groups consecutive multi-column lines into candidate
// tables. The first multi-column line opens a candidate and becomes its
// header; each following line with the same column count is appended as
// a row. Any other shape closes the candidate: a single-column line, a
// page boundary, end of input, or a multi-column line of a different
// width. The mismatched-width line only closes; it never opens a new
// candidate itself. Candidates without at least one row are discarded.
func DetectTables(lines []types.Line) []types.Candidate {
	var (
		tables  []types.Candidate
		current *types.Candidate
	)

	prevPage := 0
	for _, line := range lines {
		if prevPage != 0 && line.Page != prevPage {
			tables = appendIfRowed(tables, current)
			current = nil
		}
		prevPage = line.Page

		switch {
		case line.PartCount() <= 1:
			tables = appendIfRowed(tables, current)
			current = nil
		case current == nil:
			current = &types.Candidate{
				Page:   line.Page,
				Header: cleanParts(line.Parts),
			}
		case line.PartCount() == len(current.Header):
			current.Rows = append(current.Rows, cleanParts(line.Parts))
		default:
			tables = appendIfRowed(tables, current)
			current = nil
		}
	}
	return appendIfRowed(tables, current)
}

// appendIfRowed emits a candidate only once it has accumulated at least
// one data row; a bare header is dropped silently.
func appendIfRowed(tables []types.Candidate, c *types.Candidate) []types.Candidate {
	if c == nil || len(c.Rows) == 0 {
		return tables
	}
	return append(tables, *c)
}

func cleanParts(parts []string) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = textnorm.Clean(p)
	}
	return out
}
