// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package refine validates candidate tables and prunes empty content.
package refine

import (
	"fmt"
	"io"

	"github.com/pdiddy/tableminer/internal/textnorm"
	"github.com/pdiddy/tableminer/pkg/types"
)

// Refine converts candidates into validated tables. Cells that clean
// down to nothing count as missing; rows and columns that are entirely
// missing are dropped, and every surviving cell is cleaned. A table is
// kept only with at least two columns and one row. A candidate whose
// rows do not match its header width is reported to w and skipped;
// sibling candidates are unaffected.
func Refine(cands []types.Candidate, w io.Writer) []types.Table {
	var tables []types.Table
	for i, c := range cands {
		t, err := refineOne(c)
		if err != nil {
			fmt.Fprintf(w, "  table %d (page %d): %v\n", i+1, c.Page, err)
			continue
		}
		if t != nil {
			tables = append(tables, *t)
		}
	}
	return tables
}

// refineOne returns (nil, nil) for degenerate tables that are discarded
// without a diagnostic.
func refineOne(c types.Candidate) (*types.Table, error) {
	// The detector guarantees row width; a mismatch here means the
	// candidate was built outside the pipeline.
	for _, row := range c.Rows {
		if len(row) != len(c.Header) {
			return nil, fmt.Errorf("row width %d does not match header width %d", len(row), len(c.Header))
		}
	}

	rows := dropEmptyRows(c.Rows)
	header, rows := dropEmptyColumns(c.Header, rows)
	if len(header) < 2 || len(rows) == 0 {
		return nil, nil
	}

	cleanedHeader := make([]string, len(header))
	for i, h := range header {
		cleanedHeader[i] = textnorm.Clean(h)
	}
	cleanedRows := make([][]string, len(rows))
	for i, row := range rows {
		cleanedRows[i] = make([]string, len(row))
		for j, cell := range row {
			cleanedRows[i][j] = textnorm.Clean(cell)
		}
	}
	return &types.Table{Page: c.Page, Header: cleanedHeader, Rows: cleanedRows}, nil
}

// missing reports whether a cell holds no usable content.
func missing(cell string) bool {
	return textnorm.Clean(cell) == ""
}

func dropEmptyRows(rows [][]string) [][]string {
	var kept [][]string
	for _, row := range rows {
		for _, cell := range row {
			if !missing(cell) {
				kept = append(kept, row)
				break
			}
		}
	}
	return kept
}

// dropEmptyColumns removes columns whose data cells are all missing.
// Header labels follow their columns; a label alone does not keep a
// column alive.
func dropEmptyColumns(header []string, rows [][]string) ([]string, [][]string) {
	if len(rows) == 0 {
		return header, rows
	}

	keep := make([]bool, len(header))
	kept := 0
	for j := range header {
		for _, row := range rows {
			if !missing(row[j]) {
				keep[j] = true
				kept++
				break
			}
		}
	}
	if kept == len(header) {
		return header, rows
	}

	newHeader := make([]string, 0, kept)
	for j, k := range keep {
		if k {
			newHeader = append(newHeader, header[j])
		}
	}
	newRows := make([][]string, len(rows))
	for i, row := range rows {
		newRow := make([]string, 0, kept)
		for j, k := range keep {
			if k {
				newRow = append(newRow, row[j])
			}
		}
		newRows[i] = newRow
	}
	return newHeader, newRows
}
