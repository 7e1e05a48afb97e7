// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workbook serializes refined tables to an xlsx workbook, one
// sheet per table.
package workbook

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/tableminer/internal/textnorm"
	"github.com/pdiddy/tableminer/pkg/types"
)

// ErrNoTables is returned by Export when there is nothing to write. No
// workbook file is produced in that case.
var ErrNoTables = errors.New("no tables to export")

// maxSheetName is the sheet name length limit of the xlsx format.
const maxSheetName = 31

// sheetNameStripper removes the characters xlsx forbids in sheet names.
var sheetNameStripper = strings.NewReplacer(
	"[", "", "]", "", ":", "", "*", "", "?", "", "/", "", "\\", "",
)

// SheetName builds the name for the index-th table (1-based across the
// document) found on the given page. The result is non-empty, at most
// 31 characters, and free of the characters xlsx rejects.
func SheetName(page, index int) string {
	name := sheetNameStripper.Replace(fmt.Sprintf("Page_%d_Table_%d", page, index))
	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}
	if strings.TrimSpace(name) == "" {
		name = fmt.Sprintf("Table_%d", index)
	}
	return name
}

// ColumnWidths computes the display width of each column: the widest
// cell in the column, header included, plus two characters of padding,
// scaled by 1.2.
func ColumnWidths(t types.Table) []float64 {
	widths := make([]float64, len(t.Header))
	for j, h := range t.Header {
		widest := runewidth.StringWidth(h)
		for _, row := range t.Rows {
			if w := runewidth.StringWidth(row[j]); w > widest {
				widest = w
			}
		}
		widths[j] = float64(widest+2) * 1.2
	}
	return widths
}

// Export writes one sheet per table to an xlsx workbook at path. A
// sheet that fails to serialize is reported to w and skipped while the
// remaining sheets are still written. The returned error covers
// whole-workbook conditions only: ErrNoTables, every sheet failing, or
// a failed save. The sheet count written is returned alongside.
func Export(tables []types.Table, path string, w io.Writer) (int, error) {
	if len(tables) == 0 {
		return 0, ErrNoTables
	}

	f := excelize.NewFile()
	defer f.Close()
	defaultSheet := f.GetSheetName(0)

	written := 0
	for i, t := range tables {
		name := SheetName(t.Page, i+1)
		if err := writeSheet(f, name, t); err != nil {
			fmt.Fprintf(w, "  sheet %s: %v\n", name, err)
			continue
		}
		written++
	}
	if written == 0 {
		return 0, fmt.Errorf("all %d sheet(s) failed to serialize", len(tables))
	}

	if err := f.DeleteSheet(defaultSheet); err != nil {
		return 0, fmt.Errorf("removing default sheet: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return 0, fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return written, nil
}

// writeSheet writes the header row, the data rows, and the column
// widths for one table.
func writeSheet(f *excelize.File, name string, t types.Table) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}

	header := make([]any, len(t.Header))
	for j, h := range t.Header {
		header[j] = textnorm.Clean(h)
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}

	for i, row := range t.Rows {
		cells := make([]any, len(row))
		for j, c := range row {
			cells[j] = textnorm.Clean(c)
		}
		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, start, &cells); err != nil {
			return err
		}
	}

	for j, width := range ColumnWidths(t) {
		col, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(name, col, col, width); err != nil {
			return err
		}
	}
	return nil
}
