// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workbook

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/tableminer/pkg/types"
)

func TestSheetName(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		index int
		want  string
	}{
		{name: "simple", page: 1, index: 1, want: "Page_1_Table_1"},
		{name: "larger numbers", page: 12, index: 7, want: "Page_12_Table_7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SheetName(tt.page, tt.index); got != tt.want {
				t.Errorf("SheetName(%d, %d) = %q, want %q", tt.page, tt.index, got, tt.want)
			}
		})
	}
}

func TestSheetNameInvariants(t *testing.T) {
	forbidden := "[]:*?/\\"
	cases := [][2]int{{1, 1}, {999999999, 999999999}, {0, 0}, {123456789, 987654321}}
	for _, c := range cases {
		name := SheetName(c[0], c[1])
		if name == "" || strings.TrimSpace(name) == "" {
			t.Errorf("SheetName(%d, %d) is empty", c[0], c[1])
		}
		if len(name) > 31 {
			t.Errorf("SheetName(%d, %d) = %q has length %d", c[0], c[1], name, len(name))
		}
		if strings.ContainsAny(name, forbidden) {
			t.Errorf("SheetName(%d, %d) = %q contains forbidden characters", c[0], c[1], name)
		}
	}
}

func TestColumnWidths(t *testing.T) {
	table := types.Table{
		Header: []string{"Name", "Age"},
		Rows:   [][]string{{"Alice", "30"}, {"Bo", "25"}},
	}

	widths := ColumnWidths(table)

	// Widest in column 0 is "Alice" (5): (5+2)*1.2 = 8.4.
	// Widest in column 1 is "Age" (3): (3+2)*1.2 = 6.0.
	if math.Abs(widths[0]-8.4) > 1e-9 {
		t.Errorf("widths[0] = %v, want 8.4", widths[0])
	}
	if math.Abs(widths[1]-6.0) > 1e-9 {
		t.Errorf("widths[1] = %v, want 6.0", widths[1])
	}
}

func TestExportNoTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	n, err := Export(nil, path, &bytes.Buffer{})

	if !errors.Is(err, ErrNoTables) {
		t.Fatalf("err = %v, want ErrNoTables", err)
	}
	if n != 0 {
		t.Errorf("sheets written = %d, want 0", n)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("no file should be written when there are no tables")
	}
}

func TestExportWritesSheets(t *testing.T) {
	tables := []types.Table{
		{
			Page:   1,
			Header: []string{"Name", "Age", "City"},
			Rows:   [][]string{{"Alice", "30", "NYC"}, {"Bob", "25", "LA"}},
		},
		{
			Page:   2,
			Header: []string{"Item", "Qty"},
			Rows:   [][]string{{"bolt", "4"}},
		},
	}
	path := filepath.Join(t.TempDir(), "out.xlsx")

	var log bytes.Buffer
	n, err := Export(tables, path, &log)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if n != 2 {
		t.Fatalf("sheets written = %d, want 2", n)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 {
		t.Fatalf("sheet list = %v, want 2 sheets", sheets)
	}
	if sheets[0] != "Page_1_Table_1" || sheets[1] != "Page_2_Table_2" {
		t.Errorf("sheet names = %v", sheets)
	}

	rows, err := f.GetRows("Page_1_Table_1")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3 (header + 2)", len(rows))
	}
	if rows[0][0] != "Name" || rows[1][0] != "Alice" || rows[2][2] != "LA" {
		t.Errorf("unexpected cell content: %v", rows)
	}

	width, err := f.GetColWidth("Page_1_Table_1", "A")
	if err != nil {
		t.Fatalf("GetColWidth: %v", err)
	}
	// Widest cell in column A is "Alice": (5+2)*1.2.
	if math.Abs(width-8.4) > 0.1 {
		t.Errorf("column A width = %v, want ~8.4", width)
	}
}

func TestExportCleansCellsOnWrite(t *testing.T) {
	tables := []types.Table{{
		Page:   1,
		Header: []string{"Col\x00A", "ColB"},
		Rows:   [][]string{{"  padded  ", "ok"}},
	}}
	path := filepath.Join(t.TempDir(), "out.xlsx")

	if _, err := Export(tables, path, &bytes.Buffer{}); err != nil {
		t.Fatalf("Export: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Page_1_Table_1")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if rows[0][0] != "Col A" {
		t.Errorf("header cell = %q, want %q", rows[0][0], "Col A")
	}
	if rows[1][0] != "padded" {
		t.Errorf("data cell = %q, want %q", rows[1][0], "padded")
	}
}

func TestExportSaveFailure(t *testing.T) {
	tables := []types.Table{{
		Page:   1,
		Header: []string{"A", "B"},
		Rows:   [][]string{{"1", "2"}},
	}}
	// Path under a nonexistent directory cannot be saved.
	path := filepath.Join(t.TempDir(), "missing", "out.xlsx")

	_, err := Export(tables, path, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected save error")
	}
	if errors.Is(err, ErrNoTables) {
		t.Fatal("save failure must be distinct from ErrNoTables")
	}
}
