// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the per-document extraction pipeline and the
// directory batch driver.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/tableminer/internal/layout"
	"github.com/pdiddy/tableminer/internal/pdftext"
	"github.com/pdiddy/tableminer/internal/refine"
	"github.com/pdiddy/tableminer/internal/workbook"
	"github.com/pdiddy/tableminer/pkg/types"
)

// BatchResult holds the outcome of a batch extraction run.
type BatchResult struct {
	Exported int
	NoTables int
	Failed   int
	Outcomes []types.DocumentOutcome
}

// Total returns the number of documents processed.
func (r BatchResult) Total() int { return r.Exported + r.NoTables + r.Failed }

// HasFailures reports whether any documents failed.
func (r BatchResult) HasFailures() bool { return r.Failed > 0 }

// ProcessDocument runs one PDF through the full pipeline: extract text,
// structure lines, detect and refine tables, export the workbook to
// outPath. Status lines go to w; the outcome records counts and any
// failure. A fault in one table never aborts its siblings, and no fault
// escapes this function.
func ProcessDocument(ex pdftext.Extractor, pdfPath, outPath string, w io.Writer) types.DocumentOutcome {
	name := filepath.Base(pdfPath)
	outcome := types.DocumentOutcome{File: name}

	pages, err := ex.ExtractPages(pdfPath)
	if err != nil {
		fmt.Fprintf(w, "failed:    %s (%v)\n", name, err)
		outcome.Status = types.StatusFailed
		outcome.Error = err.Error()
		return outcome
	}

	lines := layout.StructurePages(pages)
	if len(lines) == 0 {
		fmt.Fprintf(w, "no text:   %s\n", name)
		outcome.Status = types.StatusNoText
		return outcome
	}

	tables := refine.Refine(layout.DetectTables(lines), w)
	outcome.Tables = len(tables)

	sheets, err := workbook.Export(tables, outPath, w)
	switch {
	case errors.Is(err, workbook.ErrNoTables):
		fmt.Fprintf(w, "no tables: %s\n", name)
		outcome.Status = types.StatusNoTables
	case err != nil:
		fmt.Fprintf(w, "failed:    %s (%v)\n", name, err)
		outcome.Status = types.StatusFailed
		outcome.Error = err.Error()
	default:
		fmt.Fprintf(w, "exported:  %s (%d tables)\n", name, sheets)
		outcome.Status = types.StatusExported
		outcome.Sheets = sheets
		outcome.Workbook = outPath
	}
	return outcome
}

// OutputPath builds the workbook path for a PDF: the input basename
// with a _tables.xlsx suffix, under outputDir.
func OutputPath(pdfPath, outputDir string) string {
	base := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	return filepath.Join(outputDir, base+"_tables.xlsx")
}

// ExtractBatch processes every PDF in inputDir sequentially, writing
// one workbook per document into outputDir (created if absent).
// Per-file status lines and a summary line go to w, and a YAML run
// manifest is written into outputDir when at least one document was
// scanned. A document that fails never stops its siblings; the
// returned error covers batch-level problems only.
func ExtractBatch(ex pdftext.Extractor, inputDir, outputDir string, w io.Writer) (BatchResult, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return BatchResult{}, fmt.Errorf("reading input directory %s: %w", inputDir, err)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return BatchResult{}, fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}

	var result BatchResult
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		pdfPath := filepath.Join(inputDir, entry.Name())
		outcome := ProcessDocument(ex, pdfPath, OutputPath(pdfPath, outputDir), w)
		result.Outcomes = append(result.Outcomes, outcome)
		switch outcome.Status {
		case types.StatusExported:
			result.Exported++
		case types.StatusFailed:
			result.Failed++
		default:
			result.NoTables++
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d exported, %d without tables, %d failed (total: %d)\n",
		result.Exported, result.NoTables, result.Failed, result.Total())

	if len(result.Outcomes) > 0 {
		if err := WriteSummary(result, inputDir, outputDir); err != nil {
			fmt.Fprintf(w, "warning: run manifest write failed: %v\n", err)
		}
	}
	return result, nil
}
