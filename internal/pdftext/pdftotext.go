// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"fmt"
	"os/exec"
	"strings"
)

// PdftotextExtractor shells out to the poppler pdftotext tool in layout
// mode, which preserves the column whitespace the detector relies on.
type PdftotextExtractor struct{}

// ExtractPages runs pdftotext -layout on the document and splits its
// output on the form feeds the tool emits between pages.
func (e *PdftotextExtractor) ExtractPages(path string) ([]string, error) {
	out, err := exec.Command("pdftotext", "-layout", path, "-").Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext %s: %w", path, err)
	}
	return SplitPages(string(out)), nil
}

// SplitPages splits pdftotext output into per-page text on form feeds.
// The tool terminates the final page with a form feed, so a blank
// trailing element is dropped.
func SplitPages(text string) []string {
	pages := strings.Split(text, "\f")
	if n := len(pages); n > 1 && strings.TrimSpace(pages[n-1]) == "" {
		pages = pages[:n-1]
	}
	return pages
}
