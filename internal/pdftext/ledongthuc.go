// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"fmt"

	pdflib "github.com/ledongthuc/pdf"
)

// LedongthucExtractor reads PDFs with the pure-Go ledongthuc/pdf parser.
type LedongthucExtractor struct{}

// ExtractPages returns the plain text of each page in order. A page
// whose text cannot be decoded yields an empty string; an unreadable
// document returns an error.
func (e *LedongthucExtractor) ExtractPages(path string) ([]string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}
