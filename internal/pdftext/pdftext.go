// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext extracts page-ordered plain text from PDF documents
// through pluggable backends.
package pdftext

import "fmt"

// Extractor pulls page-ordered plain text out of a PDF. Implementations
// return one string per page, in page order; a document that cannot be
// opened or parsed returns an error.
type Extractor interface {
	ExtractPages(path string) ([]string, error)
}

// Backend names accepted by NewExtractor.
const (
	BackendLedongthuc = "ledongthuc"
	BackendPdftotext  = "pdftotext"
)

// NewExtractor returns the extraction backend with the given name. An
// empty name selects the default pure-Go backend.
func NewExtractor(backend string) (Extractor, error) {
	switch backend {
	case BackendLedongthuc, "":
		return &LedongthucExtractor{}, nil
	case BackendPdftotext:
		return &PdftotextExtractor{}, nil
	default:
		return nil, fmt.Errorf("unknown extraction backend %q: use %s or %s",
			backend, BackendLedongthuc, BackendPdftotext)
	}
}
