// Package types defines the records shared between pipeline stages.
package types

// Line is one cleaned text line from a PDF page. Parts are the
// candidate column values found by splitting the line on runs of two
// or more whitespace characters.
type Line struct {
	Text  string
	Parts []string
	Page  int
}

// PartCount returns the number of column values on the line.
func (l Line) PartCount() int { return len(l.Parts) }

// Candidate is a provisional table: consecutive lines with a stable
// column count, grouped under the first line as header. Every row has
// exactly len(Header) cells. Not yet validated.
type Candidate struct {
	Page   int
	Header []string
	Rows   [][]string
}

// Table is a refined candidate: all-empty rows and columns pruned,
// cells cleaned, at least two columns and one row remaining.
type Table struct {
	Page   int
	Header []string
	Rows   [][]string
}

// DocumentStatus classifies the outcome of processing one PDF.
type DocumentStatus string

const (
	// StatusExported means a workbook was written for the document.
	StatusExported DocumentStatus = "exported"
	// StatusNoText means extraction succeeded but yielded no text.
	StatusNoText DocumentStatus = "no-text"
	// StatusNoTables means text was extracted but no table survived refinement.
	StatusNoTables DocumentStatus = "no-tables"
	// StatusFailed means extraction or the workbook save failed.
	StatusFailed DocumentStatus = "failed"
)

// DocumentOutcome records what happened to a single input document.
type DocumentOutcome struct {
	File     string         `json:"file" yaml:"file"`
	Status   DocumentStatus `json:"status" yaml:"status"`
	Tables   int            `json:"tables" yaml:"tables"`
	Sheets   int            `json:"sheets" yaml:"sheets"`
	Workbook string         `json:"workbook,omitempty" yaml:"workbook,omitempty"`
	Error    string         `json:"error,omitempty" yaml:"error,omitempty"`
}
