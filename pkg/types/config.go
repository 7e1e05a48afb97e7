package types

// ExtractConfig holds settings for the extraction pipeline.
type ExtractConfig struct {
	// Backend selects the text-extraction backend: ledongthuc or pdftotext.
	Backend string `json:"backend" yaml:"backend"`

	// InputDir is the directory scanned for PDF documents.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir receives one xlsx workbook per processed document.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// HistoryConfig holds settings for the run-history store.
type HistoryConfig struct {
	// DBPath is the SQLite database path. Empty disables history recording.
	DBPath string `json:"db_path" yaml:"db_path"`
}
