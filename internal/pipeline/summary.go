// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/tableminer/pkg/types"
)

// SummaryFile is the name of the per-run manifest written into the
// output directory.
const SummaryFile = "extraction-summary.yaml"

// RunSummary is the YAML manifest describing one batch run.
type RunSummary struct {
	GeneratedAt string                  `yaml:"generated_at"`
	InputDir    string                  `yaml:"input_dir"`
	OutputDir   string                  `yaml:"output_dir"`
	Exported    int                     `yaml:"exported"`
	NoTables    int                     `yaml:"no_tables"`
	Failed      int                     `yaml:"failed"`
	Documents   []types.DocumentOutcome `yaml:"documents"`
}

// WriteSummary writes the batch manifest to outputDir/extraction-summary.yaml.
func WriteSummary(result BatchResult, inputDir, outputDir string) error {
	s := RunSummary{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		InputDir:    inputDir,
		OutputDir:   outputDir,
		Exported:    result.Exported,
		NoTables:    result.NoTables,
		Failed:      result.Failed,
		Documents:   result.Outcomes,
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outputDir, SummaryFile), data, 0o644)
}
