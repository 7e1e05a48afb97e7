// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/tableminer/internal/history"
	"github.com/pdiddy/tableminer/internal/pdftext"
	"github.com/pdiddy/tableminer/internal/pipeline"
	"github.com/pdiddy/tableminer/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file.pdf]",
	Short: "Extract tables from PDFs into xlsx workbooks",
	Long: `Extract runs the table-detection pipeline. With a file argument it
processes a single PDF; with --batch it processes every PDF in the input
directory, writes one workbook per document into the output directory,
and leaves an extraction-summary.yaml manifest describing the run.

With --history-db, batch outcomes are also recorded in a SQLite database
that the report subcommand can query later.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := extractConfig(cmd)

	ex, err := pdftext.NewExtractor(cfg.Backend)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		return extractOne(ex, args[0], cfg.OutputDir)
	}

	batch, _ := cmd.Flags().GetBool("batch")
	if !batch {
		return fmt.Errorf("provide a PDF file argument, or --batch to process the input directory")
	}

	started := time.Now()
	result, err := pipeline.ExtractBatch(ex, cfg.InputDir, cfg.OutputDir, os.Stdout)
	if err != nil {
		return err
	}

	hcfg := types.HistoryConfig{DBPath: stringSetting(cmd, "history-db", "history.db_path")}
	if hcfg.DBPath != "" {
		if err := recordRun(hcfg.DBPath, started, cfg, result); err != nil {
			fmt.Fprintf(os.Stderr, "warning: history record failed: %v\n", err)
		}
	}

	if result.Total() > 0 && result.Exported == 0 {
		return fmt.Errorf("no workbooks written from %d document(s)", result.Total())
	}
	return nil
}

// extractOne processes a single PDF given as a positional argument.
func extractOne(ex pdftext.Extractor, pdfPath, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}
	outcome := pipeline.ProcessDocument(ex, pdfPath, pipeline.OutputPath(pdfPath, outputDir), os.Stdout)
	if outcome.Status == types.StatusFailed {
		return fmt.Errorf("%s: %s", outcome.File, outcome.Error)
	}
	return nil
}

// extractConfig resolves pipeline settings from flags, the config file,
// and the environment. Explicit flags win.
func extractConfig(cmd *cobra.Command) types.ExtractConfig {
	return types.ExtractConfig{
		Backend:   stringSetting(cmd, "backend", "extract.backend"),
		InputDir:  stringSetting(cmd, "input", "extract.input_dir"),
		OutputDir: stringSetting(cmd, "output", "extract.output_dir"),
	}
}

// stringSetting returns the flag value, unless the flag was left at its
// default and the config file or environment sets the viper key.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

func recordRun(dbPath string, started time.Time, cfg types.ExtractConfig, result pipeline.BatchResult) error {
	store, err := history.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Record(context.Background(), history.Run{
		StartedAt: started,
		InputDir:  cfg.InputDir,
		OutputDir: cfg.OutputDir,
		Exported:  result.Exported,
		NoTables:  result.NoTables,
		Failed:    result.Failed,
	}, result.Outcomes)
	return err
}

func init() {
	extractCmd.Flags().String("input", ".", "input directory scanned for PDF documents")
	extractCmd.Flags().String("output", "tables", "output directory for xlsx workbooks")
	extractCmd.Flags().String("backend", pdftext.BackendLedongthuc, "text-extraction backend: ledongthuc or pdftotext")
	extractCmd.Flags().Bool("batch", false, "process every PDF in the input directory")
	extractCmd.Flags().String("history-db", "", "SQLite database recording batch runs (empty = disabled)")

	rootCmd.AddCommand(extractCmd)
}
