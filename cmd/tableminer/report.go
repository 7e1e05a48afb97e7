// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/tableminer/internal/history"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show batch runs recorded in the history database",
	Long: `Report lists batch runs recorded with extract --history-db, newest
first. Use --run with a run ID to show that run's per-document outcomes.`,
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	dbPath := stringSetting(cmd, "history-db", "history.db_path")
	store, err := history.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if runID, _ := cmd.Flags().GetInt64("run"); runID > 0 {
		return reportRun(store, runID)
	}

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.Recent(context.Background(), limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-20s  %-25s  %8s  %9s  %6s\n",
		"ID", "Started", "Input", "Exported", "No tables", "Failed")
	for _, r := range runs {
		fmt.Fprintf(os.Stdout, "%-4d  %-20s  %-25s  %8d  %9d  %6d\n",
			r.ID, r.StartedAt.Format("2006-01-02 15:04:05"), r.InputDir,
			r.Exported, r.NoTables, r.Failed)
	}
	return nil
}

func reportRun(store *history.Store, runID int64) error {
	docs, err := store.Documents(context.Background(), runID)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		fmt.Println("No documents recorded for this run.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-40s  %-10s  %7s  %7s  %s\n", "File", "Status", "Tables", "Sheets", "Error")
	for _, d := range docs {
		fmt.Fprintf(os.Stdout, "%-40s  %-10s  %7d  %7d  %s\n",
			d.File, d.Status, d.Tables, d.Sheets, d.Error)
	}
	return nil
}

func init() {
	reportCmd.Flags().String("history-db", "history.db", "SQLite history database path")
	reportCmd.Flags().Int64("run", 0, "show per-document outcomes for a run ID")
	reportCmd.Flags().Int("limit", 10, "maximum number of runs to list")

	rootCmd.AddCommand(reportCmd)
}
