// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the tableminer CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the tableminer CLI.
var rootCmd = &cobra.Command{
	Use:   "tableminer",
	Short: "Extract tables from text-based PDFs into spreadsheet workbooks",
	Long: `tableminer recovers tabular data from text-based PDF documents. PDFs carry
no explicit table structure, so tableminer infers column boundaries from
runs of whitespace and groups consecutive same-width lines into tables,
writing each detected table to its own sheet of an xlsx workbook.

Use the extract subcommand to process a single PDF or a whole input
directory, and report to inspect recorded batch runs.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./tableminer.yaml or ~/.config/tableminer/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tableminer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "tableminer"))
		}
	}

	viper.SetEnvPrefix("TABLEMINER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
