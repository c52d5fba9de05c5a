package main

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the resume as HTML or PDF",
	Long:  "Writes resume-<template>-<timestamp>.<format> into the export directory. PDF export needs a local Chrome or Chromium.",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var (
	exportFormat   string
	exportTemplate string
	exportOutDir   string
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Export format: html or pdf (default from config)")
	exportCmd.Flags().StringVarP(&exportTemplate, "template", "t", "", "Template id (default: the selected template)")
	exportCmd.Flags().StringVarP(&exportOutDir, "out-dir", "o", "", "Output directory (default from config)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	format := exportFormat
	if format == "" {
		format = state.cfg.ExportFormat
	}
	dir := exportOutDir
	if dir == "" {
		dir = state.cfg.ExportDir
	}
	templateID := exportTemplate
	if templateID == "" {
		templateID = state.store.SelectedTemplate().ID
	}

	exp, err := export.New(format, dir, state.cfg.ChromePath)
	if err != nil {
		return err
	}

	path := export.NewDispatcher(exp, state.logger, state.metrics).Dispatch(cmd.Context(), state.store.Resume(), templateID)
	if path == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "Export failed; run with --verbose for details")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", path)
	return nil
}
