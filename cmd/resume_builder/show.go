package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current resume",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

var showJSON bool

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print the document as JSON")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	resume := state.store.Resume()
	if showJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(resume)
	}

	p := observability.NewPrinter(cmd.OutOrStdout())
	p.PrintPersonalInfo(resume.PersonalInfo)
	p.PrintSections(resume.Sections)
	fmt.Fprintf(cmd.OutOrStdout(), "Template: %s\n", state.store.SelectedTemplate().Name)
	return nil
}
