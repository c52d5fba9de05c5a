package main

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/catalog"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "List and select visual templates",
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates, marking the selected one",
	Args:  cobra.NoArgs,
	RunE:  runTemplateList,
}

var templateSelectCmd = &cobra.Command{
	Use:   "select <template-id>",
	Short: "Select the template used for preview and export",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateSelect,
}

func init() {
	templateCmd.AddCommand(templateListCmd, templateSelectCmd)
	rootCmd.AddCommand(templateCmd)
}

func runTemplateList(cmd *cobra.Command, _ []string) error {
	observability.NewPrinter(cmd.OutOrStdout()).PrintTemplates(catalog.List(), state.store.SelectedTemplate().ID)
	return nil
}

func runTemplateSelect(cmd *cobra.Command, args []string) error {
	if !state.store.SelectTemplate(cmd.Context(), args[0]) {
		return fmt.Errorf("unknown template %q", args[0])
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Selected template: %s\n", state.store.SelectedTemplate().Name)
	return nil
}
