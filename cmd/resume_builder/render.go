package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the resume as a standalone HTML page",
	Long:  "Renders with the selected template, or --template, to --out or stdout. --all renders every template into --out-dir. --outline prints the rendered section order instead of HTML.",
	Args:  cobra.NoArgs,
	RunE:  runRender,
}

var (
	renderTemplate string
	renderOut      string
	renderAll      bool
	renderOutDir   string
	renderOutline  bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Template id (default: the selected template)")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output HTML file (default: stdout)")
	renderCmd.Flags().BoolVar(&renderAll, "all", false, "Render every template")
	renderCmd.Flags().StringVar(&renderOutDir, "out-dir", ".", "Output directory for --all")
	renderCmd.Flags().BoolVar(&renderOutline, "outline", false, "Print the rendered section kinds in order")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	resume := state.store.Resume()

	if renderAll {
		pages, err := rendering.RenderAll(cmd.Context(), resume)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(renderOutDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		ids := make([]string, 0, len(pages))
		for id := range pages {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			path := filepath.Join(renderOutDir, "resume-"+id+".html")
			if err := os.WriteFile(path, pages[id], 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			state.metrics.Rendered(id)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		}
		return nil
	}

	p := rendering.For(state.store.SelectedTemplate().ID)
	if renderTemplate != "" {
		var ok bool
		if p, ok = rendering.Lookup(renderTemplate); !ok {
			return fmt.Errorf("unknown template: %s", renderTemplate)
		}
	}
	page, err := rendering.RenderHTML(p, resume)
	if err != nil {
		return err
	}
	state.metrics.Rendered(p.TemplateID())

	if renderOutline {
		kinds, err := rendering.OutlineHTML(page)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", p.TemplateID(), strings.Join(kinds, ", "))
		return nil
	}

	if renderOut == "" {
		_, err := cmd.OutOrStdout().Write(page)
		return err
	}
	if err := os.WriteFile(renderOut, page, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s)\n", renderOut, p.TemplateID())
	return nil
}
