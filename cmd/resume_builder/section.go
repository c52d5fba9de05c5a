package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Manage resume sections",
}

var sectionAddCmd = &cobra.Command{
	Use:       "add <type>",
	Short:     "Append a section of the given type",
	Long:      "Appends a section. Types: experience, education, skills, projects, custom.",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"experience", "education", "skills", "projects", "custom"},
	RunE:      runSectionAdd,
}

var sectionRemoveCmd = &cobra.Command{
	Use:   "remove <section-id>",
	Short: "Remove a section",
	Args:  cobra.ExactArgs(1),
	RunE:  runSectionRemove,
}

var sectionRenameCmd = &cobra.Command{
	Use:   "rename <section-id> <title...>",
	Short: "Change a section title",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runSectionRename,
}

var sectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sections with their item ids",
	Args:  cobra.NoArgs,
	RunE:  runSectionList,
}

func init() {
	sectionCmd.AddCommand(sectionAddCmd, sectionRemoveCmd, sectionRenameCmd, sectionListCmd)
	rootCmd.AddCommand(sectionCmd)
}

func runSectionAdd(cmd *cobra.Command, args []string) error {
	t, ok := types.ParseSectionType(args[0])
	if !ok {
		return fmt.Errorf("unknown section type %q", args[0])
	}
	section := state.store.AddSection(cmd.Context(), t)
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s section %s\n", section.Type, section.ID)
	return nil
}

func runSectionRemove(cmd *cobra.Command, args []string) error {
	if _, err := findSection(args[0]); err != nil {
		return err
	}
	state.store.RemoveSection(cmd.Context(), args[0])
	fmt.Fprintf(cmd.OutOrStdout(), "Removed section %s\n", args[0])
	return nil
}

func runSectionRename(cmd *cobra.Command, args []string) error {
	if _, err := findSection(args[0]); err != nil {
		return err
	}
	title := strings.Join(args[1:], " ")
	if err := state.store.UpdateSection(cmd.Context(), args[0], types.SectionUpdate{Title: &title}); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Renamed section %s to %q\n", args[0], title)
	return nil
}

func runSectionList(cmd *cobra.Command, _ []string) error {
	observability.NewPrinter(cmd.OutOrStdout()).PrintSections(state.store.Resume().Sections)
	return nil
}

func findSection(id string) (types.Section, error) {
	resume := state.store.Resume()
	idx := resume.FindSection(id)
	if idx < 0 {
		return types.Section{}, fmt.Errorf("section not found: %s", id)
	}
	return resume.Sections[idx], nil
}
