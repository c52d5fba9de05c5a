package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <target> <prompt...>",
	Short: "Generate text for the summary or a section's first item",
	Long: `Generates text from a prompt and writes it into the target.
The target is "personal-info" for the summary, or a section id for the description of its first item.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	target := args[0]
	prompt := strings.Join(args[1:], " ")

	kind := target
	if target != types.PersonalInfoID {
		section, err := findSection(target)
		if err != nil {
			return err
		}
		kind = string(section.Type)
	}

	if strings.TrimSpace(prompt) == "" {
		if hint := prompts.Hint(kind); hint != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Nothing to generate. Try a prompt like: %s\n", strings.TrimPrefix(hint, "e.g., "))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing to generate: the prompt is empty")
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Generating...")
	if err := state.store.GenerateContent(cmd.Context(), target, prompt); err != nil {
		return err
	}

	resume := state.store.Resume()
	if target == types.PersonalInfoID {
		fmt.Fprintf(cmd.OutOrStdout(), "Summary: %s\n", resume.PersonalInfo.Summary)
		return nil
	}
	section := resume.Sections[resume.FindSection(target)]
	if len(section.Items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Section has no items; nothing was written")
		return nil
	}
	if text, ok := description(section.Items[0]); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", section.Items[0].ItemID(), text)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s items have no description; nothing was written\n", section.Type)
	}
	return nil
}

func description(item types.SectionItem) (string, bool) {
	switch it := item.(type) {
	case *types.ExperienceItem:
		return it.Description, true
	case *types.EducationItem:
		return it.Description, true
	case *types.ProjectItem:
		return it.Description, true
	case *types.CustomItem:
		return it.Content, true
	}
	return "", false
}
