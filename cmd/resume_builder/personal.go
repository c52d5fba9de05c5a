package main

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var personalCmd = &cobra.Command{
	Use:   "personal",
	Short: "Edit the personal info header",
}

var personalSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set personal info fields",
	Long:  "Sets only the fields whose flags are given; pass an empty value to clear a field.",
	Args:  cobra.NoArgs,
	RunE:  runPersonalSet,
}

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Manage personal links",
}

var linkAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a link",
	Args:  cobra.NoArgs,
	RunE:  runLinkAdd,
}

var linkSetCmd = &cobra.Command{
	Use:   "set <link-id> <label|url> <value>",
	Short: "Set a link field",
	Args:  cobra.ExactArgs(3),
	RunE:  runLinkSet,
}

var linkRemoveCmd = &cobra.Command{
	Use:   "remove <link-id>",
	Short: "Remove a link",
	Args:  cobra.ExactArgs(1),
	RunE:  runLinkRemove,
}

// personalFlags maps flag names onto PersonalInfoUpdate fields
var personalFlags = []struct {
	name  string
	usage string
	field func(*types.PersonalInfoUpdate) **string
}{
	{"first-name", "First name", func(u *types.PersonalInfoUpdate) **string { return &u.FirstName }},
	{"last-name", "Last name", func(u *types.PersonalInfoUpdate) **string { return &u.LastName }},
	{"email", "Email address", func(u *types.PersonalInfoUpdate) **string { return &u.Email }},
	{"phone", "Phone number", func(u *types.PersonalInfoUpdate) **string { return &u.Phone }},
	{"location", "City, region or country", func(u *types.PersonalInfoUpdate) **string { return &u.Location }},
	{"title", "Professional title", func(u *types.PersonalInfoUpdate) **string { return &u.Title }},
	{"summary", "Summary paragraph", func(u *types.PersonalInfoUpdate) **string { return &u.Summary }},
}

var (
	linkLabel string
	linkURL   string
)

func init() {
	for _, f := range personalFlags {
		personalSetCmd.Flags().String(f.name, "", f.usage)
	}
	personalCmd.AddCommand(personalSetCmd)

	linkAddCmd.Flags().StringVar(&linkLabel, "label", "", "Link label")
	linkAddCmd.Flags().StringVar(&linkURL, "url", "", "Link URL")
	linkCmd.AddCommand(linkAddCmd, linkSetCmd, linkRemoveCmd)
	personalCmd.AddCommand(linkCmd)

	rootCmd.AddCommand(personalCmd)
}

func runPersonalSet(cmd *cobra.Command, _ []string) error {
	var u types.PersonalInfoUpdate
	for _, f := range personalFlags {
		if !cmd.Flags().Changed(f.name) {
			continue
		}
		value, err := cmd.Flags().GetString(f.name)
		if err != nil {
			return err
		}
		*f.field(&u) = types.StringPtr(value)
	}
	if u.IsEmpty() {
		return fmt.Errorf("no fields given; see --help")
	}

	state.store.UpdatePersonalInfo(cmd.Context(), u)
	observability.NewPrinter(cmd.OutOrStdout()).PrintPersonalInfo(state.store.Resume().PersonalInfo)
	return nil
}

func runLinkAdd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	link := state.store.AddLink(ctx)
	if linkLabel != "" {
		state.store.UpdateLink(ctx, link.ID, editor.LinkLabel, linkLabel)
	}
	if linkURL != "" {
		state.store.UpdateLink(ctx, link.ID, editor.LinkURL, linkURL)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added link %s\n", link.ID)
	return nil
}

func runLinkSet(cmd *cobra.Command, args []string) error {
	id, field, value := args[0], editor.LinkField(args[1]), args[2]
	if field != editor.LinkLabel && field != editor.LinkURL {
		return fmt.Errorf("unknown link field %q: want label or url", args[1])
	}
	if !hasLink(id) {
		return fmt.Errorf("link not found: %s", id)
	}
	state.store.UpdateLink(cmd.Context(), id, field, value)
	fmt.Fprintf(cmd.OutOrStdout(), "Updated link %s\n", id)
	return nil
}

func runLinkRemove(cmd *cobra.Command, args []string) error {
	if !hasLink(args[0]) {
		return fmt.Errorf("link not found: %s", args[0])
	}
	state.store.RemoveLink(cmd.Context(), args[0])
	fmt.Fprintf(cmd.OutOrStdout(), "Removed link %s\n", args[0])
	return nil
}

func hasLink(id string) bool {
	for _, l := range state.store.Resume().PersonalInfo.Links {
		if l.ID == id {
			return true
		}
	}
	return false
}
