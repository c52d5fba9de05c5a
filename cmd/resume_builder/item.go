package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/spf13/cobra"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage items within a section",
}

var itemAddCmd = &cobra.Command{
	Use:   "add <section-id>",
	Short: "Append a blank item to a section",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemAdd,
}

var itemSetCmd = &cobra.Command{
	Use:   "set <section-id> <item-id> <field> <value...>",
	Short: "Set one field of an item",
	Long: `Sets one field of an item by its JSON name, e.g. position, startDate, current, level, technologies.
Values are coerced to the field type: "true" for booleans, "4" for levels, "Go, SQL" for lists.`,
	Args: cobra.MinimumNArgs(4),
	RunE: runItemSet,
}

var itemRemoveCmd = &cobra.Command{
	Use:   "remove <section-id> <item-id>",
	Short: "Remove an item",
	Args:  cobra.ExactArgs(2),
	RunE:  runItemRemove,
}

func init() {
	itemCmd.AddCommand(itemAddCmd, itemSetCmd, itemRemoveCmd)
	rootCmd.AddCommand(itemCmd)
}

func runItemAdd(cmd *cobra.Command, args []string) error {
	item, ok := state.store.AddItem(cmd.Context(), args[0])
	if !ok {
		return fmt.Errorf("section not found: %s", args[0])
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added item %s\n", item.ItemID())
	return nil
}

func runItemSet(cmd *cobra.Command, args []string) error {
	sectionID, itemID, field := args[0], args[1], args[2]
	value := strings.Join(args[3:], " ")

	section, err := findSection(sectionID)
	if err != nil {
		return err
	}
	if section.FindItem(itemID) < 0 {
		return fmt.Errorf("item not found: %s", itemID)
	}
	if err := state.store.UpdateItem(cmd.Context(), sectionID, itemID, field, value); err != nil {
		return err
	}

	section, err = findSection(sectionID)
	if err != nil {
		return err
	}
	if idx := section.FindItem(itemID); idx >= 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s\n", itemID, observability.ItemLabel(section.Items[idx]))
	}
	return nil
}

func runItemRemove(cmd *cobra.Command, args []string) error {
	section, err := findSection(args[0])
	if err != nil {
		return err
	}
	if section.FindItem(args[1]) < 0 {
		return fmt.Errorf("item not found: %s", args[1])
	}
	state.store.RemoveItem(cmd.Context(), args[0], args[1])
	fmt.Fprintf(cmd.OutOrStdout(), "Removed item %s\n", args[1])
	return nil
}
