package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the document and restore the starting resume",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

var resetYes bool

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Confirm discarding the current document")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, _ []string) error {
	if !resetYes {
		return fmt.Errorf("reset discards every edit; pass --yes to confirm")
	}
	state.store.Reset(cmd.Context())
	fmt.Fprintln(cmd.OutOrStdout(), "Resume reset to defaults")
	return nil
}
