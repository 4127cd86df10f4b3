package cmd

import (
	"fmt"

	"github.com/KaramelBytes/invsearch/internal/inventory"
	"github.com/spf13/cobra"
)

var sheetsCmd = &cobra.Command{
	Use:   "sheets <file>",
	Short: "List the sheets of a workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := inventory.SheetNames(args[0])
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "(no sheets)")
			return nil
		}
		for i, n := range names {
			fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", i, n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sheetsCmd)
}
