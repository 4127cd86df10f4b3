package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/KaramelBytes/invsearch/internal/inventory"
	"github.com/spf13/cobra"
)

var colsSheet sheetFlags

var columnsCmd = &cobra.Command{
	Use:   "columns <file>",
	Short: "List the columns of a sheet and their default roles",
	Long: `Columns prints every column of the selected sheet. Markers show which
columns are searched and displayed by default and which are loaded as text.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadSheet(cmd, args[0], colsSheet.selector())
		if err != nil {
			return err
		}
		if len(loaded.Columns) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "(no columns)")
			return nil
		}
		schema := currentConfig().Schema()
		search := inventory.DefaultSearchColumns(loaded.Table, schema)
		display := inventory.DisplayColumns(loaded.Table, nil, schema, false)
		for _, c := range loaded.Columns {
			var roles []string
			if slices.Contains(search, c) {
				roles = append(roles, "search")
			}
			if slices.Contains(display, c) {
				roles = append(roles, "display")
			}
			if schema.IsForceText(c) {
				roles = append(roles, "text")
			}
			if len(roles) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s [%s]\n", c, strings.Join(roles, ", "))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", c)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(columnsCmd)
	colsSheet.register(columnsCmd)
}
