package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/KaramelBytes/invsearch/internal/inventory"
	"github.com/KaramelBytes/invsearch/internal/logging"
	"github.com/KaramelBytes/invsearch/internal/render"
	"github.com/KaramelBytes/invsearch/internal/utils"
	"github.com/spf13/cobra"
)

var (
	srchSheet     sheetFlags
	srchIn        []string
	srchSearchAll bool
	srchShow      []string
	srchShowAll   bool
	srchFormat    string
	srchOutput    string
	srchLimit     int
)

var searchCmd = &cobra.Command{
	Use:   "search <file> [query...]",
	Short: "Find rows matching every query term",
	Long: `Search loads one sheet and prints the rows in which every whitespace-separated
query term occurs, case-insensitively, in at least one search column.

Search columns default to the configured search_columns that exist in the
sheet; display columns default to display_columns.`,
	Example: `  invsearch search inventory.xlsx sodium shelf
  invsearch search inventory.xlsx --in "Catalog #" 234 --all-columns
  invsearch search inventory.xlsx ethanol --sheet-name Archive --format csv -o hits.csv`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		query := strings.Join(args[1:], " ")
		c := currentConfig()
		schema := c.Schema()

		fmtName := srchFormat
		if fmtName == "" {
			fmtName = c.OutputFormat
		}
		format, err := render.ParseFormat(fmtName)
		if err != nil {
			return err
		}
		if srchOutput != "" && utils.SameFile(srchOutput, path) {
			return fmt.Errorf("refusing to overwrite the inventory file %s", path)
		}

		loaded, err := loadSheet(cmd, path, srchSheet.selector())
		if err != nil {
			return err
		}
		tbl := loaded.Table

		columns := srchIn
		switch {
		case srchSearchAll:
			columns = tbl.Columns()
		case len(columns) == 0:
			columns = inventory.DefaultSearchColumns(tbl, schema)
		}

		logger := logging.WithFields("file", filepath.Base(path), "sheet", loaded.Sheet)
		start := time.Now()
		res, err := inventory.Search(tbl, query, columns)
		logger.Debug("search finished",
			"terms", inventory.Terms(query),
			"columns", columns,
			"kind", inventory.KindOf(err).String(),
			"matches", res.Len(),
			"elapsed", time.Since(start))
		if err != nil {
			if inventory.IsInfo(err) {
				infof(cmd, "%s", capitalize(err.Error()))
				return nil
			}
			if inventory.KindOf(err) == inventory.KindNoSearchableColumns {
				return fmt.Errorf("%w (sheet columns: %s)", err, strings.Join(tbl.Columns(), ", "))
			}
			return err
		}
		if res.Len() == 0 {
			statusf(cmd, "No results found for '%s'.", query)
			return nil
		}

		display := inventory.DisplayColumns(res, srchShow, schema, srchShowAll)
		out := res.Select(display).Head(srchLimit)

		var buf bytes.Buffer
		if err := render.Write(&buf, out, format); err != nil {
			return err
		}
		if srchOutput != "" {
			if err := utils.SafeWriteFile(srchOutput, buf.Bytes()); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			statusf(cmd, "✓ Wrote %d rows to %s", out.Len(), srchOutput)
		} else if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
			return err
		}
		if out.Len() < res.Len() {
			statusf(cmd, "Found %d matching items (showing first %d).", res.Len(), out.Len())
		} else {
			statusf(cmd, "Found %d matching items.", res.Len())
		}
		return nil
	},
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func init() {
	rootCmd.AddCommand(searchCmd)
	srchSheet.register(searchCmd)
	searchCmd.Flags().StringArrayVar(&srchIn, "in", nil, "column to search (repeatable; default: configured search_columns)")
	searchCmd.Flags().BoolVar(&srchSearchAll, "search-all", false, "search every column of the sheet")
	searchCmd.Flags().StringArrayVar(&srchShow, "show", nil, "column to display (repeatable; default: configured display_columns)")
	searchCmd.Flags().BoolVar(&srchShowAll, "all-columns", false, "display every column")
	searchCmd.Flags().StringVar(&srchFormat, "format", "", "output format: table|csv|json|yaml|markdown (default from config)")
	searchCmd.Flags().StringVarP(&srchOutput, "output", "o", "", "write results to this file instead of stdout")
	searchCmd.Flags().IntVar(&srchLimit, "limit", 0, "show at most this many rows (0 = all)")
}
