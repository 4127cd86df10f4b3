package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/KaramelBytes/invsearch/internal/inventory"
	"github.com/KaramelBytes/invsearch/internal/logging"
	"github.com/spf13/cobra"
)

// sheetFlags are shared by every command that reads one sheet.
type sheetFlags struct {
	name  string
	index int
}

func (f *sheetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "sheet-name", "", "sheet name to load (exact match)")
	cmd.Flags().IntVar(&f.index, "sheet-index", 0, "0-based sheet index (used if --sheet-name not provided)")
}

func (f *sheetFlags) selector() inventory.Sheet {
	if f.name != "" {
		return inventory.SheetName(f.name)
	}
	return inventory.SheetIndex(f.index)
}

func (f *sheetFlags) reset() {
	f.name = ""
	f.index = 0
}

// loadSheet loads one sheet and reports the outcome on stderr: a load summary
// on success, the available sheets on failure.
func loadSheet(cmd *cobra.Command, path string, sel inventory.Sheet) (inventory.Loaded, error) {
	logger := logging.WithFields("file", filepath.Base(path), "sheet", sel.String())
	start := time.Now()
	loaded, err := inventory.Load(path, sel, currentConfig().Schema())
	if err != nil {
		logger.Debug("load failed", "kind", inventory.KindOf(err).String(), "sheets", loaded.Sheets, "error", err)
		if len(loaded.Sheets) > 0 && inventory.KindOf(err) != inventory.KindInvalidSheet {
			statusf(cmd, "Available sheets: %v", loaded.Sheets)
		}
		return loaded, err
	}
	logger.Debug("loaded sheet",
		"resolved", loaded.Sheet,
		"rows", loaded.Table.Len(),
		"columns", len(loaded.Columns),
		"elapsed", time.Since(start))
	statusf(cmd, "Loaded %d items from sheet '%s'.", loaded.Table.Len(), loaded.Sheet)
	return loaded, nil
}

// statusf writes a status line to stderr, keeping stdout for results.
func statusf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}

// infof reports an informational outcome: no alert, exit status 0.
func infof(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.ErrOrStderr(), "ℹ "+format+"\n", args...)
}
