package cmd

import (
	"fmt"
	"strings"

	cfgpkg "github.com/KaramelBytes/invsearch/internal/config"
	"github.com/KaramelBytes/invsearch/internal/logging"
	"github.com/KaramelBytes/invsearch/internal/render"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set invsearch configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := currentConfig()
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "force_text_columns: %s\n", quoteList(c.ForceTextColumns))
		fmt.Fprintf(w, "search_columns: %s\n", quoteList(c.SearchColumns))
		fmt.Fprintf(w, "display_columns: %s\n", quoteList(c.DisplayColumns))
		fmt.Fprintf(w, "null_markers: %s\n", quoteList(c.NullMarkers))
		fmt.Fprintf(w, "output_format: %s\n", c.OutputFormat)
		fmt.Fprintf(w, "log_level: %s\n", c.LogLevel)
		fmt.Fprintf(w, "log_format: %s\n", c.LogFormat)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Long: `Set a config value and save to disk. List keys (force_text_columns,
search_columns, display_columns, null_markers) take a '|'-separated value,
since column names may contain commas; an empty value clears the list.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		c, err := cfgpkg.Load(cfgFile)
		if err != nil {
			return err
		}
		switch key {
		case "force_text_columns":
			c.ForceTextColumns = splitList(val)
		case "search_columns":
			c.SearchColumns = splitList(val)
		case "display_columns":
			c.DisplayColumns = splitList(val)
		case "null_markers":
			c.NullMarkers = splitList(val)
		case "output_format":
			f, err := render.ParseFormat(val)
			if err != nil {
				return err
			}
			c.OutputFormat = string(f)
		case "log_level":
			switch strings.ToLower(val) {
			case "debug", "info", "warn", "warning", "error":
				c.LogLevel = strings.ToLower(logging.ParseLevel(val).String())
			default:
				return fmt.Errorf("invalid log_level: %s (use debug|info|warn|error)", val)
			}
		case "log_format":
			switch strings.ToLower(val) {
			case "text", "json":
				c.LogFormat = strings.ToLower(val)
			default:
				return fmt.Errorf("invalid log_format: %s (use text or json)", val)
			}
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		cfg = c
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, cfgpkg.ListSeparator) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func quoteList(list []string) string {
	q := make([]string, len(list))
	for i, s := range list {
		q[i] = fmt.Sprintf("%q", s)
	}
	return "[" + strings.Join(q, ", ") + "]"
}
