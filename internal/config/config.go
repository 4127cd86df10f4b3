package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/KaramelBytes/invsearch/internal/inventory"
	"github.com/KaramelBytes/invsearch/internal/utils"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ListSeparator splits list values given as one string, in env vars and on
// `config set`. Column names may contain commas.
const ListSeparator = "|"

// Global configuration structure.
type Global struct {
	// Inventory schema
	ForceTextColumns []string `mapstructure:"force_text_columns" yaml:"force_text_columns"`
	SearchColumns    []string `mapstructure:"search_columns" yaml:"search_columns"`
	DisplayColumns   []string `mapstructure:"display_columns" yaml:"display_columns"`
	NullMarkers      []string `mapstructure:"null_markers" yaml:"null_markers"`

	// Output
	OutputFormat string `mapstructure:"output_format" yaml:"output_format"`

	// Logging
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
}

// Schema converts the configured column lists into an inventory.Schema.
func (g *Global) Schema() inventory.Schema {
	return inventory.Schema{
		ForceText:      append([]string(nil), g.ForceTextColumns...),
		SearchColumns:  append([]string(nil), g.SearchColumns...),
		DisplayColumns: append([]string(nil), g.DisplayColumns...),
		NullMarkers:    append([]string(nil), g.NullMarkers...),
	}
}

// Dir returns ~/.invsearch.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".invsearch"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.invsearch/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. Flags are applied by the caller.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("INVSEARCH")
	v.AutomaticEnv()

	def := inventory.DefaultSchema()
	v.SetDefault("force_text_columns", def.ForceText)
	v.SetDefault("search_columns", def.SearchColumns)
	v.SetDefault("display_columns", def.DisplayColumns)
	v.SetDefault("null_markers", def.NullMarkers)
	v.SetDefault("output_format", "table")
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "text")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Global
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(ListSeparator),
	))
	if err := v.Unmarshal(&c, hook); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
