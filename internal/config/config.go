// Package config loads settings for the panel command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Output formats understood by the report package.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// EnvPrefix prefixes environment overrides, e.g. PANEL_LOG_LEVEL.
const EnvPrefix = "PANEL"

type Config struct {
	Format        string        `mapstructure:"format"`
	LogLevel      string        `mapstructure:"log_level"`
	LogFile       string        `mapstructure:"log_file"`
	Color         bool          `mapstructure:"color"`
	Theme         string        `mapstructure:"theme"`
	WatchDebounce time.Duration `mapstructure:"watch_debounce"`
}

func DefaultConfig() Config {
	return Config{
		Format:        FormatText,
		LogLevel:      "info",
		Color:         true,
		Theme:         "mocha",
		WatchDebounce: 100 * time.Millisecond,
	}
}

// SetDefaults registers every key with its default so environment
// overrides are seen by Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("format", d.Format)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("color", d.Color)
	v.SetDefault("theme", d.Theme)
	v.SetDefault("watch_debounce", d.WatchDebounce)
}

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"format":    "format",
	"log-level": "log_level",
	"log-file":  "log_file",
	"theme":     "theme",
}

// Load reads the config from the default location.
func Load(flags *pflag.FlagSet) (Config, error) {
	return LoadFrom(Path(), flags)
}

// LoadFrom reads the config at configPath ("~" is expanded), then applies
// PANEL_* environment variables and any flags set in flags. A missing file
// yields the defaults; fields absent from the file keep their defaults.
func LoadFrom(configPath string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return DefaultConfig(), fmt.Errorf("binding --%s: %w", name, err)
				}
			}
		}
	}

	if expanded, err := homedir.Expand(configPath); err == nil {
		configPath = expanded
	}
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), fmt.Errorf("parsing %s: %w", configPath, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("decoding %s: %w", configPath, err)
	}

	// --no-color inverts a config key, so it cannot be bound directly.
	if flags != nil && flags.Changed("no-color") {
		if off, err := flags.GetBool("no-color"); err == nil && off {
			cfg.Color = false
		}
	}

	return cfg, cfg.Validate()
}

// Validate checks values that have a fixed set of choices.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", c.Format)
	}
	switch c.Theme {
	case "latte", "frappe", "macchiato", "mocha":
	default:
		return fmt.Errorf("unknown theme %q (want latte, frappe, macchiato or mocha)", c.Theme)
	}
	if c.WatchDebounce < 0 {
		return fmt.Errorf("watch_debounce must not be negative")
	}
	return nil
}

// Path returns the default config file location.
func Path() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "panel", "config.yaml")
	}

	home, err := homedir.Dir()
	if err != nil {
		return filepath.Join(".config", "panel", "config.yaml")
	}

	return filepath.Join(home, ".config", "panel", "config.yaml")
}
