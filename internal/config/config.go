// Package config provides configuration management for the prominence
// CLI: flags override environment variables, which override an optional
// YAML config file, which overrides built-in defaults, via viper's
// layered precedence.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds all tunables for a `prominence compute` invocation.
type Config struct {
	Input     string `mapstructure:"input"`
	Output    string `mapstructure:"output"`
	Format    string `mapstructure:"format"` // "auto", "binary", or "csv"
	Top       int    `mapstructure:"top"`
	ShapeRows int    `mapstructure:"shape_rows"`
	ShapeCols int    `mapstructure:"shape_cols"`
	LogLevel  string `mapstructure:"log_level"`
}

// Load reads configuration from built-in defaults, configPath (if
// non-empty), and environment variables prefixed PROMINENCE_, applied in
// that increasing order of precedence via viper. Command-line flags are
// not read here; the CLI applies them on top of the returned Config.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
				return nil, fmt.Errorf("config: reading %s: %w", configPath, err)
			}
		}
	}

	v.SetEnvPrefix("PROMINENCE")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input", "")
	v.SetDefault("format", "auto")
	v.SetDefault("top", 100)
	v.SetDefault("output", "")
	v.SetDefault("shape_rows", 0)
	v.SetDefault("shape_cols", 0)
	v.SetDefault("log_level", "info")
}

// Validate checks cross-field constraints Load cannot enforce via
// defaults alone.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("config: input path is required")
	}
	switch c.Format {
	case "auto", "binary", "csv":
	default:
		return fmt.Errorf("config: unsupported format %q (want auto, binary, or csv)", c.Format)
	}
	if c.Top <= 0 {
		return fmt.Errorf("config: top must be > 0, got %d", c.Top)
	}
	if (c.ShapeRows > 0) != (c.ShapeCols > 0) {
		return fmt.Errorf("config: shape_rows and shape_cols must both be set or both be zero")
	}

	return nil
}
