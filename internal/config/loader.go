package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

var configFileUsed string

// findConfigFile finds the config file to use.
// Priority: explicit path > calcplot.yaml > calcplot.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"calcplot.yaml", "calcplot.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// ConfigFileUsed returns the config file path resolved by the last Load.
func ConfigFileUsed() string {
	return configFileUsed
}

// Load loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"large":   float64(DefaultLarge),
		"width":   0,
		"height":  0,
		"xmin":    float64(DefaultMin),
		"xmax":    float64(DefaultMax),
		"ymin":    float64(DefaultMin),
		"ymax":    float64(DefaultMax),
		"glyphs":  DefaultGlyphs,
		"verbose": false,
		"output":  DefaultOutput,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Environment variables: CALCPLOT_XMIN -> xmin
	if err := k.Load(env.Provider("CALCPLOT_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "CALCPLOT_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags (highest priority)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only flags that were explicitly set override lower layers.
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	currentConfig = &cfg
	return &cfg, nil
}

// Validate rejects settings the engine or grapher cannot work under.
// Interval ordering is deliberately not checked: the grapher tolerates
// any window, and only a zero-width one is fatal, at render time.
func (c *Config) Validate() error {
	if c.Large < 10 {
		return fmt.Errorf("precision knob 'large' must be at least 10, got %g", c.Large)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("viewport dimensions cannot be negative, got %dx%d", c.Width, c.Height)
	}
	if c.Glyphs == "" {
		return fmt.Errorf("glyph cycle cannot be empty")
	}
	return nil
}
