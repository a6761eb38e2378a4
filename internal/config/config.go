// Package config loads optional CLI defaults from a TOML file.
//
// The file supplies fallback values for flags the user did not pass on the
// command line; explicit flags always win. A missing file is not an error —
// every field has a built-in default.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the defaults file contents.
type Config struct {
	// Scale is the default canvas growth percentage.
	Scale float64 `toml:"scale"`
	// Background is the default background spec, e.g. "colr:black".
	Background string `toml:"background"`
	// Roundness is the default corner roundness percentage.
	Roundness float64 `toml:"roundness"`
	// Shadow holds default shadow settings, applied when the user enables a
	// shadow without overriding them.
	Shadow ShadowConfig `toml:"shadow"`
}

// ShadowConfig holds the shadow defaults.
type ShadowConfig struct {
	Color   string  `toml:"color"`
	Radius  float64 `toml:"radius"`
	Opacity float64 `toml:"opacity"`
}

// Default returns the built-in defaults used when no config file exists.
func Default() Config {
	return Config{
		Scale:      110,
		Background: "colr:black",
		Roundness:  0,
		Shadow: ShadowConfig{
			Color:   "black",
			Radius:  25,
			Opacity: 1,
		},
	}
}

// DefaultPath returns the conventional config location,
// $XDG_CONFIG_HOME/fweh/config.toml, or "" if no config directory exists.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "fweh", "config.toml")
}

// Load reads the config at path, layering it over the built-in defaults.
// An empty path falls back to DefaultPath. A missing file returns the
// defaults; a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}
