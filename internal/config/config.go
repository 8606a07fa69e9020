// Package config reads the optional camfmt.toml project-defaults file. CLI
// flags always take precedence over anything set here; this package only
// supplies fallback values.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the project-wide defaults a camfmt.toml file can set.
type Config struct {
	// LZ77Strategy is "most-recent-only" or "all-candidates" (see
	// internal/lz77.Strategy.String). Empty means unset.
	LZ77Strategy string `toml:"lz77_strategy"`

	// PaletteSource names a default palette resolution hint: "png",
	// "top-left-16", "top-left-8x2", or "scan". Empty means unset.
	PaletteSource string `toml:"palette_source"`

	// OutputDir names a default output directory. It is parsed from the
	// file, but no command consults it.
	OutputDir string `toml:"output_dir"`
}

// Load reads and parses the TOML file at path. A missing file is not an
// error: it returns a zero-value Config, since every field is optional.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return cfg, nil
}
