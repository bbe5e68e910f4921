// Package config loads the optional LifeOS configuration file.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"github.com/lifeos-app/lifeos/internal/model"
)

// Config holds user-facing settings read from the TOML config file.
type Config struct {
	// DataDir is where the preference database lives. Empty uses the
	// XDG default.
	DataDir string `toml:"data_dir"`
	// DefaultUser is the profile selected when nothing is persisted yet.
	DefaultUser string `toml:"default_user"`
	// DefaultTheme is "light" or "dark".
	DefaultTheme string `toml:"default_theme"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DefaultTheme: string(model.ThemeLight),
	}
}

// DefaultPath returns the config file path following XDG spec.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "lifeos", "config.toml")
}

// Load reads the config file at path, or the default path when empty.
// A missing file returns the defaults; a malformed file is an error.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.DefaultTheme == "" {
		cfg.DefaultTheme = string(model.ThemeLight)
	}
	return cfg, nil
}
