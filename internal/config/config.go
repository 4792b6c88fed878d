package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Library    string `koanf:"library"`    // path to the beets library database
	Pretty     bool   `koanf:"pretty"`     // indent the JSON output
	Attributes bool   `koanf:"attributes"` // include flexible attributes in the dump
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in library path
	if cfg.Library != "" {
		cfg.Library = expandPath(cfg.Library)
	} else {
		cfg.Library = DefaultLibraryPath()
	}

	return cfg, nil
}

// DefaultLibraryPath is where beets itself keeps the library database when
// not configured otherwise.
func DefaultLibraryPath() string {
	return filepath.Join(xdg.ConfigHome, "beets", "library.db")
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/beetdump/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "beetdump", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
