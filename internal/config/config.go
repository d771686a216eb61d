package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvHome overrides the data directory (and config location).
const EnvHome = "MUSCLEDIA_HOME"

type Config struct {
	DataDir       string `toml:"data_dir"`
	CharacterName string `toml:"character_name"`
}

func DefaultConfig() Config {
	return Config{CharacterName: "Adventurer"}
}

// Load resolves the data directory (MUSCLEDIA_HOME, else ~/.muscledia)
// and merges config.toml from it over the defaults. A missing file is
// not an error.
func Load() (Config, error) {
	cfg := DefaultConfig()

	dir := os.Getenv(EnvHome)
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("get home dir: %w", err)
		}
		dir = filepath.Join(home, ".muscledia")
	}
	cfg.DataDir = dir

	path := filepath.Join(dir, "config.toml")
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if cfg.DataDir == "" {
		cfg.DataDir = dir
	}
	return cfg, nil
}

// DBPath is the SQLite database location inside the data directory.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "muscledia.db")
}

// EnsureDataDir creates the data directory if it does not exist.
func (c Config) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return nil
}
