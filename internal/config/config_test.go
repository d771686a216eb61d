package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWithHomeOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvHome, dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataDir != dir {
		t.Errorf("dataDir=%q, want %q", cfg.DataDir, dir)
	}
	if cfg.CharacterName != "Adventurer" {
		t.Errorf("characterName=%q, want Adventurer", cfg.CharacterName)
	}
	if got := cfg.DBPath(); got != filepath.Join(dir, "muscledia.db") {
		t.Errorf("dbPath=%q", got)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvHome, dir)

	content := "character_name = \"Ironheart\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.CharacterName != "Ironheart" {
		t.Errorf("characterName=%q, want Ironheart", cfg.CharacterName)
	}
	if cfg.DataDir != dir {
		t.Errorf("dataDir=%q, want %q", cfg.DataDir, dir)
	}
}

func TestLoadRejectsMalformedConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvHome, dir)

	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not [valid"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestEnsureDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	cfg := Config{DataDir: dir}

	if err := cfg.EnsureDataDir(); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.IsDir() {
		t.Fatal("data dir is not a directory")
	}
}
