package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/windymelt/company-fuzzy/pkg/provider"
	"github.com/windymelt/company-fuzzy/pkg/rank"
)

func TestInitConfigCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file should exist: %v", err)
	}
	if cfg.Pipeline.Strategy != "alphabetic" {
		t.Errorf("default strategy = %q, want alphabetic", cfg.Pipeline.Strategy)
	}
	if !cfg.Pipeline.PrefixOnTop {
		t.Errorf("prefix_on_top should default to true")
	}
}

func TestLoadConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[pipeline]
strategy = "score"
prefix_on_top = false
annotation_format = " [%s]"
trigger_symbols = ["::"]
history_sources = ["buffer"]

[[source]]
name = "lsp"
kind = "code"

[[source]]
group = ["path", "recent"]

[server]
max_limit = 10
min_input = 2
max_input = 40
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Strategy() != rank.StrategyScore {
		t.Errorf("Strategy() = %v, want score", cfg.Strategy())
	}
	if cfg.Server.MaxLimit != 10 {
		t.Errorf("max_limit = %d, want 10", cfg.Server.MaxLimit)
	}

	entries := cfg.Entries()
	if len(entries) != 2 {
		t.Fatalf("Entries() = %v, want 2 entries", entries)
	}
	if entries[0].Name != "lsp" || len(entries[1].Group) != 2 {
		t.Errorf("Entries() = %v", entries)
	}
	if cfg.Kinds()["lsp"] != provider.KindCode {
		t.Errorf("Kinds()[lsp] = %v, want KindCode", cfg.Kinds()["lsp"])
	}
}

func TestLoadConfigGarbageFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("{{{not toml"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Pipeline.Strategy != "alphabetic" {
		t.Errorf("strategy = %q, want default", cfg.Pipeline.Strategy)
	}
}

func TestUnrecognizedStrategyFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pipeline.Strategy = "frecency"
	if cfg.Strategy() != rank.StrategyNone {
		t.Errorf("Strategy() = %v, want accumulation-order fallback", cfg.Strategy())
	}
}

func TestValidateClamps(t *testing.T) {
	cfg := &Config{Server: ServerConfig{MaxLimit: 0, MinInput: -3, MaxInput: 0}}
	cfg.Validate()
	if cfg.Server.MaxLimit != 64 || cfg.Server.MinInput != 1 || cfg.Server.MaxInput != 60 {
		t.Errorf("Validate() = %+v", cfg.Server)
	}
}
