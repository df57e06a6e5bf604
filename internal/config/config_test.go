package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Editor.Tab != DefaultTab || cfg.Editor.MaxHistory != DefaultMaxHistory {
		t.Errorf("defaults not applied: %+v", cfg.Editor)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "etch.toml")
	data := `
[editor]
tab = "  "
max_history = 50

[logger]
log_level = "debug"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Editor.Tab != "  " {
		t.Errorf("tab = %q, want two spaces", cfg.Editor.Tab)
	}
	if cfg.Editor.MaxHistory != 50 {
		t.Errorf("max_history = %d, want 50", cfg.Editor.MaxHistory)
	}
	// Keys the file omits keep their defaults.
	if cfg.Editor.HighlightDelayMS != DefaultHighlightDelay {
		t.Errorf("highlight_delay_ms = %d, want default %d",
			cfg.Editor.HighlightDelayMS, DefaultHighlightDelay)
	}
	if cfg.Logger.LogLevel != "debug" {
		t.Errorf("log_level = %q, want %q", cfg.Logger.LogLevel, "debug")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[editor\ntab ="), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() on malformed file returned nil error")
	}
}

func TestValidateResetsBadValues(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Editor.Tab = ""
	cfg.Editor.MaxHistory = -1
	cfg.validate()
	if cfg.Editor.Tab != DefaultTab || cfg.Editor.MaxHistory != DefaultMaxHistory {
		t.Errorf("validate left bad values: %+v", cfg.Editor)
	}
}
