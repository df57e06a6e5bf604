package main

import (
	"testing"

	"github.com/etchlab/etch/internal/config"
)

func TestEffectiveLogSettings(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Logger.LogLevel = "debug"
	cfg.Logger.LogFilePath = "/var/log/etch.log"

	tests := []struct {
		name      string
		explicit  map[string]bool
		wantLevel string
		wantFile  string
	}{
		{"config fills flag defaults", map[string]bool{}, "debug", "/var/log/etch.log"},
		{"explicit flags win", map[string]bool{"loglevel": true, "logfile": true}, "info", "etch.log"},
		{"mixed", map[string]bool{"loglevel": true}, "info", "/var/log/etch.log"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, file := effectiveLogSettings(cfg, tt.explicit, "info", "etch.log")
			if level != tt.wantLevel || file != tt.wantFile {
				t.Errorf("effectiveLogSettings() = (%q, %q), want (%q, %q)",
					level, file, tt.wantLevel, tt.wantFile)
			}
		})
	}
}

func TestEffectiveLogSettingsEmptyConfig(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Logger.LogLevel = ""
	level, file := effectiveLogSettings(cfg, map[string]bool{}, "warn", "etch.log")
	if level != "warn" || file != "etch.log" {
		t.Errorf("effectiveLogSettings() = (%q, %q), want flag defaults kept", level, file)
	}
}
