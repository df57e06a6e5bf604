// Package config loads the demo binary's TOML configuration.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/etchlab/etch/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Editor EditorConfig  `toml:"editor"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	Tab              string `toml:"tab"`
	MaxHistory       int    `toml:"max_history"`
	HighlightDelayMS int    `toml:"highlight_delay_ms"`
	RecordDelayMS    int    `toml:"record_delay_ms"`
	SystemClipboard  bool   `toml:"system_clipboard"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			Tab:              DefaultTab,
			MaxHistory:       DefaultMaxHistory,
			HighlightDelayMS: DefaultHighlightDelay,
			RecordDelayMS:    DefaultRecordDelay,
			SystemClipboard:  SystemClipboard,
		},
	}
}

// Load returns the defaults overlaid with the TOML file at filePath. A
// missing file is not an error; a malformed one is.
func Load(filePath string) (*Config, error) {
	cfg := NewDefaultConfig()
	if filePath == "" {
		return cfg, nil
	}
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		logger.Debugf("config: file not found: %s", filePath)
		return cfg, nil
	} else if err != nil {
		return cfg, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("config: unrecognized keys in '%s': %v", filePath, metadata.Undecoded())
	}
	cfg.validate()
	return cfg, nil
}

// validate resets invalid values to defaults.
func (c *Config) validate() {
	if c.Editor.Tab == "" {
		c.Editor.Tab = DefaultTab
	}
	if c.Editor.MaxHistory <= 0 {
		c.Editor.MaxHistory = DefaultMaxHistory
	}
	if c.Editor.HighlightDelayMS <= 0 {
		c.Editor.HighlightDelayMS = DefaultHighlightDelay
	}
	if c.Editor.RecordDelayMS <= 0 {
		c.Editor.RecordDelayMS = DefaultRecordDelay
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = "info"
	}
}
