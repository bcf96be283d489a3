package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"vclass/internal/log"
)

// fileConfig mirrors Config with yaml tags for writing the starter file.
type fileConfig struct {
	AutoReload bool   `yaml:"auto_reload"`
	DebugLog   string `yaml:"debug_log,omitempty"`
	UI         struct {
		ShowHotkeys   bool `yaml:"show_hotkeys"`
		ActivityLines int  `yaml:"activity_lines"`
		ToastSeconds  int  `yaml:"toast_seconds"`
	} `yaml:"ui"`
	Theme struct {
		Highlight string `yaml:"highlight,omitempty"`
		Subtle    string `yaml:"subtle,omitempty"`
		Error     string `yaml:"error,omitempty"`
		Success   string `yaml:"success,omitempty"`
	} `yaml:"theme"`
}

const configHeader = `# vclass configuration
# Colors under theme are hex values, e.g. "#10B981". Empty keeps defaults.
`

// WriteDefaultConfig creates a starter config file at configPath,
// creating parent directories as needed.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	defaults := Defaults()
	var fc fileConfig
	fc.AutoReload = defaults.AutoReload
	fc.DebugLog = defaults.DebugLog
	fc.UI.ShowHotkeys = defaults.UI.ShowHotkeys
	fc.UI.ActivityLines = defaults.UI.ActivityLines
	fc.UI.ToastSeconds = defaults.UI.ToastSeconds
	fc.Theme.Highlight = defaults.Theme.Highlight
	fc.Theme.Subtle = defaults.Theme.Subtle
	fc.Theme.Error = defaults.Theme.Error
	fc.Theme.Success = defaults.Theme.Success

	var buf bytes.Buffer
	buf.WriteString(configHeader)
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(fc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	if err := os.WriteFile(configPath, buf.Bytes(), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
