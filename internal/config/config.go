// Package config provides configuration types, defaults, and persistence
// for vclass.
package config

// Config holds all configuration options for vclass.
type Config struct {
	// AutoReload re-applies the config file when it changes on disk.
	AutoReload bool `mapstructure:"auto_reload"`

	// DebugLog is the file the structured logger writes to when --debug
	// or VCLASS_DEBUG is set. Empty means .vclass/debug.log.
	DebugLog string `mapstructure:"debug_log"`

	UI    UIConfig    `mapstructure:"ui"`
	Theme ThemeConfig `mapstructure:"theme"`

	// Flags holds feature flags. Unknown flags are ignored; absent flags
	// read as disabled.
	Flags map[string]bool `mapstructure:"flags"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	// ShowHotkeys renders the "1)".."0)" prefixes in the action menu.
	ShowHotkeys bool `mapstructure:"show_hotkeys"`

	// ActivityLines is how many recent registry activities the footer shows.
	ActivityLines int `mapstructure:"activity_lines"`

	// ToastSeconds is how long result toasts stay visible.
	ToastSeconds int `mapstructure:"toast_seconds"`
}

// ThemeConfig holds color overrides. Values are hex colors like "#10B981";
// empty values keep the built-in adaptive defaults.
type ThemeConfig struct {
	Highlight string `mapstructure:"highlight"`
	Subtle    string `mapstructure:"subtle"`
	Error     string `mapstructure:"error"`
	Success   string `mapstructure:"success"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		AutoReload: true,
		UI: UIConfig{
			ShowHotkeys:   true,
			ActivityLines: 4,
			ToastSeconds:  3,
		},
		Theme: ThemeConfig{},
	}
}
