package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vclass/internal/app"
	"vclass/internal/classroom"
	"vclass/internal/config"
	"vclass/internal/log"
	"vclass/internal/ui/styles"
)

const defaultConfigPath = ".vclass/config.yaml"

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version  = "dev"
	cfgFile  string
	debugLog bool
	cfg      config.Config
)

var rootCmd = &cobra.Command{
	Use:     "vclass",
	Short:   "A terminal ui for managing virtual classrooms",
	Long:    `A terminal user interface for managing classrooms, students, and assignments. All data lives in memory for the duration of the session.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/vclass/config.yaml)")
	rootCmd.Flags().BoolVar(&debugLog, "debug", false,
		"write a debug log (default: .vclass/debug.log)")
	rootCmd.Flags().Bool("no-auto-reload", false,
		"disable automatic config reload when the file changes")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("auto_reload", defaults.AutoReload)
	viper.SetDefault("ui.show_hotkeys", defaults.UI.ShowHotkeys)
	viper.SetDefault("ui.activity_lines", defaults.UI.ActivityLines)
	viper.SetDefault("ui.toast_seconds", defaults.UI.ToastSeconds)
	viper.SetDefault("theme.highlight", defaults.Theme.Highlight)
	viper.SetDefault("theme.subtle", defaults.Theme.Subtle)
	viper.SetDefault("theme.error", defaults.Theme.Error)
	viper.SetDefault("theme.success", defaults.Theme.Success)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .vclass/config.yaml (current directory)
		// 2. ~/.config/vclass/config.yaml (user config)
		if _, err := os.Stat(defaultConfigPath); err == nil {
			viper.SetConfigFile(defaultConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "vclass"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .vclass/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if writeErr := config.WriteDefaultConfig(defaultConfigPath); writeErr == nil {
				viper.SetConfigFile(defaultConfigPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// reloadConfig re-reads the active config file. The app calls this when the
// file watcher reports a change.
func reloadConfig() (config.Config, error) {
	if err := viper.ReadInConfig(); err != nil {
		return config.Config{}, fmt.Errorf("re-reading config: %w", err)
	}
	var next config.Config
	if err := viper.Unmarshal(&next); err != nil {
		return config.Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	return next, nil
}

func runApp(cmd *cobra.Command, args []string) error {
	if debugLog || os.Getenv("VCLASS_DEBUG") != "" {
		logPath := cfg.DebugLog
		if logPath == "" {
			logPath = ".vclass/debug.log"
		}
		cleanup, err := log.InitWithTeaLog(logPath, "vclass")
		if err != nil {
			return fmt.Errorf("initializing debug log: %w", err)
		}
		defer cleanup()
	}

	if noAutoReload, _ := cmd.Flags().GetBool("no-auto-reload"); noAutoReload {
		cfg.AutoReload = false
	}

	styles.ApplyTheme(cfg.Theme)

	configFilePath := viper.ConfigFileUsed()

	registry := classroom.NewRegistry()
	defer registry.Close()

	model := app.New(registry, cfg, configFilePath, reloadConfig)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()

	// Clean up watcher resources
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
