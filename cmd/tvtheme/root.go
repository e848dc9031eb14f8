// Package main provides the CLI entrypoint for tvtheme.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tvtheme/internal/config"
	"github.com/jmylchreest/tvtheme/internal/theme"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
		themesDir  string
	}
	logger *slog.Logger
	loader *theme.Loader
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tvtheme",
	Short: "Widget theme manager for embedded toolkit displays",
	Long: `tvtheme builds widget themes from declarative configuration and
previews them on a simulated display.

Each configured theme populates per-widget style slots (button, button_pressed,
slider, label, ...) and delegates everything else to a parent theme: one of the
toolkit's built-in themes or another configured theme.

Running tvtheme without a subcommand renders the preview.`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		var err error
		cfg, err = config.LoadConfig(configPath())
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		loader = theme.NewLoader(globalOpts.themesDir, logger)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPreview(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file, TOML or YAML (default: ~/.config/tvtheme/config.toml)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.themesDir, "themes-dir", "",
		"Directory with user theme presets (default: ~/.config/tvtheme/themes)")
}

// configPath returns the config file in use.
func configPath() string {
	if globalOpts.configPath != "" {
		return globalOpts.configPath
	}
	return config.ConfigPath()
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}
