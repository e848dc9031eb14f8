package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tvtheme/internal/preview"
	"github.com/jmylchreest/tvtheme/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the themed demo screen interactively",
	Long: `Open an interactive preview of the demo screen.

Move between widgets, toggle their states and cycle through the configured
themes. Press r to reload the config file and ? for help.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	s, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer s.close()

	preview.SetState(s.screen, previewState(cfg))

	return tui.Run(tui.Options{
		Display:  s.display,
		Screen:   s.screen,
		Managers: s.managers,
		Reload:   s.reload,
		Logger:   logger,
	})
}
