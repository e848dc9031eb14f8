package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tvtheme/internal/config"
	"github.com/jmylchreest/tvtheme/internal/preview"
	"github.com/jmylchreest/tvtheme/internal/theme"
	"github.com/jmylchreest/tvtheme/internal/toolkit"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the demo screen with a theme",
	Long: `Build the configured themes and render a demo screen holding one
widget of every class.

By default the theme applied to the display is previewed; if no theme applies
itself the last configured theme is used. With --watch the config file and the
user themes directory are watched and the preview is rendered again on change.`,
	Example: `  tvtheme preview
  tvtheme preview --theme ocean --state pressed
  tvtheme preview --watch
  tvtheme preview --dump --verbose`,
	RunE: runPreview,
}

var previewOpts struct {
	theme string
	state string
	watch bool
	dump  bool
	width int
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&previewOpts.theme, "theme", "t", "",
		"Theme id to preview")
	previewCmd.Flags().StringVarP(&previewOpts.state, "state", "s", "",
		"Widget state to render, e.g. pressed|checked (default from config)")
	previewCmd.Flags().BoolVarP(&previewOpts.watch, "watch", "w", false,
		"Render again when the config or a user preset changes")
	previewCmd.Flags().BoolVar(&previewOpts.dump, "dump", false,
		"Log every theme's state (use with --verbose)")
	previewCmd.Flags().IntVar(&previewOpts.width, "width", 0,
		"Preview width in cells (default from config)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	s, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer s.close()

	if err := renderPreview(os.Stdout, s); err != nil {
		return err
	}
	if !previewOpts.watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := theme.NewWatcher(logger, configPath())
	w.WatchPresetDir(loader.ThemesDir())
	w.SetDebounce(cfg.Watch.Debounce.Duration())
	w.SetChangeCallback(func(path string) {
		if _, err := s.reload(); err != nil {
			logger.Error("failed to reload themes", "path", path, "error", err)
			return
		}
		if err := renderPreview(os.Stdout, s); err != nil {
			logger.Error("failed to render preview", "error", err)
		}
	})
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	fmt.Fprintln(os.Stderr, "watching for changes, press ctrl+c to exit")
	<-ctx.Done()
	return nil
}

// renderPreview restyles the session's screen with the selected theme and
// prints it to out.
func renderPreview(out io.Writer, s *session) error {
	mgr := s.leaf()
	if previewOpts.theme != "" {
		m, ok := s.manager(previewOpts.theme)
		if !ok {
			return fmt.Errorf("theme %q is not configured", previewOpts.theme)
		}
		mgr = m
	}

	stateName := previewOpts.state
	if stateName == "" {
		stateName = cfg.Display.State
	}
	state, err := toolkit.ParseState(stateName)
	if err != nil {
		return fmt.Errorf("invalid state: %w", err)
	}

	var th *toolkit.Theme
	if mgr != nil {
		th = mgr.Theme()
	}
	preview.Restyle(s.screen, th)
	preview.SetState(s.screen, state)

	if previewOpts.dump {
		for _, m := range s.managers {
			m.Dump()
		}
	}

	width := previewOpts.width
	if width == 0 {
		width = cfg.Display.Width
	}
	r := preview.NewRenderer(width)

	var b strings.Builder
	for _, m := range s.managers {
		marker := "  "
		if m == mgr {
			marker = "* "
		}
		fmt.Fprintf(&b, "%s%s\n", marker, preview.Chain(m.Theme()))
	}
	b.WriteString("\n")
	b.WriteString(r.Tree(s.screen, nil))

	_, err = io.WriteString(out, b.String())
	return err
}

// previewState reports the configured preview state, for the TUI.
func previewState(c *config.Config) toolkit.State {
	state, err := toolkit.ParseState(c.Display.State)
	if err != nil {
		logger.Warn("invalid display state, ignoring", "state", c.Display.State, "error", err)
		return 0
	}
	return state
}
