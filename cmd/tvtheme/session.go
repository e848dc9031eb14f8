package main

import (
	"fmt"

	"github.com/jmylchreest/tvtheme/internal/config"
	"github.com/jmylchreest/tvtheme/internal/host"
	"github.com/jmylchreest/tvtheme/internal/preview"
	"github.com/jmylchreest/tvtheme/internal/theme"
	"github.com/jmylchreest/tvtheme/internal/toolkit"
)

// session is a simulated display with the configured themes set up on it.
type session struct {
	display  *toolkit.Display
	screen   *toolkit.Object
	managers []*theme.Manager
	ids      []string
}

// newSession builds the configured themes and runs host setup: the display
// first, then every theme in parent-first order.
func newSession(c *config.Config) (*session, error) {
	d := toolkit.NewDisplay()
	scr := preview.DemoScreen(d)

	s := &session{display: d, screen: scr}
	if err := s.build(c); err != nil {
		return nil, err
	}

	app := host.NewApp(logger)
	app.Register(host.NewDisplayComponent(d, logger))
	for _, m := range s.managers {
		app.Register(m)
	}
	app.Setup()
	app.Loop()
	return s, nil
}

func (s *session) build(c *config.Config) error {
	managers, err := theme.Build(c, loader, s.display, logger)
	if err != nil {
		return fmt.Errorf("failed to build themes: %w", err)
	}
	order, err := c.ParentOrder()
	if err != nil {
		return err
	}

	s.managers = managers
	s.ids = make([]string, len(order))
	for i, tc := range order {
		s.ids[i] = tc.ID
	}
	return nil
}

// reload rereads the config file and replaces the session's managers with
// freshly set up ones.
func (s *session) reload() ([]*theme.Manager, error) {
	c, err := config.LoadConfig(configPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	loader.Reload()

	old := s.managers
	if err := s.build(c); err != nil {
		return nil, err
	}
	for _, m := range old {
		m.Close()
	}
	for _, m := range s.managers {
		m.Setup()
	}
	cfg = c
	return s.managers, nil
}

// manager returns the manager built for the theme id.
func (s *session) manager(id string) (*theme.Manager, bool) {
	for i, tid := range s.ids {
		if tid == id {
			return s.managers[i], true
		}
	}
	return nil, false
}

// leaf returns the manager previewed by default: the display's active theme
// if one was applied, otherwise the last configured theme.
func (s *session) leaf() *theme.Manager {
	if active := s.display.Theme(); active != nil {
		for _, m := range s.managers {
			if m.Theme() == active {
				return m
			}
		}
	}
	if len(s.managers) == 0 {
		return nil
	}
	return s.managers[len(s.managers)-1]
}

func (s *session) close() {
	for _, m := range s.managers {
		m.Close()
	}
}
