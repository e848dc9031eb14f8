package host

import (
	"log/slog"

	"github.com/jmylchreest/tvtheme/internal/toolkit"
)

// DisplayComponent brings the toolkit display up. Themes are set up at a
// later priority so they always find a ready display.
type DisplayComponent struct {
	display *toolkit.Display
	logger  *slog.Logger
}

// NewDisplayComponent wraps a toolkit display.
func NewDisplayComponent(d *toolkit.Display, logger *slog.Logger) *DisplayComponent {
	if logger == nil {
		logger = slog.Default()
	}
	return &DisplayComponent{display: d, logger: logger}
}

func (c *DisplayComponent) Setup() {
	c.display.ActiveScreen()
	c.display.SetReady(true)
	c.logger.Debug("display ready")
}

func (c *DisplayComponent) Loop() {}

func (c *DisplayComponent) SetupPriority() float64 { return PriorityProcessor }

// Display returns the wrapped display.
func (c *DisplayComponent) Display() *toolkit.Display { return c.display }
