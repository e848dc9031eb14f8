// Package host runs components through a setup/loop lifecycle ordered by
// setup priority.
package host

import (
	"log/slog"
	"sort"
)

// Setup priorities. Components with a higher priority are set up first.
const (
	PriorityBus              = 1000.0
	PriorityIO               = 900.0
	PriorityHardware         = 800.0
	PriorityData             = 600.0
	PriorityProcessor        = 400.0
	PriorityBluetooth        = 350.0
	PriorityAfterBluetooth   = 300.0
	PriorityWifi             = 250.0
	PriorityBeforeConnection = 220.0
	PriorityAfterWifi        = 200.0
	PriorityAfterConnection  = 100.0
	PriorityLate             = -100.0
)

// Component is something the host sets up once and then loops.
type Component interface {
	Setup()
	Loop()
	SetupPriority() float64
}

// App holds registered components.
type App struct {
	logger     *slog.Logger
	components []Component
	setupDone  bool
}

// NewApp creates an empty App.
func NewApp(logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{logger: logger}
}

// Register adds a component. Registration order breaks priority ties.
func (a *App) Register(c Component) {
	a.components = append(a.components, c)
}

// Components returns the registered components in setup order.
func (a *App) Components() []Component {
	out := make([]Component, len(a.components))
	copy(out, a.components)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SetupPriority() > out[j].SetupPriority()
	})
	return out
}

// Setup runs Setup on every component in descending priority order. It runs
// at most once.
func (a *App) Setup() {
	if a.setupDone {
		return
	}
	for _, c := range a.Components() {
		a.logger.Debug("setting up component", "priority", c.SetupPriority())
		c.Setup()
	}
	a.setupDone = true
}

// Loop runs one loop iteration on every component.
func (a *App) Loop() {
	for _, c := range a.Components() {
		c.Loop()
	}
}
