package engine

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/orbitlab/internal/canvas"
	"github.com/san-kum/orbitlab/internal/settings"
)

const (
	// TickInterval is the frame cadence of the run loop.
	TickInterval = 16 * time.Millisecond

	// LogCapacity bounds the diagnostic ring.
	LogCapacity = 100
)

// InfoLine is one formatted entry of the scenario's info panel.
type InfoLine struct {
	Glyph string
	Color lipgloss.Color
	Text  string
}

// Simulatable is the contract a concrete simulation scenario satisfies
// to be driven by the engine. Keys the engine reserves (quit, pause,
// reset, settings navigation) never reach HandleKey.
type Simulatable interface {
	// Reset discards all state and rebuilds a fresh randomized
	// scenario. It is NOT a replay of the original one.
	Reset()

	// Update advances the simulation by one step.
	Update()

	// HandleKey receives key events the engine does not claim.
	HandleKey(key string)

	CanvasTitle() string
	CanvasBounds() (xmin, xmax, ymin, ymax float64)
	Render(c *canvas.Canvas)

	InfoTitle() string
	InfoLines() []InfoLine

	Settings() *settings.Panel
}

// Engine owns the flags and pacing state of the run loop. It starts
// paused with a nominal FPS estimate of 60.
type Engine struct {
	sim   Simulatable
	log   *Ring
	fps   float64
	exit  bool
	pause bool
	reset bool

	lastTick time.Time
}

// New wires an engine to its scenario. The ring is the scenario's
// diagnostic sink; passing the same ring the scenario logs to makes
// the log panel show physics output.
func New(sim Simulatable, log *Ring) *Engine {
	return &Engine{sim: sim, log: log, fps: 60, pause: true}
}

// Tick runs one iteration: consume a pending reset, advance the
// scenario unless paused, and fold the instantaneous frame rate into
// the smoothed estimate.
func (e *Engine) Tick(now time.Time) {
	if e.reset {
		e.sim.Reset()
		e.reset = false
	}
	if !e.pause {
		e.sim.Update()
	}
	e.observeFrame(now)
}

func (e *Engine) observeFrame(now time.Time) {
	if !e.lastTick.IsZero() {
		elapsed := now.Sub(e.lastTick).Milliseconds()
		if elapsed > 0 {
			e.fps = e.fps*0.99 + (1000.0/float64(elapsed))*0.01
		}
	}
	e.lastTick = now
}

// HandleKey dispatches an engine-reserved key or forwards anything
// else to the scenario.
func (e *Engine) HandleKey(key string) {
	switch key {
	case "q":
		e.exit = true
	case " ":
		e.pause = !e.pause
	case "r":
		e.reset = true
	case "up":
		e.sim.Settings().Up()
	case "down":
		e.sim.Settings().Down()
	case "left":
		e.sim.Settings().Left()
	case "right":
		e.sim.Settings().Right()
	default:
		e.sim.HandleKey(key)
	}
}

func (e *Engine) Exiting() bool    { return e.exit }
func (e *Engine) Paused() bool     { return e.pause }
func (e *Engine) FPS() int         { return int(e.fps) }
func (e *Engine) Log() *Ring       { return e.log }
func (e *Engine) Sim() Simulatable { return e.sim }
