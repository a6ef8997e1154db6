// Package sim contains the concrete simulation scenarios driven by the
// engine. NBody is currently the only one; further scenarios plug in
// by implementing [engine.Simulatable].
package sim

import (
	"math/rand"
	"time"

	"github.com/san-kum/orbitlab/internal/body"
	"github.com/san-kum/orbitlab/internal/canvas"
	"github.com/san-kum/orbitlab/internal/config"
	"github.com/san-kum/orbitlab/internal/engine"
	"github.com/san-kum/orbitlab/internal/physics"
	"github.com/san-kum/orbitlab/internal/settings"
)

// NBody is the gravitational scenario: an insertion-ordered body
// collection, a capped trail of past positions, and three live
// settings shared with the settings panel.
type NBody struct {
	log      *engine.Ring
	rng      *rand.Rand
	bodies   []body.Body
	trail    []body.Body
	trailCap int
	spawned  int
	initial  int

	panel   *settings.Panel
	speed   *settings.Stepped
	gravity *settings.Scaled
	drag    *settings.Stepped
}

// NewNBody builds the scenario from a config. A zero seed means a
// time-derived one, so every launch and every reset is a new random
// scenario.
func NewNBody(cfg *config.Config, log *engine.Ring) *NBody {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	n := &NBody{
		log:      log,
		rng:      rand.New(rand.NewSource(seed)),
		trailCap: cfg.TrailCap,
		initial:  cfg.Bodies,
		speed:    settings.NewStepped("Speed:", cfg.Speed, 1, "%.0f"),
		gravity:  settings.NewScaled("Force (G):", cfg.Gravity, 10, "%.0f"),
		drag:     settings.NewStepped("Drag:", cfg.Drag, 0.01, "%.2f"),
	}
	n.panel = settings.NewPanel(n.speed, n.gravity, n.drag)
	n.populate()
	return n
}

func (n *NBody) populate() {
	n.bodies = n.bodies[:0]
	n.trail = nil
	n.spawned = 0
	for i := 0; i < n.initial; i++ {
		n.addBody()
	}
}

func (n *NBody) addBody() {
	n.bodies = append(n.bodies, body.NewRandom(n.rng, n.spawned))
	n.spawned++
}

func (n *NBody) removeOldest() {
	if len(n.bodies) > 0 {
		n.bodies = n.bodies[1:]
	}
}

// Reset rebuilds the body collection from scratch with fresh random
// positions. The RNG advances, so the rebuilt scenario differs from
// the original one.
func (n *NBody) Reset() {
	n.populate()
}

// Update advances the scenario by one step: snapshot trails, apply
// pairwise gravity, integrate, and recenter on the dominant cluster.
// With fewer than two bodies there is nothing to attract, so the step
// leaves all state untouched.
func (n *NBody) Update() {
	if len(n.bodies) < 2 {
		return
	}

	for _, b := range n.bodies {
		n.trail = append(n.trail, b.Trail())
	}
	if len(n.trail) > n.trailCap {
		n.trail = n.trail[len(n.trail)-n.trailCap:]
	}

	forces := physics.Forces(n.bodies, n.gravity.Value(), n.log)
	physics.Step(n.bodies, forces, n.speed.Value(), n.drag.Value(), n.log)
	physics.Recenter(n.bodies, n.trail)
}

// HandleKey implements the scenario-specific bindings: a spawns a
// randomized body, d removes the oldest-inserted one.
func (n *NBody) HandleKey(key string) {
	switch key {
	case "a":
		n.addBody()
	case "d":
		n.removeOldest()
	}
}

func (n *NBody) CanvasTitle() string { return " N-Body Simulation " }

func (n *NBody) CanvasBounds() (xmin, xmax, ymin, ymax float64) {
	return -100, 100, -100, 100
}

// Render paints trails first so live bodies overwrite them on shared
// cells.
func (n *NBody) Render(c *canvas.Canvas) {
	for _, t := range n.trail {
		c.Plot(t.Pos.X(), t.Pos.Y(), t.Marker.Glyph, t.Marker.Color)
	}
	for _, b := range n.bodies {
		c.Plot(b.Pos.X(), b.Pos.Y(), b.Marker.Glyph, b.Marker.Color)
	}
}

func (n *NBody) InfoTitle() string { return " Entity Info " }

func (n *NBody) InfoLines() []engine.InfoLine {
	lines := make([]engine.InfoLine, len(n.bodies))
	for i, b := range n.bodies {
		lines[i] = engine.InfoLine{
			Glyph: b.Marker.Glyph,
			Color: b.Marker.Color,
			Text:  b.String(),
		}
	}
	return lines
}

func (n *NBody) Settings() *settings.Panel { return n.panel }

// Bodies returns a copy of the live body collection, oldest first.
func (n *NBody) Bodies() []body.Body {
	out := make([]body.Body, len(n.bodies))
	copy(out, n.bodies)
	return out
}

// Gravity returns the current value of the gravitational constant
// setting.
func (n *NBody) Gravity() float64 { return n.gravity.Value() }
