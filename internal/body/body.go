package body

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"
)

// Marker is the glyph a body paints on the canvas.
type Marker struct {
	Glyph string
	Color lipgloss.Color
}

// ANSI palette cycled by spawn order.
var palette = []lipgloss.Color{"9", "10", "11", "12", "13", "14", "7", "15"}

const (
	BodyGlyph  = "☼"
	TrailGlyph = "·"

	spawnExtent = 50.0
	spawnSpeed  = 0.1
)

// Body is a point mass with position and velocity in world units.
// Trail markers are bodies with Mass == 0; they never participate in
// force computation.
type Body struct {
	Mass   float64
	Pos    mgl64.Vec2
	Vel    mgl64.Vec2
	Marker Marker
}

// NewRandom returns a unit-mass body with position uniform in
// [-spawnExtent, spawnExtent]² and velocity uniform in
// [-spawnSpeed, spawnSpeed]². The marker color is picked from the
// palette by id.
func NewRandom(rng *rand.Rand, id int) Body {
	return Body{
		Mass: 1.0,
		Pos:  mgl64.Vec2{uniform(rng, -spawnExtent, spawnExtent), uniform(rng, -spawnExtent, spawnExtent)},
		Vel:  mgl64.Vec2{uniform(rng, -spawnSpeed, spawnSpeed), uniform(rng, -spawnSpeed, spawnSpeed)},
		Marker: Marker{
			Glyph: BodyGlyph,
			Color: palette[id%len(palette)],
		},
	}
}

// Trail returns a mass-0 snapshot of the body's current position with a
// frozen velocity, keeping the body's color.
func (b Body) Trail() Body {
	return Body{
		Pos:    b.Pos,
		Marker: Marker{Glyph: TrailGlyph, Color: b.Marker.Color},
	}
}

func (b Body) String() string {
	return fmt.Sprintf("%.0fkg pos: (%.2f, %.2f) vel: (%.2f, %.2f)",
		b.Mass, b.Pos.X(), b.Pos.Y(), b.Vel.X(), b.Vel.Y())
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
