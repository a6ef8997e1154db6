package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/orbitlab/internal/body"
)

// Logger receives one diagnostic line per pair distance and per body
// step. A nil Logger disables diagnostics.
type Logger interface {
	Logf(format string, args ...any)
}

// MaxAccel bounds each acceleration component before integration,
// limiting numerical blow-up from near-singular close encounters.
const MaxAccel = 0.1

// Forces returns the net gravitational force on every body. Each
// unordered pair (i, j) contributes F = g·mᵢ·mⱼ/r² along the separation
// axis, equal in magnitude and opposite in direction. Trail markers
// (mass 0) must not be passed here.
func Forces(bodies []body.Body, g float64, log Logger) []mgl64.Vec2 {
	forces := make([]mgl64.Vec2, len(bodies))
	for i := 0; i < len(bodies)-1; i++ {
		for j := i + 1; j < len(bodies); j++ {
			diff := bodies[i].Pos.Sub(bodies[j].Pos)
			r := diff.Len()
			f := g * bodies[i].Mass * bodies[j].Mass / (r * r)
			hat := diff.Mul(1 / r)
			forces[i] = forces[i].Sub(hat.Mul(f))
			forces[j] = forces[j].Add(hat.Mul(f))
			if log != nil {
				log.Logf("[%d,%d] r: %.3f", i, j, r)
			}
		}
	}
	return forces
}

// Step advances every body by one discrete step of length dt. The
// acceleration derived from forces[i] is clamped per component to
// ±MaxAccel, positions integrate with the constant-acceleration
// kinematic equation, and velocities decay by the multiplicative drag
// factor after integration.
func Step(bodies []body.Body, forces []mgl64.Vec2, dt, drag float64, log Logger) {
	for i := range bodies {
		b := &bodies[i]
		acc := forces[i].Mul(1 / b.Mass)
		acc = mgl64.Vec2{clamp(acc.X()), clamp(acc.Y())}

		b.Pos = b.Pos.Add(b.Vel.Mul(dt)).Add(acc.Mul(0.5 * dt * dt))
		b.Vel = b.Vel.Add(acc.Mul(dt))
		b.Vel = b.Vel.Mul(drag)
		if log != nil {
			log.Logf("[%d] force: (%.3f, %.3f)", i, forces[i].X(), forces[i].Y())
		}
	}
}

func clamp(v float64) float64 {
	if v > MaxAccel {
		return MaxAccel
	}
	if v < -MaxAccel {
		return -MaxAccel
	}
	return v
}
