// Package metrics computes conserved-quantity diagnostics over a body
// set. Headless runs record them alongside the sampled trajectory.
package metrics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/orbitlab/internal/body"
)

// KineticEnergy returns Σ ½·m·|v|².
func KineticEnergy(bodies []body.Body) float64 {
	ke := 0.0
	for _, b := range bodies {
		v2 := b.Vel.Dot(b.Vel)
		ke += 0.5 * b.Mass * v2
	}
	return ke
}

// PotentialEnergy returns the pairwise gravitational potential
// -Σ g·mᵢ·mⱼ/r. Coincident pairs are skipped.
func PotentialEnergy(bodies []body.Body, g float64) float64 {
	pe := 0.0
	for i := 0; i < len(bodies)-1; i++ {
		for j := i + 1; j < len(bodies); j++ {
			r := bodies[i].Pos.Sub(bodies[j].Pos).Len()
			if r == 0 {
				continue
			}
			pe -= g * bodies[i].Mass * bodies[j].Mass / r
		}
	}
	return pe
}

// TotalEnergy returns kinetic plus potential energy.
func TotalEnergy(bodies []body.Body, g float64) float64 {
	return KineticEnergy(bodies) + PotentialEnergy(bodies, g)
}

// Momentum returns the total linear momentum Σ m·v.
func Momentum(bodies []body.Body) mgl64.Vec2 {
	var p mgl64.Vec2
	for _, b := range bodies {
		p = p.Add(b.Vel.Mul(b.Mass))
	}
	return p
}

// AngularMomentum returns Σ m·(x·vy - y·vx) about the origin.
func AngularMomentum(bodies []body.Body) float64 {
	l := 0.0
	for _, b := range bodies {
		l += b.Mass * (b.Pos.X()*b.Vel.Y() - b.Pos.Y()*b.Vel.X())
	}
	return l
}

// All returns every metric keyed by name.
func All(bodies []body.Body, g float64) map[string]float64 {
	p := Momentum(bodies)
	return map[string]float64{
		"kinetic_energy":   KineticEnergy(bodies),
		"potential_energy": PotentialEnergy(bodies, g),
		"total_energy":     TotalEnergy(bodies, g),
		"momentum_x":       p.X(),
		"momentum_y":       p.Y(),
		"angular_momentum": AngularMomentum(bodies),
	}
}
