package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/orbitlab/internal/body"
)

func makeBodies(positions ...mgl64.Vec2) []body.Body {
	bodies := make([]body.Body, len(positions))
	for i, p := range positions {
		bodies[i] = body.Body{Mass: 1.0, Pos: p}
	}
	return bodies
}

func TestForcesNewtonThirdLaw(t *testing.T) {
	bodies := makeBodies(mgl64.Vec2{-3, 2}, mgl64.Vec2{7, -5})

	for step := 0; step < 50; step++ {
		forces := Forces(bodies, 100.0, nil)
		sum := forces[0].Add(forces[1])
		if sum.Len() > 1e-12 {
			t.Fatalf("step %d: forces not equal and opposite, residual %v", step, sum)
		}
		Step(bodies, forces, 1.0, 1.0, nil)
	}
}

func TestForcesEmptyAndSingle(t *testing.T) {
	if f := Forces(nil, 100.0, nil); len(f) != 0 {
		t.Errorf("expected no forces for empty set, got %d", len(f))
	}

	bodies := makeBodies(mgl64.Vec2{1, 1})
	f := Forces(bodies, 100.0, nil)
	if len(f) != 1 {
		t.Fatalf("expected one entry, got %d", len(f))
	}
	if f[0].Len() != 0 {
		t.Errorf("single body must feel no force, got %v", f[0])
	}
}

func TestStepInertialMotion(t *testing.T) {
	// Zero gravity, drag 1: velocity invariant, positions linear.
	bodies := makeBodies(mgl64.Vec2{0, 0}, mgl64.Vec2{10, 10})
	bodies[0].Vel = mgl64.Vec2{0.5, -0.25}
	bodies[1].Vel = mgl64.Vec2{-1, 2}
	v0, v1 := bodies[0].Vel, bodies[1].Vel
	p0 := bodies[0].Pos

	const steps = 20
	for i := 0; i < steps; i++ {
		forces := Forces(bodies, 0.0, nil)
		Step(bodies, forces, 1.0, 1.0, nil)
	}

	if bodies[0].Vel != v0 || bodies[1].Vel != v1 {
		t.Errorf("velocities changed under zero force: %v %v", bodies[0].Vel, bodies[1].Vel)
	}
	want := p0.Add(v0.Mul(steps))
	if bodies[0].Pos.Sub(want).Len() > 1e-9 {
		t.Errorf("position not linear: got %v, want %v", bodies[0].Pos, want)
	}
}

func TestStepDragMonotonicity(t *testing.T) {
	b := []body.Body{{Mass: 1, Vel: mgl64.Vec2{3, -4}}}
	zero := []mgl64.Vec2{{}}

	prev := b[0].Vel.Len()
	for i := 0; i < 200; i++ {
		Step(b, zero, 1.0, 0.9, nil)
		speed := b[0].Vel.Len()
		if speed >= prev {
			t.Fatalf("step %d: speed did not decrease (%.9f -> %.9f)", i, prev, speed)
		}
		prev = speed
	}
	if prev > 1e-6 {
		t.Errorf("speed should decay toward zero, still %.9f", prev)
	}
}

func TestStepAccelerationClamp(t *testing.T) {
	// Two heavy bodies almost touching produce a huge force; the
	// integrated velocity change must stay within ±MaxAccel per axis.
	bodies := makeBodies(mgl64.Vec2{0, 0}, mgl64.Vec2{0.01, 0})
	forces := Forces(bodies, 1e6, nil)
	Step(bodies, forces, 1.0, 1.0, nil)

	for i, b := range bodies {
		if math.Abs(b.Vel.X()) > MaxAccel+1e-12 || math.Abs(b.Vel.Y()) > MaxAccel+1e-12 {
			t.Errorf("body %d velocity exceeds clamp: %v", i, b.Vel)
		}
	}
}

func TestThreeBodyAttraction(t *testing.T) {
	// Right-triangle scenario: equal masses at (0,0), (10,0), (0,10),
	// G=100, dt=1, drag=1.
	bodies := makeBodies(mgl64.Vec2{0, 0}, mgl64.Vec2{10, 0}, mgl64.Vec2{0, 10})

	forces := Forces(bodies, 100.0, nil)

	// The two symmetric bodies feel equal-magnitude net force.
	if diff := math.Abs(forces[1].Len() - forces[2].Len()); diff > 1e-12 {
		t.Errorf("symmetric bodies should feel equal force, diff %g", diff)
	}

	Step(bodies, forces, 1.0, 1.0, nil)

	// Every body accelerates toward the other two.
	checks := []struct {
		name   string
		vel    mgl64.Vec2
		sx, sy float64
	}{
		{"origin", bodies[0].Vel, 1, 1},
		{"right", bodies[1].Vel, -1, 1},
		{"top", bodies[2].Vel, 1, -1},
	}
	for _, c := range checks {
		if c.vel.Len() == 0 {
			t.Errorf("%s body has zero velocity after one step", c.name)
		}
		if c.vel.X()*c.sx < 0 || c.vel.Y()*c.sy < 0 {
			t.Errorf("%s body velocity %v points away from the cluster", c.name, c.vel)
		}
	}
}

func TestForcesLogsPairs(t *testing.T) {
	var lines countingLogger
	bodies := makeBodies(mgl64.Vec2{0, 0}, mgl64.Vec2{10, 0}, mgl64.Vec2{0, 10}, mgl64.Vec2{5, 5})

	Forces(bodies, 100.0, &lines)
	if lines != 6 {
		t.Errorf("expected one log line per unordered pair (6), got %d", lines)
	}

	lines = 0
	Step(bodies, make([]mgl64.Vec2, len(bodies)), 1.0, 1.0, &lines)
	if lines != 4 {
		t.Errorf("expected one log line per body (4), got %d", lines)
	}
}

type countingLogger int

func (c *countingLogger) Logf(format string, args ...any) { *c++ }
