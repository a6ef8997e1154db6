package metrics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/orbitlab/internal/body"
)

func TestKineticEnergy(t *testing.T) {
	bodies := []body.Body{
		{Mass: 2, Vel: mgl64.Vec2{3, 4}}, // ½·2·25 = 25
		{Mass: 1, Vel: mgl64.Vec2{0, 0}},
	}
	if ke := KineticEnergy(bodies); math.Abs(ke-25) > 1e-12 {
		t.Errorf("expected 25, got %f", ke)
	}
}

func TestPotentialEnergy(t *testing.T) {
	bodies := []body.Body{
		{Mass: 1, Pos: mgl64.Vec2{0, 0}},
		{Mass: 1, Pos: mgl64.Vec2{10, 0}},
	}
	// -g·m₁·m₂/r = -100/10
	if pe := PotentialEnergy(bodies, 100); math.Abs(pe+10) > 1e-12 {
		t.Errorf("expected -10, got %f", pe)
	}
}

func TestPotentialEnergySkipsCoincident(t *testing.T) {
	bodies := []body.Body{
		{Mass: 1, Pos: mgl64.Vec2{5, 5}},
		{Mass: 1, Pos: mgl64.Vec2{5, 5}},
	}
	if pe := PotentialEnergy(bodies, 100); pe != 0 {
		t.Errorf("coincident pair should be skipped, got %f", pe)
	}
}

func TestMomentum(t *testing.T) {
	bodies := []body.Body{
		{Mass: 2, Vel: mgl64.Vec2{1, -1}},
		{Mass: 3, Vel: mgl64.Vec2{-2, 2}},
	}
	p := Momentum(bodies)
	want := mgl64.Vec2{-4, 4}
	if p.Sub(want).Len() > 1e-12 {
		t.Errorf("expected %v, got %v", want, p)
	}
}

func TestAngularMomentum(t *testing.T) {
	// Unit mass on the x axis moving in +y: L = x·vy = 5.
	bodies := []body.Body{{Mass: 1, Pos: mgl64.Vec2{5, 0}, Vel: mgl64.Vec2{0, 1}}}
	if l := AngularMomentum(bodies); math.Abs(l-5) > 1e-12 {
		t.Errorf("expected 5, got %f", l)
	}
}

func TestAllKeys(t *testing.T) {
	m := All(nil, 100)
	for _, key := range []string{"kinetic_energy", "potential_energy", "total_energy", "momentum_x", "momentum_y", "angular_momentum"} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing metric %q", key)
		}
	}
}
