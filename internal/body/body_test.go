package body

import (
	"math/rand"
	"strings"
	"testing"
)

func TestNewRandomRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		b := NewRandom(rng, i)

		if b.Mass != 1.0 {
			t.Fatalf("expected unit mass, got %f", b.Mass)
		}
		for axis := 0; axis < 2; axis++ {
			if b.Pos[axis] < -spawnExtent || b.Pos[axis] > spawnExtent {
				t.Errorf("position axis %d out of range: %f", axis, b.Pos[axis])
			}
			if b.Vel[axis] < -spawnSpeed || b.Vel[axis] > spawnSpeed {
				t.Errorf("velocity axis %d out of range: %f", axis, b.Vel[axis])
			}
		}
		if b.Marker.Glyph != BodyGlyph {
			t.Errorf("expected glyph %q, got %q", BodyGlyph, b.Marker.Glyph)
		}
	}
}

func TestNewRandomPaletteCycles(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	first := NewRandom(rng, 0)
	wrapped := NewRandom(rng, len(palette))
	if first.Marker.Color != wrapped.Marker.Color {
		t.Errorf("palette should cycle: id 0 got %v, id %d got %v",
			first.Marker.Color, len(palette), wrapped.Marker.Color)
	}

	a := NewRandom(rng, 0)
	b := NewRandom(rng, 1)
	if a.Marker.Color == b.Marker.Color {
		t.Error("adjacent ids should get distinct colors")
	}
}

func TestTrail(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := NewRandom(rng, 3)

	tr := b.Trail()

	if tr.Mass != 0 {
		t.Errorf("trail marker must have zero mass, got %f", tr.Mass)
	}
	if tr.Pos != b.Pos {
		t.Errorf("trail marker must snapshot position: got %v, want %v", tr.Pos, b.Pos)
	}
	if tr.Vel.Len() != 0 {
		t.Errorf("trail marker velocity must be frozen, got %v", tr.Vel)
	}
	if tr.Marker.Glyph != TrailGlyph {
		t.Errorf("expected trail glyph %q, got %q", TrailGlyph, tr.Marker.Glyph)
	}
	if tr.Marker.Color != b.Marker.Color {
		t.Error("trail marker must keep the body color")
	}
}

func TestString(t *testing.T) {
	b := Body{Mass: 1}
	s := b.String()
	if !strings.Contains(s, "kg") || !strings.Contains(s, "pos:") || !strings.Contains(s, "vel:") {
		t.Errorf("unexpected body format: %q", s)
	}
}
