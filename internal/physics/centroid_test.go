package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/orbitlab/internal/body"
)

func TestCentroidTightCluster(t *testing.T) {
	// All bodies within the inlier radius of each other: the estimate
	// must be the arithmetic mean of all positions.
	bodies := makeBodies(mgl64.Vec2{10, 20}, mgl64.Vec2{30, 40}, mgl64.Vec2{-10, 0}, mgl64.Vec2{50, 60})

	var mean mgl64.Vec2
	for _, b := range bodies {
		mean = mean.Add(b.Pos)
	}
	mean = mean.Mul(1 / float64(len(bodies)))

	got := Centroid(bodies)
	if got.Sub(mean).Len() > 1e-9 {
		t.Errorf("expected arithmetic mean %v, got %v", mean, got)
	}
}

func TestCentroidIgnoresEjectedBody(t *testing.T) {
	// Three clustered bodies plus one far outlier. The outlier is
	// excluded from the sum, but the divisor stays the total count.
	cluster := []mgl64.Vec2{{0, 0}, {10, 0}, {0, 10}}
	bodies := makeBodies(append(cluster, mgl64.Vec2{5000, 5000})...)

	var sum mgl64.Vec2
	for _, p := range cluster {
		sum = sum.Add(p)
	}
	want := sum.Mul(1 / float64(len(bodies)))

	got := Centroid(bodies)
	if got.Sub(want).Len() > 1e-9 {
		t.Errorf("expected %v (inlier sum over total count), got %v", want, got)
	}
}

func TestCentroidEmpty(t *testing.T) {
	if c := Centroid(nil); c.Len() != 0 {
		t.Errorf("expected origin for empty set, got %v", c)
	}
}

func TestRecenterDampedShift(t *testing.T) {
	bodies := makeBodies(mgl64.Vec2{100, 100}, mgl64.Vec2{120, 100})
	trail := []body.Body{{Pos: mgl64.Vec2{100, 100}}}

	shift := Centroid(bodies).Mul(recenterGain)
	wantBody := bodies[0].Pos.Sub(shift)
	wantTrail := trail[0].Pos.Sub(shift)

	Recenter(bodies, trail)

	if bodies[0].Pos.Sub(wantBody).Len() > 1e-12 {
		t.Errorf("body not shifted by 10%% of centroid: got %v, want %v", bodies[0].Pos, wantBody)
	}
	if trail[0].Pos.Sub(wantTrail).Len() > 1e-12 {
		t.Errorf("trail marker not shifted: got %v, want %v", trail[0].Pos, wantTrail)
	}
}

func TestRecenterConverges(t *testing.T) {
	// Repeated recentering walks an offset cluster toward the origin.
	bodies := makeBodies(mgl64.Vec2{200, -300}, mgl64.Vec2{210, -290})
	for i := 0; i < 300; i++ {
		Recenter(bodies, nil)
	}
	mid := bodies[0].Pos.Add(bodies[1].Pos).Mul(0.5)
	if mid.Len() > 1.0 {
		t.Errorf("cluster should settle near origin, midpoint %v", mid)
	}
}

func TestRecenterGuards(t *testing.T) {
	Recenter(nil, nil)

	single := makeBodies(mgl64.Vec2{500, 500})
	before := single[0].Pos
	Recenter(single, nil)
	if single[0].Pos != before {
		t.Errorf("single body must not move: %v", single[0].Pos)
	}
}
