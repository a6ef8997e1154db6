package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/orbitlab/internal/body"
)

const (
	// InlierRadius is the vote distance for the centroid estimate.
	InlierRadius = 150.0

	// recenterGain is the fraction of the centroid subtracted per step.
	recenterGain = 0.1
)

// Centroid estimates the center of the largest spatial cluster. Every
// body position is a candidate; bodies within InlierRadius of the
// candidate vote for it, and the winning candidate's inlier positions
// are summed. The sum is divided by the TOTAL body count rather than
// the inlier count, so the estimate shrinks toward the origin when
// outliers exist. That is the historical behavior of this simulator and
// is kept on purpose.
func Centroid(bodies []body.Body) mgl64.Vec2 {
	var center mgl64.Vec2
	best := 0
	for i := range bodies {
		cand := bodies[i].Pos
		inliers := 0
		var sum mgl64.Vec2
		for j := range bodies {
			if cand.Sub(bodies[j].Pos).Len() < InlierRadius {
				inliers++
				sum = sum.Add(bodies[j].Pos)
			}
		}
		if inliers > best {
			best = inliers
			center = sum.Mul(1 / float64(len(bodies)))
		}
	}
	return center
}

// Recenter subtracts recenterGain of the robust centroid from every
// body and trail marker, nudging the visible cluster toward the origin
// without a hard snap. No-op for fewer than two bodies.
func Recenter(bodies, trail []body.Body) {
	if len(bodies) < 2 {
		return
	}
	shift := Centroid(bodies).Mul(recenterGain)
	for i := range bodies {
		bodies[i].Pos = bodies[i].Pos.Sub(shift)
	}
	for i := range trail {
		trail[i].Pos = trail[i].Pos.Sub(shift)
	}
}
