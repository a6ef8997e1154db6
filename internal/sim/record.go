package sim

import (
	"context"

	"github.com/san-kum/orbitlab/internal/metrics"
)

// Result holds the sampled trajectory of a headless run.
type Result struct {
	Times   []float64
	States  [][]float64 // per body: x, y, vx, vy
	Metrics map[string]float64
}

// Record advances the scenario for the given number of steps without a
// terminal, sampling every body's position and velocity after each
// step. The final metrics snapshot is attached to the result.
func (n *NBody) Record(ctx context.Context, steps int) (*Result, error) {
	result := &Result{
		Times:  make([]float64, 0, steps+1),
		States: make([][]float64, 0, steps+1),
	}

	dt := n.speed.Value()
	t := 0.0
	result.Times = append(result.Times, t)
	result.States = append(result.States, n.flatState())

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		n.Update()
		t += dt
		result.Times = append(result.Times, t)
		result.States = append(result.States, n.flatState())
	}

	result.Metrics = metrics.All(n.bodies, n.gravity.Value())
	return result, nil
}

func (n *NBody) flatState() []float64 {
	state := make([]float64, 0, len(n.bodies)*4)
	for _, b := range n.bodies {
		state = append(state, b.Pos.X(), b.Pos.Y(), b.Vel.X(), b.Vel.Y())
	}
	return state
}
