// Package physics implements the gravitational core of the simulator.
//
//   - [Forces]: naive O(n²) pairwise Newtonian gravity
//   - [Step]: constant-acceleration kinematics with clamped acceleration
//     and multiplicative velocity drag
//   - [Centroid]: RANSAC-style robust cluster center
//   - [Recenter]: damped recentering of bodies and trail markers
//
// No softening term is applied to the force law: two coincident bodies
// produce an infinite force that propagates into positions and
// velocities. Pair distances are never zero for the randomized spawns
// the simulator uses, so the blow-up is accepted rather than guarded.
//
// All routines no-op for fewer than two bodies.
package physics
