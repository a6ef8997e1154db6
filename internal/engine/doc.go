// Package engine drives a single [Simulatable] at a fixed cadence.
//
//   - [Simulatable]: the contract a concrete scenario implements
//   - [Engine]: exit/pause/reset flags, smoothed FPS, tick sequencing
//   - [Ring]: bounded FIFO diagnostic log shared with the scenario
//
// The engine never inspects the concrete scenario type; new simulation
// kinds are added as new Simulatable implementations, not new engine
// branches.
//
// # Thread Safety
//
// Engine instances are NOT thread-safe. Tick, HandleKey, and all
// queries must run on one goroutine; the bubbletea program in the viz
// package provides that serialization.
package engine
