// Package waveflume is a one-dimensional regular wave generator and
// kinematics engine for coastal-engineering simulations of a wave flume.
//
// # Overview
//
// waveflume takes three physical inputs — wave height H, wave period T,
// and still-water depth d — and derives a self-consistent set of wave
// parameters (wave number k, angular frequency ω, phase speed c,
// wavelength L) from a depth-generalized dispersion relation. From the
// resolved parameters it exposes time- and space-resolved fields
// (surface elevation η, depth-averaged horizontal velocity u) and an
// inflow boundary driver suitable for feeding a shallow-water or
// non-hydrostatic flow solver at its upstream edge.
//
// # Key Features
//
//   - Newton-Raphson inversion of a one-layer, depth-generalized
//     (Padé-style) dispersion relation
//   - Linear-theory kinematics: surface elevation, depth-averaged
//     velocity, particle displacement, energy diagnostics, steepness
//   - A boundary driver that owns simulation time and a raised-cosine
//     ramp envelope, and writes into a host grid's leftmost cell
//   - A host-facing display helper using the classical tanh dispersion
//     relation, kept intentionally distinct from the engine
//   - YAML scenario configuration and a parallel batch runner
//
// # Background
//
// This module targets the same physics as SWASH-style regular wave
// boundary generation: a one-layer non-hydrostatic dispersion relation
// that recovers the shallow-water limit √(gd) and approximates the
// deep-water limit gT/(2π), without resorting to the classical
// ω² = gk·tanh(kd) relation used only for display purposes.
//
// # Architecture
//
// The package is organized into the following components:
//
//   - internal/waveparams: the immutable, validated description of a
//     single regular wave
//   - internal/dispersion: the Newton-Raphson solver that resolves wave
//     number k from (ω, d)
//   - internal/kinematics: pure spatio-temporal field evaluation and
//     energy diagnostics
//   - internal/boundary: the stateful driver that advances simulation
//     time and applies ramped boundary values to a host grid
//   - pkg/rootfind: Brent's method and line-intersection root finding
//   - pkg/waveutil: sample-grid generation and the classical tanh
//     dispersion model used for host-side display and classification
//   - internal/config: YAML scenario configuration
//   - internal/batch: parallel batch processing over a directory of
//     scenario files
//
// # Commands
//
// waveflume provides two command-line tools:
//
// Single Scenario (cmd/wavegen):
//
//	./wavegen -config configs/sample_scenario.yaml
//
// Batch Runner (cmd/waveflume-batch):
//
//	./waveflume-batch -dir configs/batch -workers 4
//
// # Library Usage
//
//	import (
//		"github.com/antoinelb/waveflume/internal/dispersion"
//		"github.com/antoinelb/waveflume/internal/kinematics"
//		"github.com/antoinelb/waveflume/internal/boundary"
//	)
//
//	func main() {
//		solver := dispersion.NewSolver()
//		params, err := solver.Solve(0.5, 4.0, 2.0) // H, T, d
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		driver := boundary.NewDriver(params)
//		for t := 0.0; t < 20.0; t += driver.RecommendedTimeStep() {
//			driver.UpdateTime(t)
//			u := driver.BoundaryVelocity()
//			_ = u
//		}
//	}
//
// # Units
//
// SI throughout, angles in radians, carried only by convention — there
// is no unit-checked type system here.
package waveflume
