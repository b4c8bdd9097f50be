package waveutil

import (
	"fmt"
	"math"

	"github.com/antoinelb/waveflume/internal/waveparams"
	"github.com/antoinelb/waveflume/pkg/rootfind"
)

// maxIntermediateIterations bounds the fixed-point iteration in
// AdaptiveWavelength's intermediate-depth branch.
const maxIntermediateIterations = 20

// wavelengthConvergenceTolerance is the fixed-point convergence gate
// |ΔL| for AdaptiveWavelength's intermediate-depth branch.
const wavelengthConvergenceTolerance = 1e-6

// Linspace returns n evenly spaced values over [start, end], inclusive
// of both endpoints. Mirrors numpy's linspace.
func Linspace(start, end float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	if n == 1 {
		return []float64{start}
	}

	result := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range n {
		result[i] = start + float64(i)*step
	}
	result[n-1] = end
	return result
}

// ClassifyRegime buckets a depth-to-wavelength ratio into the same
// Shallow/Intermediate/Deep regimes waveparams.Parameters.Regime uses,
// at the thresholds d/L < 1/20 (shallow) and d/L > 1/2 (deep).
func ClassifyRegime(depth, wavelength float64) waveparams.Regime {
	return waveparams.ClassifyRegime(depth, wavelength)
}

// AdaptiveWavelength estimates the wavelength of a regular wave of the
// given period over the given depth using the classical
// ω² = g·k·tanh(k·d) dispersion relation, branching on regime:
//
//   - shallow: closed form L = T√(gd)
//   - deep: closed form L = gT²/(2π)
//   - intermediate: fixed-point iteration L ← (gT²/2π)·tanh(2πd/L),
//     seeded from the deep-water closed form, capped at 20 iterations,
//     converged when |ΔL| < 1e-6
//
// This is the classical tanh model, intentionally distinct from
// internal/dispersion's Padé relation: a display-grade approximation,
// not the engine solver.
func AdaptiveWavelength(period, depth, gravity float64) float64 {
	shallowGuess := period * math.Sqrt(gravity*depth)
	regime := ClassifyRegime(depth, shallowGuess)

	switch regime {
	case waveparams.Shallow:
		return shallowGuess
	case waveparams.Deep:
		return gravity * period * period / (2 * math.Pi)
	default:
		deepLength := gravity * period * period / (2 * math.Pi)
		l := deepLength
		for i := 0; i < maxIntermediateIterations; i++ {
			lOld := l
			k := 2 * math.Pi / lOld
			l = deepLength * math.Tanh(k*depth)
			if math.Abs(l-lOld) < wavelengthConvergenceTolerance {
				break
			}
		}
		return l
	}
}

// AdaptiveCelerity returns AdaptiveWavelength(period, depth, gravity) / period.
func AdaptiveCelerity(period, depth, gravity float64) float64 {
	return AdaptiveWavelength(period, depth, gravity) / period
}

// RegimeTransitionPeriod holds depth fixed and finds, via
// rootfind.Brent, the wave period at which
// depth/AdaptiveWavelength(period, depth, gravity) crosses targetRatio
// (e.g. 1/20 for the shallow boundary, 1/2 for the deep boundary) —
// "at what period does this flume depth stop being shallow water".
func RegimeTransitionPeriod(depth, targetRatio, gravity float64) (float64, error) {
	if depth <= 0 {
		return 0, fmt.Errorf("waveutil: depth must be positive")
	}
	if targetRatio <= 0 {
		return 0, fmt.Errorf("waveutil: targetRatio must be positive")
	}

	f := func(period float64) float64 {
		wavelength := AdaptiveWavelength(period, depth, gravity)
		return depth/wavelength - targetRatio
	}

	const shortPeriod = 1e-3
	const longPeriod = 1e4

	root, err := rootfind.Brent(shortPeriod, longPeriod, 1e-9, f)
	if err != nil {
		return 0, fmt.Errorf("waveutil: regime transition search failed: %w", err)
	}
	return root, nil
}
