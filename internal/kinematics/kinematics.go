package kinematics

import (
	"errors"
	"fmt"
	"math"

	"github.com/antoinelb/waveflume/internal/waveparams"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
)

// ErrEnergyDrift is returned by ValidateEnergyConservation when the
// instantaneous local energy departs from the linear-theory mean
// energy per unit area by more than 10% relative error.
var ErrEnergyDrift = errors.New("kinematics: energy conservation diagnostic exceeded tolerance")

// energyDriftTolerance is the relative-error threshold for ErrEnergyDrift.
const energyDriftTolerance = 0.1

// linearitySteepnessLimit is the steepness below which IsLinear reports true.
const linearitySteepnessLimit = 0.1

// shallowKDLimit switches the depth coefficient D(κ) from its shallow
// limit of 1 to tanh(κ), guarding against catastrophic cancellation
// near κ = 0.
const shallowKDLimit = 0.1

const pointsPerWavelength = 20
const cflSafetyFactor = 0.5

// Kinematics owns a resolved set of wave parameters and evaluates
// fields at arbitrary (x, t).
type Kinematics struct {
	params  waveparams.Parameters
	gravity float64
}

// New wraps a resolved waveparams.Parameters with the standard
// gravitational acceleration.
func New(p waveparams.Parameters) Kinematics {
	return NewWithGravity(p, 9.81)
}

// NewWithGravity wraps a resolved waveparams.Parameters with an
// explicit gravity constant.
func NewWithGravity(p waveparams.Parameters, gravity float64) Kinematics {
	return Kinematics{params: p, gravity: gravity}
}

// Parameters returns the wrapped wave parameters.
func (k Kinematics) Parameters() waveparams.Parameters {
	return k.params
}

// UpdateParameters returns a new Kinematics wrapping p, leaving the
// receiver untouched — replacement, not mutation.
func (k Kinematics) UpdateParameters(p waveparams.Parameters) Kinematics {
	k.params = p
	return k
}

// phase returns φ(x,t) = k·x - ω·t.
func (k Kinematics) phase(x, t float64) float64 {
	return k.params.K*x - k.params.Omega*t
}

// depthCoefficient returns D(κ): 1 in the shallow limit, tanh(κ) otherwise.
func (k Kinematics) depthCoefficient() float64 {
	kd := k.params.KD()
	if kd < shallowKDLimit {
		return 1
	}
	return math.Tanh(kd)
}

// SurfaceElevation returns η(x,t) = a·cos(φ).
func (k Kinematics) SurfaceElevation(x, t float64) float64 {
	return k.params.Amplitude() * math.Cos(k.phase(x, t))
}

// HorizontalVelocity returns the depth-averaged horizontal velocity
// u(x,t) = a·c·D(κ)·cos(φ).
func (k Kinematics) HorizontalVelocity(x, t float64) float64 {
	return k.VelocityAmplitude() * math.Cos(k.phase(x, t))
}

// VerticalVelocity is identically zero: this engine models 1-D
// horizontal wave propagation only.
func (k Kinematics) VerticalVelocity(x, t float64) float64 {
	return 0
}

// VelocityAmplitude returns a·c·D(κ), the maximum of |u|.
func (k Kinematics) VelocityAmplitude() float64 {
	return k.params.Amplitude() * k.params.C * k.depthCoefficient()
}

// ParticleDisplacement returns the horizontal orbital displacement
// ξ(x,t) = a·D(κ)·sin(φ).
func (k Kinematics) ParticleDisplacement(x, t float64) float64 {
	return k.params.Amplitude() * k.depthCoefficient() * math.Sin(k.phase(x, t))
}

// Steepness returns a·k, the nondimensional linearity gate.
func (k Kinematics) Steepness() float64 {
	return k.params.Amplitude() * k.params.K
}

// IsLinear reports whether Steepness is below the linear-regime limit.
func (k Kinematics) IsLinear() bool {
	return k.Steepness() < linearitySteepnessLimit
}

// RecommendedTimeStep returns a CFL-bounded step: 0.5 * (L/20) / c.
func (k Kinematics) RecommendedTimeStep() float64 {
	dx := k.params.L / pointsPerWavelength
	return cflSafetyFactor * dx / k.params.C
}

// TimeSeries evaluates HorizontalVelocity at a fixed position x over a
// sequence of sample times, returning a materialized, ordered slice.
func (k Kinematics) TimeSeries(x float64, times []float64) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = k.HorizontalVelocity(x, t)
	}
	return out
}

// SpatialSeries evaluates HorizontalVelocity at a fixed time t over a
// sequence of sample positions, returning a materialized, ordered slice.
func (k Kinematics) SpatialSeries(positions []float64, t float64) []float64 {
	out := make([]float64, len(positions))
	for i, x := range positions {
		out[i] = k.HorizontalVelocity(x, t)
	}
	return out
}

// ElevationTimeSeries evaluates SurfaceElevation at a fixed position x
// over a sequence of sample times.
func (k Kinematics) ElevationTimeSeries(x float64, times []float64) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = k.SurfaceElevation(x, t)
	}
	return out
}

// ElevationSpatialSeries evaluates SurfaceElevation at a fixed time t
// over a sequence of sample positions, returning a materialized,
// ordered slice.
func (k Kinematics) ElevationSpatialSeries(positions []float64, t float64) []float64 {
	out := make([]float64, len(positions))
	for i, x := range positions {
		out[i] = k.SurfaceElevation(x, t)
	}
	return out
}

// SampleGrid returns n evenly spaced samples over [start, end],
// inclusive of both endpoints, built with gonum/floats.Span — a
// convenience for callers assembling time or position grids to feed
// TimeSeries/SpatialSeries.
func SampleGrid(start, end float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	dst := make([]float64, n)
	return floats.Span(dst, start, end)
}

// ValidateEnergyConservation compares the instantaneous local kinetic
// plus potential energy density (ρ normalized to 1) against the
// linear-theory mean energy per unit area E* = gH²/8, returning the
// relative error. It is a diagnostic, not a correctness gate: these
// two quantities are not the same thing (instantaneous local energy
// oscillates; E* is a period-mean), so a caller should prefer
// MeanEnergyOverPeriod when it needs a theoretically comparable value.
func (k Kinematics) ValidateEnergyConservation(x, t float64) (float64, error) {
	relErr := k.energyRelativeError(x, t)
	if relErr > energyDriftTolerance {
		return relErr, fmt.Errorf("%w: relative error %.3f", ErrEnergyDrift, relErr)
	}
	return relErr, nil
}

func (k Kinematics) energyRelativeError(x, t float64) float64 {
	u := k.HorizontalVelocity(x, t)
	eta := k.SurfaceElevation(x, t)

	kinetic := 0.5 * u * u * k.params.D
	potential := 0.5 * k.gravity * eta * eta
	total := kinetic + potential

	expected := k.gravity * k.params.H * k.params.H / 8
	return math.Abs(total-expected) / expected
}

// MeanEnergyOverPeriod integrates the kinetic and potential energy
// densities at position x over one full wave period using fixed
// Gauss-Legendre quadrature, and compares the period-mean total energy
// against the linear-theory reference E* = gH²/8 — the quantity
// ValidateEnergyConservation's instantaneous check is only a proxy for.
func (k Kinematics) MeanEnergyOverPeriod(x float64) (kineticMean, potentialMean, totalMean, relError float64, err error) {
	const quadraturePoints = 32

	period := k.params.T
	kineticIntegral := quad.Fixed(func(t float64) float64 {
		u := k.HorizontalVelocity(x, t)
		return 0.5 * u * u * k.params.D
	}, 0, period, quadraturePoints, quad.Legendre{}, 0)

	potentialIntegral := quad.Fixed(func(t float64) float64 {
		eta := k.SurfaceElevation(x, t)
		return 0.5 * k.gravity * eta * eta
	}, 0, period, quadraturePoints, quad.Legendre{}, 0)

	kineticMean = kineticIntegral / period
	potentialMean = potentialIntegral / period
	totalMean = kineticMean + potentialMean

	expected := k.gravity * k.params.H * k.params.H / 8
	relError = math.Abs(totalMean-expected) / expected
	if relError > energyDriftTolerance {
		return kineticMean, potentialMean, totalMean, relError, fmt.Errorf("%w: period-mean relative error %.3f", ErrEnergyDrift, relError)
	}
	return kineticMean, potentialMean, totalMean, relError, nil
}
