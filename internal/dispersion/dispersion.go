package dispersion

import (
	"errors"
	"fmt"
	"math"

	"github.com/antoinelb/waveflume/internal/waveparams"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

// ErrDerivativeUnderflow is returned when the Newton-Raphson iteration
// hits a point where df/dk is too small to take a meaningful step.
var ErrDerivativeUnderflow = errors.New("dispersion: derivative underflow in Newton-Raphson iteration")

// ErrNoConvergence is returned when the iteration cap is reached
// without meeting the wave-number tolerance.
var ErrNoConvergence = errors.New("dispersion: Newton-Raphson did not converge")

// ErrResidualTooLarge is returned when a converged wave number still
// leaves a dispersion residual above the accepted threshold.
var ErrResidualTooLarge = errors.New("dispersion: residual too large after convergence")

// residualTolerance bounds |f(k)| after Newton-Raphson converges.
const residualTolerance = 1e-6

// Solver holds only tuning constants for the Newton-Raphson inversion:
// it is a cheap value type, safe to copy and reuse across calls, never
// a singleton.
type Solver struct {
	MaxIterations int
	Tolerance     float64
	Gravity       float64
}

// NewSolver returns a Solver with the documented defaults: 100 maximum
// iterations, 1e-10 tolerance, and standard gravity 9.81 m/s².
func NewSolver() Solver {
	return Solver{
		MaxIterations: 100,
		Tolerance:     1e-10,
		Gravity:       9.81,
	}
}

// Solve builds a provisional waveparams.Parameters from (h, t, d),
// resolves its wave number by Newton-Raphson iteration on the
// depth-generalized dispersion relation, and validates the result.
func (s Solver) Solve(h, t, d float64) (waveparams.Parameters, error) {
	p, err := waveparams.New(h, t, d)
	if err != nil {
		return waveparams.Parameters{}, err
	}

	k, _, err := s.solveWaveNumber(p.Omega, d)
	if err != nil {
		return waveparams.Parameters{}, err
	}

	resolved := p.Resolve(k)
	if err := resolved.Validate(); err != nil {
		return waveparams.Parameters{}, err
	}

	if residual := s.dispersionFunction(k, p.Omega, d); math.Abs(residual) > residualTolerance {
		return waveparams.Parameters{}, fmt.Errorf("%w: residual = %.3e", ErrResidualTooLarge, residual)
	}

	return resolved, nil
}

// SolveWithHistory behaves like Solve but additionally returns a Newton
// iteration ledger: one row of (k, f(k), df/dk) per iteration taken,
// for diagnostics and tests.
func (s Solver) SolveWithHistory(h, t, d float64) (waveparams.Parameters, *mat.Dense, error) {
	p, err := waveparams.New(h, t, d)
	if err != nil {
		return waveparams.Parameters{}, nil, err
	}

	k, history, err := s.solveWaveNumber(p.Omega, d)
	if err != nil {
		return waveparams.Parameters{}, history, err
	}

	resolved := p.Resolve(k)
	if err := resolved.Validate(); err != nil {
		return waveparams.Parameters{}, history, err
	}
	if residual := s.dispersionFunction(k, p.Omega, d); math.Abs(residual) > residualTolerance {
		return waveparams.Parameters{}, history, fmt.Errorf("%w: residual = %.3e", ErrResidualTooLarge, residual)
	}

	return resolved, history, nil
}

// solveWaveNumber runs the Newton-Raphson iteration from the
// deep-water seed k0 = ω²/g. Convergence is checked against the raw,
// unclamped step; only an iterate that is not yet converged is clamped
// to the physical half-line k >= Tolerance before the next pass.
func (s Solver) solveWaveNumber(omega, depth float64) (float64, *mat.Dense, error) {
	k := omega * omega / s.Gravity

	rows := make([]float64, 0, s.MaxIterations*3)
	nRows := 0

	for iter := 0; iter < s.MaxIterations; iter++ {
		f := s.dispersionFunction(k, omega, depth)
		df := s.dispersionDerivative(k, depth)

		rows = append(rows, k, f, df)
		nRows++

		if math.Abs(df) < s.Tolerance {
			history := mat.NewDense(nRows, 3, rows)
			return 0, history, ErrDerivativeUnderflow
		}

		kNew := k - f/df
		if math.Abs(kNew-k) < s.Tolerance {
			history := mat.NewDense(nRows, 3, rows)
			return kNew, history, nil
		}

		if kNew < s.Tolerance {
			kNew = s.Tolerance
		}
		k = kNew
	}

	var history *mat.Dense
	if nRows > 0 {
		history = mat.NewDense(nRows, 3, rows)
	}
	return 0, history, fmt.Errorf("%w: after %d iterations", ErrNoConvergence, s.MaxIterations)
}

// dispersionFunction evaluates f(k) = ω² - g·k·(kd)/(1+(kd)²/4).
func (s Solver) dispersionFunction(k, omega, depth float64) float64 {
	kd := k * depth
	rhs := s.Gravity * k * kd / (1 + kd*kd/4)
	return omega*omega - rhs
}

// dispersionDerivative evaluates the analytic df/dk.
func (s Solver) dispersionDerivative(k, depth float64) float64 {
	kd := k * depth
	kd2 := kd * kd
	denom := 1 + kd2/4
	denom2 := denom * denom

	term1 := kd / denom
	term2 := k * depth * (1 - kd2/4) / denom2

	return -s.Gravity * (term1 + term2)
}

// CheckDerivative returns the relative difference between the analytic
// df/dk and a central finite-difference estimate of d/dk[f(k,ω,d)] at
// fixed ω and d. It is never called on the Newton hot path — the
// bounded iteration in Solve does not pay for it.
func (s Solver) CheckDerivative(k, omega, depth float64) float64 {
	analytic := s.dispersionDerivative(k, depth)
	numeric := fd.Derivative(func(x float64) float64 {
		return s.dispersionFunction(x, omega, depth)
	}, k, &fd.Settings{Formula: fd.Central})

	if analytic == 0 {
		return math.Abs(numeric)
	}
	return math.Abs(numeric-analytic) / math.Abs(analytic)
}

// PhaseVelocity returns c(k,d) = sqrt(g·kd / (k·(1+(kd)²/4))).
func (s Solver) PhaseVelocity(k, depth float64) float64 {
	kd := k * depth
	cSquared := s.Gravity * kd / (k * (1 + kd*kd/4))
	return math.Sqrt(cSquared)
}

// GroupVelocity returns ∂ω/∂k = (1/2ω)·g·d·(1-(kd)²/4)/(1+(kd)²/4)².
func (s Solver) GroupVelocity(k, depth float64) float64 {
	kd := k * depth
	kd2 := kd * kd
	denom := 1 + kd2/4

	omegaSquared := s.Gravity * k * kd / denom
	omega := math.Sqrt(omegaSquared)

	dOmega2Dk := s.Gravity * depth * (1 - kd2/4) / (denom * denom)
	return dOmega2Dk / (2 * omega)
}
