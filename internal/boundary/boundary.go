package boundary

import (
	"math"

	"github.com/antoinelb/waveflume/internal/kinematics"
	"github.com/antoinelb/waveflume/internal/waveparams"
)

// Driver owns a Kinematics value plus the three independent pieces of
// boundary-forcing state: CurrentTime, GenerationPosition, Enabled.
// Replacing parameters never resets the time cursor or the enable
// flag — those are the host's to manage.
type Driver struct {
	kinematics         kinematics.Kinematics
	CurrentTime        float64
	GenerationPosition float64
	Enabled            bool
}

// NewDriver wraps a resolved waveparams.Parameters into a boundary
// driver at t = 0, x0 = 0, enabled.
func NewDriver(p waveparams.Parameters) *Driver {
	return NewDriverWithGravity(p, 9.81)
}

// NewDriverWithGravity behaves like NewDriver with an explicit gravity
// constant forwarded to the wrapped Kinematics.
func NewDriverWithGravity(p waveparams.Parameters, gravity float64) *Driver {
	return &Driver{
		kinematics:         kinematics.NewWithGravity(p, gravity),
		CurrentTime:        0,
		GenerationPosition: 0,
		Enabled:            true,
	}
}

// AdvanceTime steps the time cursor forward by dt. No bound is
// enforced on dt — the driver does not police stability.
func (d *Driver) AdvanceTime(dt float64) {
	d.CurrentTime += dt
}

// UpdateTime sets the time cursor directly.
func (d *Driver) UpdateTime(t float64) {
	d.CurrentTime = t
}

// SetGenerationPosition moves the boundary x0.
func (d *Driver) SetGenerationPosition(x0 float64) {
	d.GenerationPosition = x0
}

// SetEnabled toggles wave generation without touching the time cursor.
func (d *Driver) SetEnabled(enabled bool) {
	d.Enabled = enabled
}

// UpdateParameters replaces the wrapped wave parameters. Time and
// enabled state are left untouched.
func (d *Driver) UpdateParameters(p waveparams.Parameters) {
	d.kinematics = d.kinematics.UpdateParameters(p)
}

// Reset sets t = 0 and re-enables the driver. GenerationPosition and the
// wrapped parameters are left as they are.
func (d *Driver) Reset() {
	d.CurrentTime = 0
	d.Enabled = true
}

// Parameters returns the currently wrapped wave parameters.
func (d *Driver) Parameters() waveparams.Parameters {
	return d.kinematics.Parameters()
}

// BoundaryVelocity returns u(x0, t) when enabled, else 0.
func (d *Driver) BoundaryVelocity() float64 {
	if !d.Enabled {
		return 0
	}
	return d.kinematics.HorizontalVelocity(d.GenerationPosition, d.CurrentTime)
}

// BoundarySurfaceElevation returns η(x0, t) when enabled, else 0.
func (d *Driver) BoundarySurfaceElevation() float64 {
	if !d.Enabled {
		return 0
	}
	return d.kinematics.SurfaceElevation(d.GenerationPosition, d.CurrentTime)
}

// BoundaryFlux returns the driver's mass-flux hand-off: velocity × depth.
func (d *Driver) BoundaryFlux() float64 {
	if !d.Enabled {
		return 0
	}
	return d.BoundaryVelocity() * d.Parameters().D
}

// ApplyBoundaryConditions writes the current velocity and elevation
// into index 0 of uGrid and etaGrid. It is a no-op if the driver is
// disabled or either grid is empty, and never touches any index beyond
// 0; neither slice is retained past the call.
func (d *Driver) ApplyBoundaryConditions(uGrid, etaGrid []float64) {
	if !d.Enabled || len(uGrid) == 0 || len(etaGrid) == 0 {
		return
	}
	uGrid[0] = d.BoundaryVelocity()
	etaGrid[0] = d.BoundarySurfaceElevation()
}

// ApplyRampedBoundaryConditions behaves like ApplyBoundaryConditions
// but multiplies the written values by RampUpFactor(tau).
func (d *Driver) ApplyRampedBoundaryConditions(uGrid, etaGrid []float64, tau float64) {
	if !d.Enabled || len(uGrid) == 0 || len(etaGrid) == 0 {
		return
	}
	ramp := d.RampUpFactor(tau)
	uGrid[0] = d.BoundaryVelocity() * ramp
	etaGrid[0] = d.BoundarySurfaceElevation() * ramp
}

// RampUpFactor returns a raised-cosine taper R(t, tau): 0 when
// disabled, 1 when tau <= 0, the taper ½(1-cos(π·t/τ)) while t < tau,
// and 1 thereafter. R(0) = 0, R(tau) = 1, R'(0) = R'(tau) = 0.
func (d *Driver) RampUpFactor(tau float64) float64 {
	if !d.Enabled {
		return 0
	}
	if tau <= 0 {
		return 1
	}
	if d.CurrentTime < tau {
		return 0.5 * (1 - math.Cos(math.Pi*d.CurrentTime/tau))
	}
	return 1
}

// ShouldGenerateWaves reports whether the driver is enabled and the
// time cursor is still within the simulation duration.
func (d *Driver) ShouldGenerateWaves(simDuration float64) bool {
	return d.Enabled && d.CurrentTime < simDuration
}

// RecommendedTimeStep forwards the wrapped Kinematics' CFL-bounded step.
func (d *Driver) RecommendedTimeStep() float64 {
	return d.kinematics.RecommendedTimeStep()
}

// Status returns a read-only snapshot of the driver's current state.
func (d *Driver) Status() BoundaryStatus {
	return BoundaryStatus{
		Enabled:            d.Enabled,
		CurrentTime:        d.CurrentTime,
		GenerationPosition: d.GenerationPosition,
		CurrentVelocity:    d.BoundaryVelocity(),
		CurrentElevation:   d.BoundarySurfaceElevation(),
		WaveParameters:     d.Parameters(),
	}
}

// BoundaryStatus is a plain read-only diagnostic snapshot: it copies
// WaveParameters by value, so it shares no mutable alias with the
// Driver that produced it.
type BoundaryStatus struct {
	Enabled            bool
	CurrentTime        float64
	GenerationPosition float64
	CurrentVelocity    float64
	CurrentElevation   float64
	WaveParameters     waveparams.Parameters
}

// Phase returns k·x0 - ω·t at the time the snapshot was taken.
func (s BoundaryStatus) Phase() float64 {
	return s.WaveParameters.K*s.GenerationPosition - s.WaveParameters.Omega*s.CurrentTime
}

// PeriodCompletion returns the fractional part of t/T, in [0, 1).
func (s BoundaryStatus) PeriodCompletion() float64 {
	periodsElapsed := s.CurrentTime / s.WaveParameters.T
	return periodsElapsed - math.Floor(periodsElapsed)
}

// AtWaveCrest reports whether the phase, reduced modulo 2π, is within
// tol of 0.
func (s BoundaryStatus) AtWaveCrest(tol float64) bool {
	crestPhase := math.Mod(s.Phase(), 2*math.Pi)
	return math.Abs(crestPhase) < tol || math.Abs(crestPhase-2*math.Pi) < tol || math.Abs(crestPhase+2*math.Pi) < tol
}

// AtWaveTrough reports whether the phase, offset by π and reduced
// modulo 2π, is within tol of 0.
func (s BoundaryStatus) AtWaveTrough(tol float64) bool {
	troughPhase := math.Mod(s.Phase()+math.Pi, 2*math.Pi)
	return math.Abs(troughPhase) < tol || math.Abs(troughPhase-2*math.Pi) < tol || math.Abs(troughPhase+2*math.Pi) < tol
}
