package waveparams

import (
	"errors"
	"math"
	"testing"
)

func TestNewValidatesInputs(t *testing.T) {
	cases := []struct {
		name    string
		h, t, d float64
		wantErr error
	}{
		{"zero height", 0, 4, 2, ErrInvalidInput},
		{"negative period", 1, -4, 2, ErrInvalidInput},
		{"zero depth", 1, 4, 0, ErrInvalidInput},
		{"breaking risk", 2.0, 4, 2.0, ErrBreakingRisk}, // H/d = 1.0 > 0.78
		{"healthy wave", 1.0, 4, 2.0, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := New(c.h, c.t, c.d)
			if c.wantErr == nil {
				if err != nil {
					t.Fatalf("New(%v, %v, %v): unexpected error: %v", c.h, c.t, c.d, err)
				}
				return
			}
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("New(%v, %v, %v): got %v, want error wrapping %v", c.h, c.t, c.d, err, c.wantErr)
			}
		})
	}
}

func TestNewSetsDerivedFields(t *testing.T) {
	p, err := New(1.0, 4.0, 2.0)
	if err != nil {
		t.Fatalf("New: unexpected error: %v", err)
	}
	if p.H != 1.0 || p.T != 4.0 || p.D != 2.0 {
		t.Fatalf("New: inputs not stored verbatim: %+v", p)
	}
	wantOmega := 2 * math.Pi / 4.0
	if math.Abs(p.Omega-wantOmega) > 1e-12 {
		t.Errorf("Omega = %v, want %v", p.Omega, wantOmega)
	}
	if p.K != 0 || p.C != 0 || p.L != 0 {
		t.Errorf("provisional Parameters should leave K, C, L at zero: %+v", p)
	}
	if p.Amplitude() != 0.5 {
		t.Errorf("Amplitude() = %v, want 0.5", p.Amplitude())
	}
	if p.Frequency() != 0.25 {
		t.Errorf("Frequency() = %v, want 0.25", p.Frequency())
	}
}

func TestResolveFillsDerivedFields(t *testing.T) {
	p, err := New(1.0, 4.0, 2.0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	k := 0.5
	resolved := p.Resolve(k)

	if resolved.K != k {
		t.Errorf("K = %v, want %v", resolved.K, k)
	}
	wantC := resolved.Omega / k
	if resolved.C != wantC {
		t.Errorf("C = %v, want %v", resolved.C, wantC)
	}
	wantL := 2 * math.Pi / k
	if resolved.L != wantL {
		t.Errorf("L = %v, want %v", resolved.L, wantL)
	}

	// Resolve must not mutate the receiver (value semantics).
	if p.K != 0 || p.C != 0 || p.L != 0 {
		t.Errorf("Resolve mutated the original Parameters: %+v", p)
	}
}

func TestValidate(t *testing.T) {
	p, _ := New(1.0, 4.0, 2.0)

	if err := p.Validate(); err == nil {
		t.Error("Validate() on an unresolved Parameters should fail")
	}

	resolved := p.Resolve(0.8)
	if err := resolved.Validate(); err != nil {
		t.Errorf("Validate() on a consistent Parameters: %v", err)
	}

	inconsistent := resolved
	inconsistent.C = resolved.C * 2
	if err := inconsistent.Validate(); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("Validate() on an inconsistent Parameters: got %v, want ErrInvariantViolation", err)
	}
}

func TestClassifyRegime(t *testing.T) {
	cases := []struct {
		name       string
		d, L       float64
		wantRegime Regime
	}{
		{"shallow", 1.0, 30.0, Shallow},         // d/L = 1/30 < 1/20
		{"intermediate", 1.0, 10.0, Intermediate}, // d/L = 0.1
		{"deep", 10.0, 5.0, Deep},                 // d/L = 2 > 1/2
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ClassifyRegime(c.d, c.L); got != c.wantRegime {
				t.Errorf("ClassifyRegime(%v, %v) = %v, want %v", c.d, c.L, got, c.wantRegime)
			}
		})
	}
}

func TestRegimeMonotonicityOnDepth(t *testing.T) {
	// Increasing depth at fixed wavelength should move the regime
	// Shallow -> Intermediate -> Deep without ever reversing.
	wavelength := 10.0
	depths := []float64{0.1, 0.3, 0.5, 1.0, 3.0, 5.0, 8.0, 20.0}

	order := map[Regime]int{Shallow: 0, Intermediate: 1, Deep: 2}
	last := -1
	for _, d := range depths {
		r := ClassifyRegime(d, wavelength)
		rank := order[r]
		if rank < last {
			t.Fatalf("regime regressed at d=%v: rank %d after %d", d, rank, last)
		}
		last = rank
	}
}

func TestRegimeString(t *testing.T) {
	cases := map[Regime]string{Shallow: "shallow", Intermediate: "intermediate", Deep: "deep"}
	for r, want := range cases {
		if got := r.String(); got != want {
			t.Errorf("Regime(%d).String() = %q, want %q", r, got, want)
		}
	}
}
