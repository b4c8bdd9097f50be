package rootfind

import (
	"math"
	"testing"
)

func TestBrentSimplePolynomial(t *testing.T) {
	f := func(x float64) float64 { return x*x - 4 }

	root, err := Brent(1.0, 3.0, 1e-12, f)
	if err != nil {
		t.Fatalf("Brent failed: %v", err)
	}
	if math.Abs(root-2.0) > 1e-6 {
		t.Errorf("Expected root near 2.0, got %f", root)
	}
}

func TestBrentInvalidInterval(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }

	_, err := Brent(-1.0, 1.0, 1e-12, f)
	if err == nil {
		t.Error("Expected error for invalid interval, got nil")
	}
}

func TestBrentConvergenceTolerance(t *testing.T) {
	f := math.Sin

	root, err := Brent(3.0, 4.0, 1e-12, f)
	if err != nil {
		t.Fatalf("Brent failed: %v", err)
	}
	if math.Abs(root-math.Pi) > 1e-9 {
		t.Errorf("Expected root near Pi, got %f", root)
	}
}

func TestBrentRootNearBoundary(t *testing.T) {
	f := func(x float64) float64 { return math.Pow(x, 3) - 0.001 }

	root, err := Brent(0.01, 1.0, 1e-12, f)
	if err != nil {
		t.Fatalf("Brent failed: %v", err)
	}
	if math.Abs(root-0.1) > 1e-9 {
		t.Errorf("Expected root near 0.1, got %f", root)
	}
}

func TestInterceptLinesCrossing(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y1 := []float64{0, 1, 2, 3, 4}
	y2 := []float64{4, 3, 2, 1, 0}

	ix, iy, err := InterceptLines(x, y1, y2)
	if err != nil {
		t.Fatalf("InterceptLines failed: %v", err)
	}
	if math.Abs(ix-2.0) > 1e-10 || math.Abs(iy-2.0) > 1e-10 {
		t.Errorf("Expected intercept at (2, 2), got (%f, %f)", ix, iy)
	}
}

func TestInterceptLinesParallel(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y1 := []float64{1, 1, 1, 1, 1}
	y2 := []float64{2, 2, 2, 2, 2}

	_, _, err := InterceptLines(x, y1, y2)
	if err == nil {
		t.Fatal("Expected an error for parallel lines, got nil")
	}
}

func TestInterceptLinesShortArrays(t *testing.T) {
	_, _, err := InterceptLines([]float64{1}, []float64{2}, []float64{3})
	if err == nil {
		t.Error("Expected error for short arrays, got nil")
	}
}

func TestInterceptLinesDifferentLengths(t *testing.T) {
	x := []float64{0, 1, 2}
	y1 := []float64{0, 1, 2, 3}
	y2 := []float64{3, 2, 1}

	_, _, err := InterceptLines(x, y1, y2)
	if err == nil {
		t.Error("Expected error for mismatched lengths, got nil")
	}
}

func TestInterceptLinesFirstOfMultipleCrossings(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5}
	y1 := []float64{0, 2, 0, 2, 0, 2}
	y2 := []float64{1, 1, 1, 1, 1, 1}

	ix, iy, err := InterceptLines(x, y1, y2)
	if err != nil {
		t.Fatalf("InterceptLines failed: %v", err)
	}
	if math.Abs(ix-0.5) > 1e-10 || math.Abs(iy-1.0) > 1e-10 {
		t.Errorf("Expected first intercept at (0.5, 1.0), got (%f, %f)", ix, iy)
	}
}

func TestInterceptLinesLargeValues(t *testing.T) {
	x := []float64{1e6, 2e6, 3e6, 4e6, 5e6}
	y1 := []float64{1e6, 2e6, 3e6, 4e6, 5e6}
	y2 := []float64{5e6, 4e6, 3e6, 2e6, 1e6}

	ix, iy, err := InterceptLines(x, y1, y2)
	if err != nil {
		t.Fatalf("InterceptLines failed: %v", err)
	}
	if math.Abs((ix-3e6)/3e6) > 1e-10 || math.Abs((iy-3e6)/3e6) > 1e-10 {
		t.Errorf("Expected intercept at (3e6, 3e6), got (%e, %e)", ix, iy)
	}
}
