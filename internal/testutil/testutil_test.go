package testutil

import (
	"math"
	"testing"
)

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := DeterministicNoise(99, 0.5, 64)
	b := DeterministicNoise(99, 0.5, 64)

	RequireSliceNearlyEqual(t, a, b, 0)
	RequireFinite(t, a)

	for i, v := range a {
		if math.Abs(v) > 0.5 {
			t.Fatalf("index %d: amplitude %v exceeds 0.5", i, v)
		}
	}
}

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 8000, 1.0, 8)

	if s[0] != 0 {
		t.Fatalf("sine must start at zero, got %v", s[0])
	}
	if math.Abs(s[2]-1) > 1e-12 {
		t.Fatalf("quarter period sample = %v, want 1", s[2])
	}
}

func TestImpulse(t *testing.T) {
	x := Impulse(4, 1)
	RequireSliceNearlyEqual(t, x, []float64{0, 1, 0, 0}, 0)

	x = Impulse(3, -1)
	RequireSliceNearlyEqual(t, x, []float64{0, 0, 0}, 0)
}

func TestMaxAbsDiff(t *testing.T) {
	d := MaxAbsDiff(t, []float64{1, 2, 3}, []float64{1, 2.5, 2})
	if d != 1 {
		t.Fatalf("MaxAbsDiff = %v, want 1", d)
	}
}
