package core

import "testing"

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{1023, 1024},
		{1025, 2048},
	}

	for _, tt := range tests {
		if got := NextPowerOfTwo(tt.in); got != tt.want {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 1024} {
		if !IsPowerOfTwo(n) {
			t.Errorf("IsPowerOfTwo(%d) = false, want true", n)
		}
	}
	for _, n := range []int{0, -2, 3, 6, 1000} {
		if IsPowerOfTwo(n) {
			t.Errorf("IsPowerOfTwo(%d) = true, want false", n)
		}
	}
}

func TestNextFast(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 1},
		{1, 1},
		{7, 8},
		{11, 12},
		{13, 15},
		{17, 18},
		{23, 24},
		{26, 27},
		{97, 100},
		{1021, 1024},
		{1201, 1215}, // 3^5 * 5
		{2049, 2160},
	}

	for _, tt := range tests {
		if got := NextFast(tt.in); got != tt.want {
			t.Errorf("NextFast(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNextFastIsSmooth(t *testing.T) {
	for n := 1; n <= 5000; n += 13 {
		m := NextFast(n)
		if m < n {
			t.Fatalf("NextFast(%d) = %d < n", n, m)
		}

		r := m
		for _, p := range []int{2, 3, 5} {
			for r%p == 0 {
				r /= p
			}
		}
		if r != 1 {
			t.Fatalf("NextFast(%d) = %d is not 5-smooth", n, m)
		}
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Error("expected values within eps to compare equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-12) {
		t.Error("expected distant values to compare unequal")
	}
	if !NearlyEqual(1e9, 1e9*(1+1e-13), 1e-12) {
		t.Error("expected relative comparison for large magnitudes")
	}
	if !NearlyEqual(0, 0, 0) {
		t.Error("expected zero to equal zero with default eps")
	}
}
