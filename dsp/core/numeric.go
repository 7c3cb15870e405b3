// Package core provides small numeric and buffer helpers shared by the
// filtering and convolution packages.
package core

import "math"

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
// The comparison is absolute for small magnitudes and relative otherwise.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// NextPowerOfTwo returns the smallest power of two m with m >= n.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}

// IsPowerOfTwo reports whether n is a power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextFast returns the smallest 5-smooth integer m with m >= n, i.e. the
// smallest m >= n whose prime factors are all in {2, 3, 5}. Such lengths
// admit efficient mixed-radix FFTs and are rarely more than a few percent
// above n, unlike the next power of two which can be almost 2x larger.
func NextFast(n int) int {
	if n <= 1 {
		return 1
	}

	best := NextPowerOfTwo(n)

	for f5 := 1; f5 < best; f5 *= 5 {
		for f35 := f5; f35 < best; f35 *= 3 {
			m := f35
			for m < n {
				m *= 2
			}

			if m < best {
				best = m
			}
		}
	}

	return best
}
