package conv

import (
	"math"

	"github.com/cwbudde/algo-filt/dsp/core"
)

// Correlate computes the full cross-correlation of u and v. The shorter
// input is zero-padded at the trailing end so both have the common length
// n = max(len(u), len(v)); the result has length 2n - 1 and index k
// corresponds to lag k - (n - 1).
//
// Cross-correlation is convolution with the time-reversed second input.
func Correlate(u, v []float64) ([]float64, error) {
	if len(u) == 0 || len(v) == 0 {
		return nil, ErrEmptyInput
	}

	n := len(u)
	if len(v) > n {
		n = len(v)
	}

	up := core.PadTrailing(u, n)
	vp := core.PadTrailing(v, n)

	rev := make([]float64, n)
	for i := range vp {
		rev[i] = vp[n-1-i]
	}

	return Convolve(up, rev)
}

// CorrelateComplex computes the full cross-correlation of two complex
// vectors: the second input is length-equalized, reversed, and conjugated
// before convolution.
func CorrelateComplex(u, v []complex128) ([]complex128, error) {
	if len(u) == 0 || len(v) == 0 {
		return nil, ErrEmptyInput
	}

	n := len(u)
	if len(v) > n {
		n = len(v)
	}

	up := make([]complex128, n)
	copy(up, u)

	rev := make([]complex128, n)
	for i, c := range v {
		rev[n-1-i] = complex(real(c), -imag(c))
	}

	return ConvolveComplex(up, rev)
}

// CorrelateMode computes cross-correlation with the specified output mode.
// Modes are interpreted over the equalized length n = max(len(u), len(v)).
func CorrelateMode(u, v []float64, mode Mode) ([]float64, error) {
	full, err := Correlate(u, v)
	if err != nil {
		return nil, err
	}

	n := (len(full) + 1) / 2
	return trimToMode(full, n, n, mode), nil
}

// AutoCorrelate computes the auto-correlation of signal a.
// The result has length 2*len(a) - 1 with the zero lag at index len(a)-1.
func AutoCorrelate(a []float64) ([]float64, error) {
	return Correlate(a, a)
}

// AutoCorrelateNormalized computes auto-correlation scaled so that the
// zero-lag value is 1.
func AutoCorrelateNormalized(a []float64) ([]float64, error) {
	result, err := AutoCorrelate(a)
	if err != nil {
		return nil, err
	}

	zeroLag := result[len(a)-1]
	if zeroLag == 0 {
		return result, nil
	}

	for i := range result {
		result[i] /= zeroLag
	}

	return result, nil
}

// CorrelateNormalized computes cross-correlation normalized by the product
// of the L2 norms of u and v, producing values in the range [-1, 1].
func CorrelateNormalized(u, v []float64) ([]float64, error) {
	result, err := Correlate(u, v)
	if err != nil {
		return nil, err
	}

	normProduct := l2Norm(u) * l2Norm(v)
	if normProduct == 0 {
		return result, nil
	}

	for i := range result {
		result[i] /= normProduct
	}

	return result, nil
}

func l2Norm(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// FindPeak finds the index and value of the maximum in a correlation
// result. Useful for finding the best alignment between two signals.
func FindPeak(corr []float64) (index int, value float64) {
	if len(corr) == 0 {
		return -1, 0
	}

	index = 0
	value = corr[0]

	for i, v := range corr {
		if v > value {
			index = i
			value = v
		}
	}

	return index, value
}

// LagFromIndex converts a correlation result index to a lag value. For a
// correlation of equalized length n, the lag at index i is i - (n - 1).
func LagFromIndex(index, n int) int {
	return index - (n - 1)
}

// IndexFromLag converts a lag value to a correlation result index.
func IndexFromLag(lag, n int) int {
	return lag + (n - 1)
}
