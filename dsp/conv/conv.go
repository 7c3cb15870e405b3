package conv

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-filt/dsp/core"
)

// Errors returned by convolution and correlation functions.
var (
	ErrEmptyInput  = errors.New("conv: empty input")
	ErrEmptyKernel = errors.New("conv: empty kernel")
	ErrNilArray    = errors.New("conv: nil array")
)

// Mode specifies the output mode for convolution and correlation.
type Mode int

const (
	// ModeFull returns the full convolution result with length len(a)+len(b)-1.
	ModeFull Mode = iota

	// ModeSame returns output with the same length as the first input.
	ModeSame

	// ModeValid returns only the portion where signals fully overlap,
	// with length max(len(a), len(b)) - min(len(a), len(b)) + 1.
	ModeValid
)

// directThreshold is the kernel length above which the FFT path wins over
// direct convolution.
const directThreshold = 64

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
//
// This is an O(N*M) algorithm suitable for short kernels. For longer
// kernels, [Convolve] switches to the FFT path.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	DirectTo(result, a, b)
	return result, nil
}

// DirectTo performs direct convolution, writing to a pre-allocated
// destination. dst must have length len(a) + len(b) - 1.
func DirectTo(dst, a, b []float64) {
	for i := range dst {
		dst[i] = 0
	}

	for i := range a {
		for j := range b {
			dst[i+j] += a[i] * b[j]
		}
	}
}

// Convolve performs full linear convolution with automatic algorithm
// selection: direct convolution for short kernels, a one-shot FFT for
// longer ones. The result has length len(a) + len(b) - 1.
func Convolve(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	// Ensure a is the longer input.
	if len(b) > len(a) {
		a, b = b, a
	}

	if len(b) <= directThreshold {
		return Direct(a, b)
	}

	return FFT(a, b)
}

// FFT performs full linear convolution via a real-input FFT: both inputs
// are zero-padded to a common transform length, transformed, multiplied
// bin by bin, and transformed back. The padding exceeds any wraparound, so
// the cyclic product equals the linear convolution.
func FFT(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	n := len(a) + len(b) - 1
	size := realTransformLength(n)

	plan, err := algofft.NewPlanReal64(size)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	bins := size/2 + 1
	aFreq := make([]complex128, bins)
	bFreq := make([]complex128, bins)

	if err := plan.Forward(aFreq, core.PadTrailing(a, size)); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	if err := plan.Forward(bFreq, core.PadTrailing(b, size)); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	for i := range aFreq {
		aFreq[i] *= bFreq[i]
	}

	out := make([]float64, size)
	if err := plan.Inverse(out, aFreq); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	return out[:n], nil
}

// ConvolveComplex performs full linear convolution of two complex vectors
// via the complex FFT path.
func ConvolveComplex(a, b []complex128) ([]complex128, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	n := len(a) + len(b) - 1
	size := transformLength(n)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	aPad := make([]complex128, size)
	bPad := make([]complex128, size)
	copy(aPad, a)
	copy(bPad, b)

	if err := plan.Forward(aPad, aPad); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	if err := plan.Forward(bPad, bPad); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	for i := range aPad {
		aPad[i] *= bPad[i]
	}

	if err := plan.Inverse(aPad, aPad); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	return aPad[:n], nil
}

// ConvolveInt convolves two integer vectors by converting to float64,
// convolving, and rounding the result to the nearest integer.
func ConvolveInt(a, b []int) ([]int, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	af := make([]float64, len(a))
	bf := make([]float64, len(b))
	for i, v := range a {
		af[i] = float64(v)
	}
	for i, v := range b {
		bf[i] = float64(v)
	}

	res, err := Convolve(af, bf)
	if err != nil {
		return nil, err
	}

	out := make([]int, len(res))
	for i, v := range res {
		out[i] = int(math.Round(v))
	}

	return out, nil
}

// ConvolveMode performs convolution with the specified output mode.
func ConvolveMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Convolve(a, b)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(a), len(b), mode), nil
}

// trimToMode extracts the appropriate portion of a full convolution result.
func trimToMode(full []float64, lenA, lenB int, mode Mode) []float64 {
	switch mode {
	case ModeSame:
		start := (lenB - 1) / 2
		return full[start : start+lenA]
	case ModeValid:
		if lenA >= lenB {
			return full[lenB-1 : lenA]
		}
		return full[lenA-1 : lenB]
	default:
		return full
	}
}

// transformLength picks an FFT length for n output samples: the next power
// of two for small sizes, the next 5-smooth length for large ones, where
// mixed-radix transforms stay fast and the padding overhead is far smaller.
func transformLength(n int) int {
	if n <= 1024 {
		return core.NextPowerOfTwo(n)
	}
	return core.NextFast(n)
}

// realTransformLength is transformLength restricted to even values, which
// the real-input transform requires.
func realTransformLength(n int) int {
	m := transformLength(n)
	for m%2 != 0 {
		m = core.NextFast(m + 1)
	}
	return m
}
