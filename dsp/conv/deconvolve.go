package conv

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-filt/dsp/core"
	"github.com/cwbudde/algo-filt/dsp/filt"
)

// Deconvolution errors.
var ErrDivisionByZero = errors.New("conv: division by zero in deconvolution")

// Deconvolve divides the polynomial b by the polynomial a, returning the
// quotient c such that b ≈ Convolve(a, c). The leading coefficient a[0]
// must be nonzero.
//
// If len(b) < len(a) the quotient is the single-element zero vector.
// Otherwise the quotient has length len(b) - len(a) + 1 and is obtained by
// filtering a unit impulse through the transfer function b(z)/a(z): the
// truncated impulse response of a rational filter reproduces the division
// quotient exactly.
func Deconvolve(b, a []float64) ([]float64, error) {
	if len(b) == 0 {
		return nil, ErrEmptyInput
	}
	if len(a) == 0 {
		return nil, ErrEmptyKernel
	}

	if len(b) < len(a) {
		// Quotient degree would be negative.
		return []float64{0}, nil
	}

	n := len(b) - len(a) + 1
	x := make([]float64, n)
	x[0] = 1

	out := make([]float64, n)
	if err := filt.FilterTo(out, b, a, x); err != nil {
		return nil, err
	}

	return out, nil
}

// DeconvMethod specifies the spectral deconvolution method.
type DeconvMethod int

const (
	// DeconvNaive performs plain spectral division. Fast but fails on
	// zeros in the kernel spectrum and amplifies noise.
	DeconvNaive DeconvMethod = iota

	// DeconvRegularized adds a small epsilon to the kernel power spectrum:
	// output = IFFT(Y * conj(H) / (|H|^2 + epsilon)).
	DeconvRegularized

	// DeconvWiener applies Wiener deconvolution using a noise-to-signal
	// ratio estimate in place of epsilon. Optimal in the MSE sense when
	// the variances are known.
	DeconvWiener
)

// DeconvOptions configures spectral deconvolution.
type DeconvOptions struct {
	// Method selects the spectral division variant.
	Method DeconvMethod

	// Epsilon is the regularization parameter for DeconvRegularized.
	// Typical values are 1e-6 to 1e-3 depending on SNR; non-positive
	// values fall back to 1e-6.
	Epsilon float64

	// NoiseVariance and SignalVariance feed the Wiener noise-to-signal
	// ratio. Zero values are estimated from the signal.
	NoiseVariance  float64
	SignalVariance float64
}

// DefaultDeconvOptions returns default spectral deconvolution options.
func DefaultDeconvOptions() DeconvOptions {
	return DeconvOptions{
		Method:  DeconvRegularized,
		Epsilon: 1e-6,
	}
}

// DeconvolveSpectral recovers an estimate of the original signal from a
// convolved result. Given y = Convolve(x, h), this attempts to recover x
// from y and h by division in the frequency domain.
//
// This is an ill-posed problem when the kernel spectrum has near-zeros or
// the signal contains noise; use DeconvRegularized or DeconvWiener for
// those cases. For exact polynomial division use [Deconvolve].
func DeconvolveSpectral(signal, kernel []float64, opts DeconvOptions) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	// All three methods share the division core and differ only in the
	// spectral load added to |H|^2.
	var load float64
	switch opts.Method {
	case DeconvNaive:
		load = 0
	case DeconvWiener:
		load = noiseToSignalRatio(signal, opts)
	default:
		load = opts.Epsilon
		if load <= 0 {
			load = 1e-6
		}
	}

	outputLen := len(signal) - len(kernel) + 1
	if outputLen <= 0 {
		outputLen = len(signal)
	}

	return spectralDivide(signal, kernel, outputLen, load, opts.Method == DeconvNaive)
}

// InverseFilter creates an inverse filter of the given length from a
// kernel: Convolve(kernel, inverse) approximates a unit impulse. The
// division is regularized by epsilon (non-positive values fall back to
// 1e-6).
func InverseFilter(kernel []float64, length int, epsilon float64) ([]float64, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}
	if length <= 0 {
		return nil, ErrEmptyInput
	}
	if epsilon <= 0 {
		epsilon = 1e-6
	}

	// Deconvolving a unit impulse yields conj(H) / (|H|^2 + epsilon).
	impulse := make([]float64, length)
	impulse[0] = 1

	return spectralDivide(impulse, kernel, length, epsilon, false)
}

// spectralDivide computes IFFT(FFT(signal) * conj(FFT(kernel)) /
// (|FFT(kernel)|^2 + load)) and returns the first outputLen real samples.
// With strict set, any kernel bin with near-zero magnitude is an error.
func spectralDivide(signal, kernel []float64, outputLen int, load float64, strict bool) ([]float64, error) {
	n := len(signal)
	if len(kernel) > n {
		n = len(kernel)
	}
	fftSize := core.NextPowerOfTwo(n)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	sigFreq := make([]complex128, fftSize)
	kerFreq := make([]complex128, fftSize)
	for i, v := range signal {
		sigFreq[i] = complex(v, 0)
	}
	for i, v := range kernel {
		kerFreq[i] = complex(v, 0)
	}

	if err := plan.Forward(sigFreq, sigFreq); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	if err := plan.Forward(kerFreq, kerFreq); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	// Unpack the kernel spectrum into planes so the power spectrum runs
	// through the SIMD vector path.
	re := make([]float64, fftSize)
	im := make([]float64, fftSize)
	for i, c := range kerFreq {
		re[i] = real(c)
		im[i] = imag(c)
	}

	hPow := make([]float64, fftSize)
	vecmath.Power(hPow, re, im)

	if strict {
		hMag := make([]float64, fftSize)
		vecmath.Magnitude(hMag, re, im)
		for i, m := range hMag {
			if m < 1e-15 {
				return nil, fmt.Errorf("%w: at frequency bin %d", ErrDivisionByZero, i)
			}
		}
	}

	for i := range sigFreq {
		hConj := complex(re[i], -im[i])
		sigFreq[i] = sigFreq[i] * hConj / complex(hPow[i]+load, 0)
	}

	if err := plan.Inverse(sigFreq, sigFreq); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	result := make([]float64, outputLen)
	for i := range result {
		result[i] = real(sigFreq[i])
	}

	return result, nil
}

// noiseToSignalRatio derives the Wiener spectral load from the options,
// estimating missing variances from the signal.
func noiseToSignalRatio(signal []float64, opts DeconvOptions) float64 {
	signalVar := opts.SignalVariance
	if signalVar <= 0 {
		signalVar = variance(signal)
	}

	noiseVar := opts.NoiseVariance
	if noiseVar <= 0 {
		// Rough heuristic; in practice the noise floor should be measured.
		noiseVar = signalVar * 0.01
	}

	nsr := noiseVar / signalVar
	if nsr <= 0 || math.IsNaN(nsr) {
		nsr = 1e-6
	}

	return nsr
}

func variance(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	var mean float64
	for _, v := range x {
		mean += v
	}
	mean /= float64(len(x))

	var sum float64
	for _, v := range x {
		d := v - mean
		sum += d * d
	}

	return sum / float64(len(x))
}

// SNR computes the signal-to-noise ratio in dB between an original signal
// and its recovered estimate, where noise = original - recovered.
func SNR(original, recovered []float64) float64 {
	if len(original) != len(recovered) || len(original) == 0 {
		return math.Inf(-1)
	}

	var signalPower, noisePower float64
	for i := range original {
		signalPower += original[i] * original[i]
		noise := original[i] - recovered[i]
		noisePower += noise * noise
	}

	if noisePower == 0 {
		return math.Inf(1)
	}

	return 10 * math.Log10(signalPower/noisePower)
}
